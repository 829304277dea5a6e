package auth

import (
	"context"

	"ciblsport-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, ip LoginInput) (LoginOutput, error)
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}
