package usecase

import (
	"context"

	"ciblsport-api/internal/auth"
	"ciblsport-api/internal/auth/repository"
	"ciblsport-api/internal/model"
	"ciblsport-api/pkg/encrypter"
	"ciblsport-api/pkg/scope"
)

func (uc *usecase) Login(ctx context.Context, ip auth.LoginInput) (auth.LoginOutput, error) {
	usr, err := uc.repo.GetByEmail(ctx, ip.Email)
	if err != nil {
		if err == repository.ErrNotFound {
			return auth.LoginOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.GetByEmail: %v", err)
		return auth.LoginOutput{}, err
	}

	if !encrypter.CheckPasswordHash(ip.Password, usr.PasswordHash) {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.jwtMgr.CreateToken(scope.Payload{
		UserID: usr.ID,
		Email:  usr.Email,
		Role:   usr.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.CreateToken: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{User: usr, Token: token}, nil
}

func (uc *usecase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	usr, err := uc.repo.Detail(ctx, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, auth.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Me: %v", err)
		return model.User{}, err
	}
	return usr, nil
}
