package auth

import "ciblsport-api/internal/model"

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	User  model.User
	Token string
}
