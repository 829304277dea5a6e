package http

import (
	"ciblsport-api/internal/auth"
	"ciblsport-api/internal/model"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}
}

type loginResp struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

func newLoginResp(o auth.LoginOutput) loginResp {
	return loginResp{
		User:  o.User,
		Token: o.Token,
	}
}
