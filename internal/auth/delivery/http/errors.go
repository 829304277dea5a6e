package http

import (
	"ciblsport-api/internal/auth"
	pkgErrors "ciblsport-api/pkg/errors"
	"ciblsport-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	auth.ErrInvalidCredentials: pkgErrors.NewInvalidCredentialsError(),
	auth.ErrUserNotFound:       pkgErrors.NewNotFoundHTTPError("User not found"),
}
