package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "ciblsport-api/pkg/errors"
	"ciblsport-api/pkg/response"
	"ciblsport-api/pkg/scope"
)

// Login authenticates a user with email and password.
// @Summary Login
// @Description Authenticate with email and password, returns the user and a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginReq true "Credentials"
// @Success 200 {object} loginResp
// @Failure 400 {object} response.ErrResp
// @Failure 401 {object} response.ErrResp
// @Router /auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.Login.ShouldBindJSON: %v", err)
		response.Error(c, pkgErrors.NewValidationError("body", "Email and password are required"), nil)
		return
	}
	if req.Email == "" || req.Password == "" {
		response.Error(c, pkgErrors.NewValidationError("body", "Email and password are required"), nil)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newLoginResp(out))
}

// Me returns the authenticated user's profile.
// @Summary Current user
// @Description Returns the profile of the authenticated caller
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} response.ErrResp
// @Router /auth/me [GET]
func (h *Handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)
	usr, err := h.uc.Me(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, usr)
}
