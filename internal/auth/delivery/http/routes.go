package http

import (
	"ciblsport-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the auth routes.
func (h *Handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/login", h.Login)
	r.GET("/me", mw.Auth(), h.Me)
}
