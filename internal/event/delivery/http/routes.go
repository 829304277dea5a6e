package http

import (
	"ciblsport-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the event routes.
func (h *Handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("", h.List)
	r.GET("/:id", h.Detail)
	r.POST("", mw.Auth(), h.Create)
	r.PATCH("/:id/status", mw.Auth(), h.UpdateStatus)
}
