package http

import (
	"ciblsport-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the venue routes.
func (h *Handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("", h.List)
	r.GET("/:id", h.Detail)
	r.GET("/:id/map", h.MapURL)
}
