package http

import (
	"ciblsport-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the notification routes. The whole feed is behind
// authentication.
func (h *Handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.Use(mw.Auth())

	r.GET("", h.List)
	r.POST("/read-all", h.MarkAllAsRead)
	r.POST("/:id/read", h.MarkAsRead)
	r.DELETE("/:id", h.Remove)
	r.DELETE("", h.ClearAll)

	r.GET("/preferences", h.GetPreferences)
	r.PUT("/preferences", h.UpdatePreferences)
}
