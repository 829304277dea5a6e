package http

import (
	"ciblsport-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapRoutes registers the result routes.
func (h *Handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("", h.GetEventResults)
	r.GET("/athlete/:athleteId", h.GetAthleteResults)
	r.POST("", mw.Auth(), h.AddResult)
	r.PATCH("/:id", mw.Auth(), h.UpdateResult)
	r.DELETE("/:id", mw.Auth(), h.DeleteResult)
}
