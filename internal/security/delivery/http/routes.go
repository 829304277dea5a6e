package http

import (
	"ciblsport-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// MapIncidentRoutes registers the incident routes.
func (h *Handler) MapIncidentRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("", h.ListIncidents)
	r.GET("/:id", h.DetailIncident)
	r.POST("", mw.Auth(), h.AddIncident)
	r.PATCH("/:id", mw.Auth(), h.UpdateIncident)
	r.POST("/:id/updates", mw.Auth(), h.AddIncidentUpdate)
}

// MapAlertRoutes registers the alert routes.
func (h *Handler) MapAlertRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.GET("", h.GetActiveAlerts)
	r.POST("", mw.Auth(), h.CreateAlert)
	r.DELETE("/:id", mw.Auth(), h.DismissAlert)
}
