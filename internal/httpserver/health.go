package httpserver

import (
	"ciblsport-api/internal/model"
	"ciblsport-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API service is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	unread, err := srv.notificationUC.UnreadCount(ctx, model.Scope{})
	if err != nil {
		unread = 0
	}

	response.OK(c, gin.H{
		"status":              "healthy",
		"message":             "From CiblSport With Love",
		"version":             "1.0.0",
		"service":             "ciblsport-api",
		"unreadNotifications": unread,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the API service is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": "From CiblSport With Love",
		"version": "1.0.0",
		"service": "ciblsport-api",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API service is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": "From CiblSport With Love",
		"version": "1.0.0",
		"service": "ciblsport-api",
	})
}
