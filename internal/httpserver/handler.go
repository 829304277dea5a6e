package httpserver

import (
	authHTTP "ciblsport-api/internal/auth/delivery/http"
	eventHTTP "ciblsport-api/internal/event/delivery/http"
	"ciblsport-api/internal/middleware"
	notificationHTTP "ciblsport-api/internal/notification/delivery/http"
	resultHTTP "ciblsport-api/internal/result/delivery/http"
	securityHTTP "ciblsport-api/internal/security/delivery/http"
	venueHTTP "ciblsport-api/internal/venue/delivery/http"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "ciblsport-api/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	// Apply CORS and panic recovery globally
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mw := middleware.New(srv.logger, srv.jwtMgr)

	authH := authHTTP.New(srv.logger, srv.authUC)
	eventH := eventHTTP.New(srv.logger, srv.eventUC)
	resultH := resultHTTP.New(srv.logger, srv.resultUC)
	securityH := securityHTTP.New(srv.logger, srv.securityUC)
	notificationH := notificationHTTP.New(srv.logger, srv.notificationUC)
	venueH := venueHTTP.New(srv.logger, srv.venueUC)

	api := srv.gin.Group(Api)

	authH.MapRoutes(api.Group("/auth"), mw)
	eventH.MapRoutes(api.Group("/events"), mw)
	resultH.MapRoutes(api.Group("/results"), mw)
	securityH.MapIncidentRoutes(api.Group("/incidents"), mw)
	securityH.MapAlertRoutes(api.Group("/alerts"), mw)
	notificationH.MapRoutes(api.Group("/notifications"), mw)
	venueH.MapRoutes(api.Group("/venues"), mw)

	return nil
}
