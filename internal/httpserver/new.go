package httpserver

import (
	"errors"

	"ciblsport-api/internal/auth"
	"ciblsport-api/internal/event"
	"ciblsport-api/internal/notification"
	"ciblsport-api/internal/result"
	"ciblsport-api/internal/security"
	"ciblsport-api/internal/venue"
	"ciblsport-api/pkg/discord"
	pkgLog "ciblsport-api/pkg/log"
	"ciblsport-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting background services and HTTP serving.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	logger      pkgLog.Logger
	port        int
	environment string

	// Domain use cases
	authUC         auth.UseCase
	eventUC        event.UseCase
	resultUC       result.UseCase
	securityUC     security.UseCase
	notificationUC notification.UseCase
	venueUC        venue.UseCase

	// Auth & security
	jwtMgr scope.Manager

	// External services
	discord discord.IDiscord

	// Demo event generator
	simulationEnabled bool
}

// Config is the constructor input for HTTPServer.
// Keep this minimal: only fields really needed by HTTPServer.
type Config struct {
	// Server configuration
	Port        int
	Environment string

	// Domain use cases
	AuthUC         auth.UseCase
	EventUC        event.UseCase
	ResultUC       result.UseCase
	SecurityUC     security.UseCase
	NotificationUC notification.UseCase
	VenueUC        venue.UseCase

	// Auth & security
	JWTManager scope.Manager

	// External services
	Discord discord.IDiscord

	// Demo event generator
	SimulationEnabled bool
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Environment) // cfg.Environment should map to gin mode by convention

	srv := &HTTPServer{
		// Server configuration
		gin:         gin.Default(),
		logger:      logger,
		port:        cfg.Port,
		environment: cfg.Environment,

		// Domain use cases
		authUC:         cfg.AuthUC,
		eventUC:        cfg.EventUC,
		resultUC:       cfg.ResultUC,
		securityUC:     cfg.SecurityUC,
		notificationUC: cfg.NotificationUC,
		venueUC:        cfg.VenueUC,

		// Auth & security
		jwtMgr: cfg.JWTManager,

		// External services
		discord: cfg.Discord,

		// Demo event generator
		simulationEnabled: cfg.SimulationEnabled,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if srv.authUC == nil {
		return errors.New("auth use case is required")
	}
	if srv.eventUC == nil {
		return errors.New("event use case is required")
	}
	if srv.resultUC == nil {
		return errors.New("result use case is required")
	}
	if srv.securityUC == nil {
		return errors.New("security use case is required")
	}
	if srv.notificationUC == nil {
		return errors.New("notification use case is required")
	}
	if srv.venueUC == nil {
		return errors.New("venue use case is required")
	}

	return nil
}
