package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Run starts the HTTP server and all background services, then blocks until shutdown signal.
// This method manages the complete lifecycle of the API:
//  1. Map HTTP handlers and routes (Initialize wiring)
//  2. Start background services (alert sweeper, optional demo simulator)
//  3. Start HTTP server
//  4. Wait for shutdown signal
func (srv *HTTPServer) Run() error {
	ctx := context.Background()
	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// 1. Map handlers
	if err := srv.mapHandlers(); err != nil {
		srv.logger.Fatalf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	// 2. Start background services
	go srv.securityUC.RunSweeper(bgCtx)
	srv.logger.Info(ctx, "Alert sweeper background service started")

	if srv.simulationEnabled {
		go srv.notificationUC.RunSimulator(bgCtx)
		srv.logger.Info(ctx, "Demo notification simulator started")
	}

	// 3. Start HTTP server in background
	go func() {
		if err := srv.gin.Run(fmt.Sprintf(":%d", srv.port)); err != nil {
			srv.logger.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.logger.Infof(ctx, "HTTP server started on port: %d", srv.port)

	// 4. Wait for shutdown signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.logger.Info(ctx, <-ch)
	srv.logger.Info(ctx, "Stopping API service...")

	// Graceful shutdown: stop background loops, then flush the error reporter.
	cancel()
	if srv.discord != nil {
		if err := srv.discord.Close(); err != nil {
			srv.logger.Errorf(ctx, "Discord client close error: %v", err)
		}
	}

	return nil
}
