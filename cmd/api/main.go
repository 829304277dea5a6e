package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ciblsport-api/config"
	authRepo "ciblsport-api/internal/auth/repository"
	authInmem "ciblsport-api/internal/auth/repository/inmem"
	authUsecase "ciblsport-api/internal/auth/usecase"
	"ciblsport-api/internal/dispatch"
	eventRepo "ciblsport-api/internal/event/repository"
	eventInmem "ciblsport-api/internal/event/repository/inmem"
	eventUsecase "ciblsport-api/internal/event/usecase"
	"ciblsport-api/internal/httpserver"
	"ciblsport-api/internal/model"
	notificationInmem "ciblsport-api/internal/notification/repository/inmem"
	notificationUsecase "ciblsport-api/internal/notification/usecase"
	resultInmem "ciblsport-api/internal/result/repository/inmem"
	resultUsecase "ciblsport-api/internal/result/usecase"
	securityInmem "ciblsport-api/internal/security/repository/inmem"
	securityUsecase "ciblsport-api/internal/security/usecase"
	venueRepo "ciblsport-api/internal/venue/repository"
	venueInmem "ciblsport-api/internal/venue/repository/inmem"
	venueUsecase "ciblsport-api/internal/venue/usecase"
	"ciblsport-api/pkg/discord"
	"ciblsport-api/pkg/encrypter"
	pkgLog "ciblsport-api/pkg/log"
	pkgMinio "ciblsport-api/pkg/minio"
	"ciblsport-api/pkg/scope"
)

// @title       CiblSport API
// @description Championship event management backend for the swimming championships
// @version     1.0
// @host        localhost:8080
// @BasePath    /api/v1
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	// Initialize logger
	logger := pkgLog.Init(pkgLog.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting CiblSport API...")

	// Discord webhooks (both optional)
	var reportClient, pushClient discord.IDiscord
	if cfg.Discord.ReportWebhookURL != "" {
		reportClient, err = discord.New(logger, cfg.Discord.ReportWebhookURL)
		if err != nil {
			logger.Warnf(ctx, "Discord report webhook not configured (optional): %v", err)
		} else {
			logger.Info(ctx, "Discord report webhook initialized")
		}
	}
	if cfg.Discord.PushWebhookURL != "" {
		pushClient, err = discord.New(logger, cfg.Discord.PushWebhookURL)
		if err != nil {
			logger.Warnf(ctx, "Discord push webhook not configured (optional): %v", err)
		} else {
			logger.Info(ctx, "Discord push webhook initialized")
		}
	}

	// MinIO - venue map storage (optional)
	var storage pkgMinio.MinIO
	if cfg.MinIO.Enabled {
		storage, err = pkgMinio.NewMinIO(&cfg.MinIO)
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize MinIO client: %v", err)
			return
		}
		if err := storage.Connect(ctx); err != nil {
			logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
			return
		}
		if err := storage.EnsureBucket(ctx, cfg.MinIO.Bucket); err != nil {
			logger.Errorf(ctx, "Failed to ensure MinIO bucket: %v", err)
			return
		}
		defer storage.Close()
		logger.Infof(ctx, "MinIO client initialized, bucket: %s", cfg.MinIO.Bucket)
	}

	// JWT manager
	jwtMgr := scope.New(cfg.JWT.SecretKey)
	logger.Info(ctx, "JWT manager initialized")

	// Domain event dispatcher
	dispatcher := dispatch.New(logger)

	// Repositories
	userRepository := authInmem.New(logger)
	eventRepository := eventInmem.New(logger)
	resultRepository := resultInmem.New(logger)
	incidentRepository := securityInmem.NewIncidentRepository(logger)
	alertRepository := securityInmem.NewAlertRepository(logger)
	notificationRepository := notificationInmem.New(logger)
	preferenceRepository := notificationInmem.NewPreferenceRepository(logger, cfg.Notification.PreferencePath)
	venueRepository := venueInmem.New(logger)

	// Use cases
	authUC := authUsecase.New(logger, userRepository, jwtMgr)
	eventUC := eventUsecase.New(logger, eventRepository, dispatcher)
	resultUC := resultUsecase.New(logger, resultRepository, eventRepository, dispatcher)
	securityUC := securityUsecase.New(logger, incidentRepository, alertRepository, dispatcher, securityUsecase.Config{
		SweepInterval: cfg.Alert.SweepInterval,
	})
	notificationUC := notificationUsecase.New(logger, notificationRepository, preferenceRepository, pushClient, notificationUsecase.Config{
		SimulatorInterval: cfg.Simulation.Interval,
	})
	venueUC := venueUsecase.New(logger, venueRepository, storage, cfg.MinIO.Bucket)

	// The notification feed reacts to result, event, incident and alert events.
	dispatcher.Subscribe(notificationUC)

	// Demo fixtures so the API is usable out of the box
	if err := seed(ctx, userRepository, eventRepository, venueRepository); err != nil {
		logger.Errorf(ctx, "Failed to seed fixtures: %v", err)
		return
	}
	logger.Info(ctx, "Demo fixtures seeded")

	srv, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.Server.Port,
		Environment: cfg.Server.Mode,

		AuthUC:         authUC,
		EventUC:        eventUC,
		ResultUC:       resultUC,
		SecurityUC:     securityUC,
		NotificationUC: notificationUC,
		VenueUC:        venueUC,

		JWTManager: jwtMgr,
		Discord:    reportClient,

		SimulationEnabled: cfg.Simulation.Enabled,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server stopped with error: %v", err)
	}
}

// seed loads demo users, venues and events into the in-memory repositories.
func seed(ctx context.Context, users authRepo.Repository, events eventRepo.Repository, venues venueRepo.Repository) error {
	now := time.Now()

	demoUsers := []struct {
		email    string
		password string
		role     string
		first    string
		last     string
	}{
		{"organizer@ciblsport.fr", "organizer123", model.RoleAdmin, "Claire", "Dubois"},
		{"official@ciblsport.fr", "official123", model.RoleOfficial, "Marc", "Lefevre"},
		{"athlete@ciblsport.fr", "athlete123", model.RoleAthlete, "Léon", "Marchand"},
	}
	for _, u := range demoUsers {
		hash, err := encrypter.HashPassword(u.password)
		if err != nil {
			return err
		}
		if _, err := users.Create(ctx, authRepo.CreateOptions{
			User: model.User{
				ID:           uuid.NewString(),
				Email:        u.email,
				PasswordHash: hash,
				Role:         u.role,
				FirstName:    u.first,
				LastName:     u.last,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		}); err != nil {
			return err
		}
	}

	demoVenues := []model.Venue{
		{
			ID:         "venue-defense-arena",
			Name:       "Paris La Défense Arena",
			Address:    "99 Jardins de l'Arche, 92000 Nanterre",
			Latitude:   48.8957,
			Longitude:  2.2294,
			Capacity:   15220,
			Facilities: []string{"olympic-pool", "warmup-pool", "media-center"},
			AccessInfo: "RER A - La Défense, exit Grande Arche",
			EmergencyContacts: []string{
				"Venue security: +33 1 44 00 00 01",
				"Medical desk: +33 1 44 00 00 02",
			},
			MapObjectKey: "maps/defense-arena.png",
		},
		{
			ID:         "venue-aquatics-centre",
			Name:       "Centre Aquatique Olympique",
			Address:    "Rue des Fillettes, 93200 Saint-Denis",
			Latitude:   48.9245,
			Longitude:  2.3602,
			Capacity:   5000,
			Facilities: []string{"diving-pool", "training-pool"},
			AccessInfo: "Metro 12 - Front Populaire",
		},
	}
	for _, v := range demoVenues {
		if _, err := venues.Create(ctx, v); err != nil {
			return err
		}
	}

	demoEvents := []model.Event{
		{
			ID:         "event-400im-final",
			Name:       "Men's 400m Individual Medley - Final",
			Type:       model.EventTypeCompetition,
			Sport:      "swimming",
			Discipline: "400m individual medley",
			Venue:      "Paris La Défense Arena",
			StartTime:  now.Add(2 * time.Hour),
			EndTime:    now.Add(3 * time.Hour),
			Status:     model.EventStatusScheduled,
			Athletes: []model.Athlete{
				{ID: uuid.NewString(), Name: "Léon Marchand", Country: "FRA", Lane: 4},
				{ID: uuid.NewString(), Name: "Carson Foster", Country: "USA", Lane: 5},
				{ID: uuid.NewString(), Name: "Daiya Seto", Country: "JPN", Lane: 3},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "event-opening-ceremony",
			Name:      "Opening Ceremony",
			Type:      model.EventTypeCeremony,
			Sport:     "swimming",
			Venue:     "Paris La Défense Arena",
			StartTime: now.Add(30 * time.Minute),
			EndTime:   now.Add(90 * time.Minute),
			Status:    model.EventStatusScheduled,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, e := range demoEvents {
		if _, err := events.Create(ctx, eventRepo.CreateOptions{Event: e}); err != nil {
			return err
		}
	}

	return nil
}
