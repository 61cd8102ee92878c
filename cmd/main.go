package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	"github.com/Dosada05/padel-live/apiclient"
	"github.com/Dosada05/padel-live/brackets"
	"github.com/Dosada05/padel-live/config"
	"github.com/Dosada05/padel-live/db"
	"github.com/Dosada05/padel-live/handlers"
	"github.com/Dosada05/padel-live/repositories"
	"github.com/Dosada05/padel-live/routes"
	"github.com/Dosada05/padel-live/services"
	"github.com/Dosada05/padel-live/storage"
	"github.com/Dosada05/padel-live/viewers"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("log_level", level.String()))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	if err := db.EnsureSchema(context.Background(), dbConn); err != nil {
		logger.Error("failed to apply database schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database connection established")

	backend, err := apiclient.New(apiclient.Config{BaseURL: cfg.BackendAPIURL, Timeout: cfg.BackendAPITimeout})
	if err != nil {
		logger.Error("failed to initialize backend API client", slog.Any("error", err))
		os.Exit(1)
	}
	defer backend.Close()

	var uploader services.FileUploader
	r2Config := storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2.AccountID,
		AccessKeyID:     cfg.R2.AccessKeyID,
		SecretAccessKey: cfg.R2.SecretAccessKey,
		BucketName:      cfg.R2.BucketName,
		PublicBaseURL:   cfg.R2.PublicBaseURL,
		Endpoint:        cfg.R2.Endpoint,
	}
	if r2Config.Enabled() {
		r2, err := storage.NewCloudflareR2Uploader(context.Background(), r2Config)
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		uploader = r2
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("Cloudflare R2 is not configured, export uploads are disabled")
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := viewers.NewHub(logger)
	go hub.Run(hubCtx)

	clock := clockwork.NewRealClock()

	displayRepo := repositories.NewPostgresDisplaySettingsRepository(dbConn)

	tournamentService := services.NewTournamentService(backend)
	displayService := services.NewDisplayService(backend, displayRepo)
	bracketService := services.NewBracketService(backend, displayService, brackets.NewSingleEliminationGenerator(), logger)
	exportService := services.NewExportService(tournamentService, uploader, clock)
	tvService := services.NewTVService(tournamentService, bracketService, displayService, hub, clock, logger)
	authService, err := services.NewAuthService(services.AuthConfig{
		Provider: services.IdentityProviderConfig{
			ClientID:     cfg.IDP.ClientID,
			ClientSecret: cfg.IDP.ClientSecret,
			AuthorizeURL: cfg.IDP.AuthorizeURL,
			TokenURL:     cfg.IDP.TokenURL,
			UserInfoURL:  cfg.IDP.UserInfoURL,
			RedirectURL:  cfg.IDP.RedirectURL,
			Scopes:       cfg.IDP.Scopes,
		},
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		Clock:         clock,
	})
	if err != nil {
		logger.Error("failed to initialize auth service", slog.Any("error", err))
		os.Exit(1)
	}
	if !cfg.AuthEnabled() {
		logger.Warn("identity provider is not configured, sign-in is disabled")
	}
	logger.Info("services initialized")

	router := chi.NewRouter()
	routes.SetupRoutes(router, routes.Handlers{
		Viewer: handlers.NewViewerHandler(hub, handlers.ViewerHandlerConfig{
			Heartbeat:      cfg.ViewerHeartbeatInterval,
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Clock:          clock,
		}),
		Tournament: handlers.NewTournamentHandler(tournamentService),
		Export:     handlers.NewExportHandler(exportService),
		Bracket:    handlers.NewBracketHandler(bracketService, displayService),
		TV:         handlers.NewTVHandler(tvService),
		Auth: handlers.NewAuthHandler(authService, handlers.AuthHandlerConfig{
			SecureCookies: cfg.SecureCookies,
			AfterLoginURL: cfg.PublicBaseURL,
		}),
		Health: handlers.NewHealthHandler(dbConn),
	}, routes.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Sessions:       authService,
	})
	logger.Info("routes configured")

	// WriteTimeout also applies to streams; the SSE transport lifts it per response.
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			stopHub()
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		// Streams only end when the hub stops, so stop it before draining.
		stopHub()
		<-hub.Done()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
