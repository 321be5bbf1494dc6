// Package main is the entry point for the trip planner API server.
// Its sole responsibility is wiring dependencies together and starting the
// server; no business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"planner/config"
	emailadapter "planner/internal/adapters/email"
	delivery "planner/internal/delivery/http"
	"planner/internal/delivery/http/controllers"
	"planner/internal/delivery/http/middleware"
	"planner/internal/repository/postgres"
	"planner/internal/services"
	"planner/migrations"
)

const serviceTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("failed to set migration dialect", "err", err)
		os.Exit(1)
	}
	if err := goose.Up(db, "."); err != nil {
		logger.Error("failed to apply migrations", "err", err)
		os.Exit(1)
	}
	logger.Info("database ready")

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: emailadapter.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	// Repositories
	tripRepo := postgres.NewTripRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	linkRepo := postgres.NewLinkRepository(db)

	// Services
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	tripService := services.NewTripService(tripRepo, participantRepo, emailService, logger, cfg.APIBaseURL, serviceTimeout)
	participantService := services.NewParticipantService(tripRepo, participantRepo, emailService, logger, cfg.APIBaseURL, serviceTimeout)
	activityService := services.NewActivityService(tripRepo, activityRepo, serviceTimeout)
	linkService := services.NewLinkService(tripRepo, linkRepo, serviceTimeout)

	// Controllers
	tripController := controllers.NewTripController(logger, tripService)
	participantController := controllers.NewParticipantController(logger, participantService)
	activityController := controllers.NewActivityController(logger, activityService)
	linkController := controllers.NewLinkController(logger, linkService)

	mux := delivery.NewRouter(tripController, participantController, activityController, linkController)
	handler := middleware.CORS(cfg.CORSOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for an OS signal, then give in-flight requests
	// up to 15 seconds to complete.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	<-stop
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
