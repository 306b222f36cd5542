package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/eventplanner/internal/api/http"
	"github.com/aussiebroadwan/eventplanner/internal/api/notify"
	"github.com/aussiebroadwan/eventplanner/internal/api/service"
	"github.com/aussiebroadwan/eventplanner/internal/api/store"
	"github.com/aussiebroadwan/eventplanner/internal/api/store/drivers/sqlite"
	"github.com/aussiebroadwan/eventplanner/pkg/cryptox"
	"github.com/aussiebroadwan/eventplanner/pkg/jwtx"
	"github.com/aussiebroadwan/eventplanner/pkg/mailx"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the API service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   *jwtx.Signer
	notifier notify.Notifier

	// Services
	authService               *service.AuthService
	orgInvitationService      *service.OrgInvitationService
	eventService              *service.EventService
	attendeeInvitationService *service.AttendeeInvitationService
	memberService             *service.MemberService
	housekeepingService       *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "eventplanner-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.PepperFile != "" {
		if err := cryptox.LoadPepperFile(cfg.PepperFile); err != nil {
			return nil, fmt.Errorf("failed to load pepper: %w", err)
		}
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	signer, err := InitSigner(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize signing key: %w", err)
	}
	app.signer = signer

	if err := app.initNotifier(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed handler, for in-process tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	if err := app.housekeepingService.Start(); err != nil {
		return fmt.Errorf("failed to start housekeeping: %w", err)
	}

	app.logger.Info("api service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			app.housekeepingService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down api service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("api service stopped")
	return nil
}

// Close releases resources without serving. Used by tests that only need
// Handler.
func (app *Application) Close() error {
	return app.db.Close()
}

func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initNotifier picks SMTP when enabled and otherwise logs messages.
func (app *Application) initNotifier() error {
	var mailer mailx.Mailer
	if app.cfg.SMTP.Enabled {
		m, err := mailx.NewSMTPMailer(app.cfg.SMTP)
		if err != nil {
			return fmt.Errorf("failed to initialize smtp: %w", err)
		}
		mailer = m
		app.logger.Info("smtp mailer enabled", "host", app.cfg.SMTP.Host, "port", app.cfg.SMTP.Port)
	} else {
		mailer = &mailx.LogMailer{From: app.cfg.SMTP.From}
		app.logger.Warn("smtp disabled, invitation emails will only be logged")
	}

	app.notifier = &notify.MailNotifier{
		Mailer:    mailer,
		From:      app.cfg.SMTP.From,
		PublicURL: app.cfg.PublicURL,
	}
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		AccessTTL:  app.cfg.AccessTTL,
		RefreshTTL: app.cfg.RefreshTTL,
	}
	app.orgInvitationService = &service.OrgInvitationService{
		Store:    app.db,
		Auth:     app.authService,
		Notifier: app.notifier,
		TTL:      app.cfg.InvitationTTL,
	}
	app.eventService = &service.EventService{Store: app.db}
	app.memberService = &service.MemberService{Store: app.db}
	app.attendeeInvitationService = &service.AttendeeInvitationService{
		Store:    app.db,
		Notifier: app.notifier,
		TTL:      app.cfg.InvitationTTL,
	}
	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingSchedule,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		app.signer.Verifier(app.cfg.Issuer),
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.RateLimits,
		app.cfg.CORSOrigins,
	)

	router.AuthService = app.authService
	router.OrgInvitationService = app.orgInvitationService
	router.EventService = app.eventService
	router.AttendeeInvitationService = app.attendeeInvitationService
	router.MemberService = app.memberService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
