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
	"golang.org/x/crypto/bcrypt"

	"registrationdesk/config"
	_ "registrationdesk/docs"
	"registrationdesk/internal/adapters/auth"
	httpdelivery "registrationdesk/internal/delivery/http"
	"registrationdesk/internal/delivery/http/controllers"
	"registrationdesk/internal/delivery/http/middleware"
	"registrationdesk/internal/repository/postgres"
	"registrationdesk/internal/services"
)

const (
	tokenTTL        = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

// @title Registration Desk API
// @version 1.0
// @description Event and participation registration API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	personRepo := postgres.NewPersonParticipationRepository(db)
	companyRepo := postgres.NewCompanyParticipationRepository(db)
	staffRepo := postgres.NewStaffRepository(db)

	registrationService := services.NewRegistrationService(
		services.NewEventValidator(),
		services.NewParticipationValidator(eventRepo),
		eventRepo,
		personRepo,
		companyRepo,
		logger,
	)
	staffService := services.NewStaffService(
		staffRepo,
		auth.NewBcryptHasher(bcrypt.DefaultCost),
		auth.NewJWTIssuer(cfg.JWTSecret),
		tokenTTL,
	)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	mux := httpdelivery.NewRouter(
		controllers.NewEventController(logger, registrationService),
		controllers.NewParticipationController(logger, registrationService),
		controllers.NewAuthController(logger, staffService),
		verifier,
		logger,
	)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
