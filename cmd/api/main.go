package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/auth"
	"github.com/harentsoaR/doctors-portal-api/internal/config"
	"github.com/harentsoaR/doctors-portal-api/internal/database"
	"github.com/harentsoaR/doctors-portal-api/internal/handlers"
	"github.com/harentsoaR/doctors-portal-api/internal/logger"
	"github.com/harentsoaR/doctors-portal-api/internal/repository"
	"github.com/harentsoaR/doctors-portal-api/internal/routes"
	"github.com/harentsoaR/doctors-portal-api/internal/services"
)

func main() {
	cfg, dotenv, err := config.Load()
	if err != nil {
		bootLog := logger.New("info")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(cfg.LogLevel)

	if !dotenv {
		log.Info().Msg("no .env file found, relying on environment variables")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.Info().
		Str("port", cfg.Port).
		Str("database", cfg.MongoDatabase).
		Str("auth_provider", cfg.AuthProvider).
		Bool("normalize_appointment_date", cfg.NormalizeAppointmentDate).
		Bool("admin_silent_denial", cfg.AdminSilentDenial).
		Bool("payment_requires_auth", cfg.PaymentRequiresAuth).
		Msg("configuration loaded")

	// Cancelled on shutdown so requests held open (silent admin denial) are released.
	rootCtx, cancelRoot := context.WithCancel(context.Background())
	defer cancelRoot()

	// --- Database Connection ---
	client, err := database.Connect(rootCtx, cfg.MongoConnectionURI(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	db := client.Database(cfg.MongoDatabase)

	// --- External Services ---
	verifier, err := auth.NewVerifier(rootCtx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise token verifier")
	}
	gateway, err := services.NewStripeGateway(cfg.StripeSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise payment gateway")
	}

	// --- Handlers & Router ---
	h := handlers.NewHandler(
		repository.NewAppointmentMongoRepository(db),
		repository.NewUserMongoRepository(db),
		repository.NewDoctorMongoRepository(db),
		gateway,
		log,
		handlers.Options{
			NormalizeAppointmentDate: cfg.NormalizeAppointmentDate,
			AdminSilentDenial:        cfg.AdminSilentDenial,
			PaymentRequiresAuth:      cfg.PaymentRequiresAuth,
		},
	)

	gin.SetMode(cfg.GinMode)
	r := routes.NewRouter(h, verifier, log, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     r,
		BaseContext: func(net.Listener) context.Context { return rootCtx },
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server startup error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	cancelRoot()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	database.Disconnect(shutdownCtx, client, log)
}
