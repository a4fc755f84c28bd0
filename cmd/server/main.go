package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/AnshRaj112/mindjournal-backend/internal/config"
	"github.com/AnshRaj112/mindjournal-backend/internal/handlers"
	"github.com/AnshRaj112/mindjournal-backend/internal/logger"
	"github.com/AnshRaj112/mindjournal-backend/internal/middleware"
	"github.com/AnshRaj112/mindjournal-backend/internal/routes"
	"github.com/AnshRaj112/mindjournal-backend/internal/services"
)

func main() {
	exitCode := 0
	// Registered first so it runs after every other deferred cleanup.
	defer func() { os.Exit(exitCode) }()

	// Load env
	envErr := godotenv.Load()
	// Load configuration
	cfg := config.Load()

	log := logger.NewLogger("server", cfg.LogLevel)
	if envErr != nil {
		log.Info().Msg("No .env file found")
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.Timezone).Msg("unknown TIMEZONE, using UTC")
	}

	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("storage unavailable")
	}
	defer closeStore()

	opts := services.Options{
		Logger:     log,
		Location:   loc,
		SessionTTL: cfg.SessionTTL,
	}

	// Initialize Cloudinary service
	if cfg.CloudinaryEnabled() {
		cld, err := services.NewCloudinaryService(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Warn().Err(err).Msg("Cloudinary unavailable; export backups disabled")
		} else {
			opts.Uploader = cld
			log.Info().Msg("Cloudinary service initialized")
		}
	} else {
		log.Info().Msg("Cloudinary credentials not found; export backups disabled")
	}

	svc := services.New(store, opts)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := svc.Users.EnsureSuperAdmin(ctx, cfg.SuperAdminPassword); err != nil {
		log.Error().Err(err).Msg("failed to provision superadmin")
	}
	cancel()

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.TraceID(log))
	r.Use(middleware.AccessLog)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity(cfg.AllowedHost, cfg.TrustProxy) {
			r.Use(mw)
		}
		log.Info().Msg("Production security enabled (security headers, host check, per-IP + login rate limiting)")
	}

	routes.SetupRoutes(r, handlers.New(svc))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("port", cfg.Port).Str("storage", cfg.StorageDriver).Msg("MindJournal backend running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	if err := serve(srv, stop, 10*time.Second); err != nil {
		log.Error().Err(err).Msg("server failed")
		exitCode = 1
		return
	}
	log.Info().Msg("server stopped")
}
