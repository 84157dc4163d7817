package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/waypost/api/internal/config"
	"github.com/waypost/api/internal/database"
	"github.com/waypost/api/internal/handler"
	"github.com/waypost/api/internal/middleware"
	"github.com/waypost/api/internal/repository"
	"github.com/waypost/api/internal/service"
	"github.com/waypost/api/internal/storage"
	"github.com/waypost/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Development gets a fixed signing secret so the server runs with zero
	// setup; Validate() refuses an empty secret everywhere else
	if cfg.JWT.Secret == "" {
		slog.Warn("JWT_SECRET not set, using insecure development secret")
		cfg.JWT.Secret = "waypost-dev-secret"
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	if err := database.EnsureSchema(ctx, db); err != nil {
		slog.Error("failed to apply database schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize image storage
	imageStore, err := storage.NewImageStore(cfg.Uploads.Dir, cfg.Uploads.MaxSizeMB)
	if err != nil {
		slog.Error("failed to initialize image storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	placeRepo := repository.NewPlaceRepository(db)

	// Initialize services
	geocoder := service.NewGoogleGeocoder(cfg.Geocoding)
	authService := service.NewAuthService(userRepo, jwtService)
	placeService := service.NewPlaceService(placeRepo, userRepo, geocoder, imageStore, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	placeHandler := handler.NewPlaceHandler(placeService)
	imageHandler := handler.NewImageHandler(imageStore, cfg.Uploads.PublicPath, cfg.Uploads.MaxSizeMB)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// User endpoints (public)
	mux.HandleFunc("POST /v1/users/signup", authHandler.Signup)
	mux.HandleFunc("POST /v1/users/login", authHandler.Login)
	mux.HandleFunc("GET /v1/users", authHandler.ListUsers)

	// Place endpoints (public reads)
	mux.HandleFunc("GET /v1/places/{placeId}", placeHandler.GetByID)
	mux.HandleFunc("GET /v1/users/{userId}/places", placeHandler.ListByUser)

	// Protected endpoints
	authMiddleware := middleware.Auth(authService)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))
	mux.Handle("POST /v1/places", authMiddleware(http.HandlerFunc(placeHandler.Create)))
	mux.Handle("PATCH /v1/places/{placeId}", authMiddleware(http.HandlerFunc(placeHandler.Update)))
	mux.Handle("DELETE /v1/places/{placeId}", authMiddleware(http.HandlerFunc(placeHandler.Delete)))
	mux.Handle("POST /v1/images", authMiddleware(http.HandlerFunc(imageHandler.Upload)))

	// Serve uploaded images
	mux.Handle("GET "+cfg.Uploads.PublicPath+"/",
		http.StripPrefix(cfg.Uploads.PublicPath+"/", http.FileServer(http.Dir(cfg.Uploads.Dir))))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
