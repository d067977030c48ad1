package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VijeyRoshan/VoyaGo/internal/adapters/cache"
	"github.com/VijeyRoshan/VoyaGo/internal/adapters/database"
	"github.com/VijeyRoshan/VoyaGo/internal/api/handlers"
	"github.com/VijeyRoshan/VoyaGo/internal/api/middleware"
	"github.com/VijeyRoshan/VoyaGo/internal/api/routes"
	"github.com/VijeyRoshan/VoyaGo/internal/application/services"
	"github.com/VijeyRoshan/VoyaGo/internal/auth"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/providers"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/clients/gemini"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/clients/postgres"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/clients/redis"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/observability"
	"github.com/VijeyRoshan/VoyaGo/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize adapters
	userAdapter := database.NewUserAdapter(pgClient)
	tripAdapter := database.NewTripAdapter(pgClient)
	accommodationAdapter := database.NewAccommodationAdapter(pgClient)
	transportationAdapter := database.NewTransportationAdapter(pgClient)
	activityAdapter := database.NewActivityAdapter(pgClient)

	// Initialize token manager
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	// Initialize Gemini client; without a key the suggestion service
	// serves canned fallback suggestions
	var suggestionProvider providers.SuggestionProvider
	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini)
	if err != nil {
		log.Printf("Warning: Failed to initialize Gemini client: %v", err)
	} else {
		suggestionProvider = geminiClient
	}

	// Initialize services
	authService := services.NewAuthService(userAdapter, jwtManager)
	tripService := services.NewTripService(
		tripAdapter,
		accommodationAdapter,
		transportationAdapter,
		activityAdapter,
		cacheProvider,
		metrics,
	)
	accommodationService := services.NewAccommodationService(accommodationAdapter, tripAdapter)
	transportationService := services.NewTransportationService(transportationAdapter, tripAdapter)
	activityService := services.NewActivityService(activityAdapter, tripAdapter)
	itineraryService := services.NewItineraryService(
		tripAdapter,
		accommodationAdapter,
		transportationAdapter,
		activityAdapter,
	)
	suggestionService := services.NewSuggestionService(suggestionProvider, cacheProvider, metrics)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, jwtManager.TokenDuration())
	tripHandler := handlers.NewTripHandler(tripService, itineraryService)
	accommodationHandler := handlers.NewAccommodationHandler(accommodationService)
	transportationHandler := handlers.NewTransportationHandler(transportationService)
	activityHandler := handlers.NewActivityHandler(activityService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userAdapter)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Println("Cache middleware initialized successfully")
	}

	// Set up router
	router := routes.NewRouter(
		authHandler,
		tripHandler,
		accommodationHandler,
		transportationHandler,
		activityHandler,
		suggestionHandler,
		authMiddleware,
		cacheMiddleware,
		cfg.CORS.AllowedOrigins,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
