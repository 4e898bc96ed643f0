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

	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/adapters/cache"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/adapters/database"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/adapters/search"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/api/handlers"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/api/middleware"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/api/routes"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/providers"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/domain/repositories"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/clients/postgres"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/clients/redis"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/clients/typesense"
	"github.com/Shubham-Saboo/Voice-AI-Agents/internal/infrastructure/observability"
	queryservices "github.com/Shubham-Saboo/Voice-AI-Agents/internal/query/services"
	"github.com/Shubham-Saboo/Voice-AI-Agents/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger("provider-directory-api", cfg.Env)

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

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		// Continue without Redis - the application works without caching
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Warning: Failed to initialize Typesense client: %v", err)
	} else {
		log.Println("Typesense client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Create base provider adapter, wrapped with caching when Redis is up
	baseProviderAdapter := database.NewProviderAdapter(pgClient)
	var providerAdapter repositories.ProviderRepository
	if cacheProvider != nil {
		providerAdapter = database.NewCachedProviderAdapter(baseProviderAdapter, cacheProvider)
		log.Println("Provider adapter wrapped with caching layer")
	} else {
		providerAdapter = baseProviderAdapter
		log.Println("Provider adapter running without cache (Redis unavailable)")
	}

	var searchRepo repositories.ProviderSearchRepository
	if typesenseClient != nil {
		if err := typesenseClient.InitSchema(context.Background()); err != nil {
			log.Printf("Warning: Failed to init Typesense schema: %v", err)
		}
		searchRepo = search.NewTypesenseAdapter(typesenseClient)
	}

	// The query engine evaluates against an in-memory snapshot
	snapshotStore := queryservices.NewSnapshotStore(providerAdapter, cfg.Snapshot.TTL, metrics)
	if _, err := snapshotStore.Reload(ctx); err != nil {
		log.Printf("Warning: initial snapshot load failed: %v", err)
	} else {
		log.Printf("Provider snapshot loaded (%d providers)", snapshotStore.Size())
	}

	queryService := queryservices.NewProviderQueryService(snapshotStore, providerAdapter, metrics)

	providerHandler := handlers.NewProviderHandler(queryService, searchRepo)
	queryHandler := handlers.NewQueryHandler(queryService)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Println("Cache middleware initialized successfully")
	}

	router := routes.NewRouter(
		providerHandler,
		queryHandler,
		cacheMiddleware,
		metrics,
	)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
