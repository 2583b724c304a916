package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/petetru/careermap-backend/internal/careers"
	"github.com/petetru/careermap-backend/internal/clients/gemini"
	"github.com/petetru/careermap-backend/internal/http/handlers"
	"github.com/petetru/careermap-backend/internal/observability"
	"github.com/petetru/careermap-backend/internal/platform/envutil"
	"github.com/petetru/careermap-backend/internal/platform/logger"
	"github.com/petetru/careermap-backend/internal/platform/secrets"
	"github.com/petetru/careermap-backend/internal/server"
	"github.com/petetru/careermap-backend/internal/session"
)

func main() {
	// Logger
	logMode := envutil.Str("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing (no-op unless OTEL_ENABLED)
	ctx := context.Background()
	tracingEnabled := envutil.Bool("OTEL_ENABLED", false)
	shutdownTracing := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "careermap-backend",
		Environment: envutil.Str("DEPLOY_ENV", "dev"),
		Version:     envutil.Str("SERVICE_VERSION", "dev"),
	})
	if shutdownTracing != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = shutdownTracing(shutdownCtx)
		}()
	}

	// Catalog
	log.Info("Loading career catalog...")
	catalog, err := careers.LoadCatalog()
	if err != nil {
		log.Error("Could not load catalog", "error", err)
		os.Exit(1)
	}

	// Clients
	log.Info("Setting up clients from main...")
	creds := secrets.NewResolver(log)
	geminiClient, err := gemini.NewClient(log)
	if err != nil {
		log.Error("Could not init GeminiClient", "error", err)
		os.Exit(1)
	}

	// Session store: Redis when configured, in-process otherwise.
	var store session.Store
	if envutil.Str("REDIS_ADDR", "") != "" {
		store, err = session.NewRedisStore(log)
		if err != nil {
			log.Error("Could not init Redis session store", "error", err)
			os.Exit(1)
		}
		log.Info("Using Redis session store")
	} else {
		ttl := time.Duration(envutil.Int("SESSION_TTL_SECONDS", 86400)) * time.Second
		store = session.NewMemoryStore(log, ttl)
		log.Info("Using in-memory session store")
	}

	// Services
	log.Info("Setting up services from main...")
	careerService, err := careers.NewService(log, catalog, creds, geminiClient)
	if err != nil {
		log.Error("Could not init CareerService", "error", err)
		os.Exit(1)
	}

	// Handlers
	log.Info("Setting up handlers from main...")
	careerHandler := handlers.NewCareerMapHandler(log, careerService, store)
	healthHandler := handlers.NewHealthHandler()

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:              log,
		CareerMapHandler: careerHandler,
		HealthHandler:    healthHandler,
		EnableTracing:    tracingEnabled,
	})

	port := envutil.Str("PORT", "8080")
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
