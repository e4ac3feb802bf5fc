package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/codecopilot/server/copilot/generations"
	"codeberg.org/codecopilot/server/copilot/users"
	"codeberg.org/codecopilot/server/internal/config"
	"codeberg.org/codecopilot/server/internal/logger"
	"codeberg.org/codecopilot/server/internal/metrics"
	"codeberg.org/codecopilot/server/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := storage.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := storage.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("connected to database")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	userRepo := users.NewRepository(db)
	generationRepo := generations.NewRepository(db)

	services, err := InitializeServices(cfg, userRepo, generationRepo, m)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	logger.Info("code generator initialized",
		"model", services.LLM.Model(),
		"provider", cfg.HFProvider,
		"timeout", cfg.ProviderTimeout,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	server := &Server{
		db:             db,
		config:         cfg,
		userRepo:       userRepo,
		generationRepo: generationRepo,
		services:       services,
		metrics:        m,
		router:         router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
