package main

import (
	"codeberg.org/codecopilot/server/copilot/generations"
	"codeberg.org/codecopilot/server/copilot/users"
	"codeberg.org/codecopilot/server/internal/config"
	"codeberg.org/codecopilot/server/internal/generator"
	"codeberg.org/codecopilot/server/internal/history"
	"codeberg.org/codecopilot/server/internal/llm"
	"codeberg.org/codecopilot/server/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db             *pgxpool.Pool
	config         *config.Config
	userRepo       *users.Repository
	generationRepo *generations.Repository
	services       *Services
	metrics        *metrics.Metrics
	router         *gin.Engine
}

// holds the services behind the REST handlers
type Services struct {
	LLM       llm.CodeGenerator
	Generator *generator.Generator
	History   *history.Reader
}
