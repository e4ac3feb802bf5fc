package main

import (
	"time"

	"codeberg.org/codecopilot/server/api/rest/generate"
	"codeberg.org/codecopilot/server/api/rest/health"
	"codeberg.org/codecopilot/server/api/rest/history"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware())
	router.Use(CORSMiddleware(server.config.AllowedOrigins))

	health.RegisterRoutes(router, server.db)
	router.GET("/metrics", gin.WrapH(server.metrics.Handler()))

	api := router.Group("/api")

	{
		generate.RegisterRoutes(api, server.services.Generator)
		history.RegisterRoutes(api, server.services.History)
	}
}

// allows the browser frontend to call the API
func CORSMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	return cors.New(corsConfig)
}
