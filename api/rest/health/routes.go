package health

import "github.com/gin-gonic/gin"

// registers the banner and health endpoints
func RegisterRoutes(router *gin.Engine, db Pinger) {
	router.GET("/", RootHandler)
	router.GET("/health", Handler)
	router.GET("/health/ready", ReadyHandler(db))
}
