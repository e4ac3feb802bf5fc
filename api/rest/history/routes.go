package history

import (
	"github.com/gin-gonic/gin"
)

// registers generation history routes
func RegisterRoutes(router *gin.RouterGroup, reader Reader) {
	router.GET("/history", Handler(reader))
}
