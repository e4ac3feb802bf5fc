package generate

import (
	"github.com/gin-gonic/gin"
)

// registers code generation routes
func RegisterRoutes(router *gin.RouterGroup, gen Generator) {
	router.POST("/generate", Handler(gen))
}
