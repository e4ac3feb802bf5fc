package generate

import (
	"context"
	"net/http"

	"codeberg.org/codecopilot/server/copilot/generations"
	"codeberg.org/codecopilot/server/internal/errors"
	"codeberg.org/codecopilot/server/internal/generator"
	"github.com/gin-gonic/gin"
)

type Generator interface {
	Generate(ctx context.Context, req generator.Request) (*generations.Generation, error)
}

// creates a handler for code generation
func Handler(gen Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "prompt and language are required", err)
			return
		}

		record, err := gen.Generate(c.Request.Context(), generator.Request{
			Prompt:   req.Prompt,
			Language: req.Language,
		})

		if err != nil {
			errors.Respond(c, err)
			return
		}

		c.JSON(http.StatusCreated, record)
	}
}
