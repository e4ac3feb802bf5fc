package history

import (
	"context"
	"net/http"

	"codeberg.org/codecopilot/server/api/rest/pagination"
	"codeberg.org/codecopilot/server/internal/errors"
	"codeberg.org/codecopilot/server/internal/history"
	"github.com/gin-gonic/gin"
)

type Reader interface {
	List(ctx context.Context, page, pageSize int) (*history.Page, error)
}

// lists past generations, newest first
func Handler(reader Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.ParseParams(c)

		page, err := reader.List(c.Request.Context(), params.Page, params.Limit)
		if err != nil {
			errors.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Data:       page.Items,
			Pagination: pagination.NewMeta(page.Total, page.Page, page.PageSize, page.TotalPages),
		})
	}
}
