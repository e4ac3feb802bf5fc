package history

import (
	"codeberg.org/codecopilot/server/api/rest/pagination"
	"codeberg.org/codecopilot/server/copilot/generations"
)

// Response wraps a page of generations with pagination metadata
type Response struct {
	Data       []generations.Generation `json:"data"`
	Pagination pagination.Meta          `json:"pagination"`
}
