package generations

import (
	"time"

	"codeberg.org/codecopilot/server/copilot/users"
	"codeberg.org/codecopilot/server/internal/storage"
)

type Repository struct {
	db storage.DB
}

// one persisted code generation
type Generation struct {
	ID        string      `json:"id"`
	Prompt    string      `json:"prompt"`
	Language  string      `json:"language"`
	Code      string      `json:"code"`
	Timestamp time.Time   `json:"timestamp"`
	UserID    string      `json:"ownerId"`
	User      *users.User `json:"user,omitempty"` // populated on history reads
}

// contains the fields written by Create; id and timestamp come from the store
type CreateParams struct {
	Prompt   string
	Language string
	Code     string
	UserID   string
}
