package users

import (
	"time"

	"codeberg.org/codecopilot/server/internal/storage"
)

// handles user database operations
type Repository struct {
	db storage.DB
}

// the principal that owns generations
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
