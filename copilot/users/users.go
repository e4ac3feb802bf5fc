package users

import (
	"context"
	"errors"
	"fmt"

	apierrors "codeberg.org/codecopilot/server/internal/errors"
	"codeberg.org/codecopilot/server/internal/storage"
	"github.com/jackc/pgx/v5"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// creates a new user repository
func NewRepository(db storage.DB) *Repository {
	return &Repository{db: db}
}

// finds a user by username
func (r *Repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindByUsername, username).Scan(
		&user.ID,
		&user.Username,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// returns the user with the given username, creating it on first use.
//
// Two concurrent first calls can both miss on the lookup. The unique
// constraint on username decides the winner; the loser re-reads the row
// the winner inserted instead of surfacing the violation.
func (r *Repository) EnsureByUsername(ctx context.Context, username string) (*User, error) {
	user, err := r.FindByUsername(ctx, username)
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user, err = r.create(ctx, username)
	if err == nil {
		return user, nil
	}

	if !apierrors.IsUniqueViolation(err) {
		return nil, err
	}

	user, err = r.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read user after conflict: %w", err)
	}

	return user, nil
}

func (r *Repository) create(ctx context.Context, username string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryCreate, username).Scan(
		&user.ID,
		&user.Username,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}
