package generations

import (
	"context"
	"fmt"

	"codeberg.org/codecopilot/server/copilot/users"
	"codeberg.org/codecopilot/server/internal/storage"
	"github.com/jackc/pgx/v5"
)

// count and page must come from one snapshot
var snapshotTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

func NewRepository(db storage.DB) *Repository {
	return &Repository{db: db}
}

// inserts a generation in a single statement and returns the stored row
func (r *Repository) Create(ctx context.Context, params CreateParams) (*Generation, error) {
	var g Generation

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		params.Prompt,
		params.Language,
		params.Code,
		params.UserID,
	).Scan(
		&g.ID,
		&g.Prompt,
		&g.Language,
		&g.Code,
		&g.Timestamp,
		&g.UserID,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to insert generation: %w", err)
	}

	return &g, nil
}

// returns one page of generations, newest first, together with the total
// count. Both reads run in a single repeatable-read transaction so the
// total always matches the snapshot the page was cut from.
func (r *Repository) ListPage(ctx context.Context, limit, offset int) ([]Generation, int, error) {
	tx, err := r.db.BeginTx(ctx, snapshotTxOptions)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin history transaction: %w", err)
	}

	items, total, err := listPage(ctx, tx, limit, offset)
	if err != nil {
		_ = tx.Rollback(ctx) //nolint:errcheck // read-only, the original error matters
		return nil, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to commit history transaction: %w", err)
	}

	return items, total, nil
}

func listPage(ctx context.Context, tx pgx.Tx, limit, offset int) ([]Generation, int, error) {
	var total int
	if err := tx.QueryRow(ctx, queryCount).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count generations: %w", err)
	}

	rows, err := tx.Query(ctx, queryListPage, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list generations: %w", err)
	}

	defer rows.Close()
	items := []Generation{}

	for rows.Next() {
		var g Generation
		var u users.User

		err := rows.Scan(
			&g.ID,
			&g.Prompt,
			&g.Language,
			&g.Code,
			&g.Timestamp,
			&g.UserID,
			&u.Username,
			&u.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan generation: %w", err)
		}

		u.ID = g.UserID
		g.User = &u
		items = append(items, g)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate generations: %w", err)
	}

	return items, total, nil
}
