package history

import (
	"context"

	"codeberg.org/codecopilot/server/api/rest/pagination"
	"codeberg.org/codecopilot/server/copilot/generations"
	apierrors "codeberg.org/codecopilot/server/internal/errors"
	"codeberg.org/codecopilot/server/internal/metrics"
)

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// reads one page plus its total from a single snapshot
type Lister interface {
	ListPage(ctx context.Context, limit, offset int) ([]generations.Generation, int, error)
}

// serves paginated generation history, newest first
type Reader struct {
	store   Lister
	metrics *metrics.Metrics
}

type Page struct {
	Items      []generations.Generation
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

func NewReader(store Lister, m *metrics.Metrics) *Reader {
	return &Reader{store: store, metrics: m}
}

// non-positive page or pageSize fall back to defaults; pages past the end
// come back empty with accurate totals
func (r *Reader) List(ctx context.Context, page, pageSize int) (*Page, error) {
	params := pagination.DefaultParams(page, pageSize, DefaultPageSize, MaxPageSize)
	page, pageSize = params.Page, params.Limit

	// an offset too large for an int can only be past the end: read the total alone
	limit := pageSize
	offset, ok := params.Offset()
	if !ok {
		limit = 0
	}

	items, total, err := r.store.ListPage(ctx, limit, offset)
	if err != nil {
		r.metrics.RecordHistoryRead(string(apierrors.KindPersistence))
		return nil, apierrors.Wrap(apierrors.KindPersistence, "failed to fetch history", err)
	}

	r.metrics.RecordHistoryRead(metrics.OutcomeSuccess)

	if items == nil {
		items = []generations.Generation{}
	}

	return &Page{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(total, pageSize),
	}, nil
}

// ceil(total / pageSize)
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}

	return (total + pageSize - 1) / pageSize
}
