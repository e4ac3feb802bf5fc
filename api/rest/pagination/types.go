package pagination

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Params holds pagination parameters from request
type Params struct {
	Page  int
	Limit int
}

// Meta holds pagination metadata for response
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ParseParams reads ?page= and ?limit=. Missing or non-numeric values come
// back as zero so the reader applies its defaults.
func ParseParams(c *gin.Context) Params {
	return Params{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	}
}

// NewMeta creates pagination metadata for a served page
func NewMeta(total, page, limit, totalPages int) Meta {
	return Meta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// DefaultParams returns pagination params with defaults applied
// defaultLimit: default items per page, maxLimit: maximum allowed limit
func DefaultParams(page, limit, defaultLimit, maxLimit int) Params {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Params{
		Page:  page,
		Limit: limit,
	}
}

// Offset returns the row offset of the page. ok is false when the offset
// (plus one page) does not fit in an int; such a page lies past any table.
func (p Params) Offset() (offset int, ok bool) {
	if p.Limit <= 0 || p.Page <= 0 {
		return 0, true
	}
	if p.Page-1 > (math.MaxInt-p.Limit)/p.Limit {
		return 0, false
	}
	return (p.Page - 1) * p.Limit, true
}

func queryInt(c *gin.Context, key string) int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return value
}
