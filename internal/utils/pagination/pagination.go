// Package pagination provides page based pagination helpers shared by
// repositories and handlers.
package pagination

const (
	// DefaultPageSize is used when the client does not specify a page size.
	DefaultPageSize = 20
	// MaxPageSize caps the number of rows a single page may return.
	MaxPageSize = 100
)

// Params holds normalized pagination parameters.
type Params struct {
	Page     int
	PageSize int
}

// NewParams normalizes raw page and pageSize values. Pages start at 1;
// non positive values fall back to the defaults and pageSize is capped
// at MaxPageSize.
func NewParams(page, pageSize int) Params {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the row limit for the current page.
func (p Params) Limit() int {
	return p.PageSize
}

// TotalPages computes the number of pages needed to hold total rows.
func (p Params) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	pages := total / int64(p.PageSize)
	if total%int64(p.PageSize) != 0 {
		pages++
	}
	return int(pages)
}
