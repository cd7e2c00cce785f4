package pagination

import "gorm.io/gorm"

const defaultTake = 10

// Params is an optional page/limit pair. A nil field means the caller did
// not supply that query parameter; when both are nil the listing is
// unpaginated and no Meta is produced.
type Params struct {
	Page  *int
	Limit *int
}

// Meta is the pagination envelope returned alongside paginated listings.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func (p Params) Enabled() bool {
	return p.Page != nil || p.Limit != nil
}

// Take is the row count fetched when pagination is requested; defaults to 10
// when only page was supplied.
func (p Params) Take() int {
	if p.Limit != nil {
		return *p.Limit
	}
	return defaultTake
}

// Skip is the row offset. It applies only when both page and limit were
// supplied.
func (p Params) Skip() (int, bool) {
	if p.Page == nil || p.Limit == nil {
		return 0, false
	}
	return (*p.Page - 1) * *p.Limit, true
}

// Apply adds OFFSET/LIMIT clauses when pagination is requested.
func (p Params) Apply(stmt *gorm.DB) *gorm.DB {
	if !p.Enabled() {
		return stmt
	}
	if skip, ok := p.Skip(); ok {
		stmt = stmt.Offset(skip)
	}
	return stmt.Limit(p.Take())
}

// BuildMeta computes the response meta for a paginated listing, or nil when
// pagination was not requested.
func (p Params) BuildMeta(total int64) *Meta {
	if !p.Enabled() {
		return nil
	}
	page := 1
	if p.Page != nil {
		page = *p.Page
	}
	take := p.Take()
	totalPages := 0
	if take > 0 {
		totalPages = int((total + int64(take) - 1) / int64(take))
	}
	return &Meta{
		Page:       page,
		Limit:      take,
		Total:      total,
		TotalPages: totalPages,
	}
}
