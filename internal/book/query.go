package book

import "strings"

// Page size bounds for the catalog query. Out-of-range requests are
// clamped, never rejected.
const (
	DefaultPageSize = 5
	MaxPageSize     = 50
	DefaultSort     = "title"
)

// Params carries the raw list-query inputs as received from a client.
type Params struct {
	PageNumber int
	PageSize   int
	SortField  string
	SortOrder  string
	Category   string
}

// sortFields is the allow-list of sortable fields, keyed by lower-cased
// field name. Requests for anything else fall back to title.
var sortFields = map[string]struct{}{
	"title":          {},
	"author":         {},
	"publisher":      {},
	"isbn":           {},
	"classification": {},
	"category":       {},
	"pagecount":      {},
	"price":          {},
}

// NormalizeSortField lower-cases the requested field and maps unknown
// values to the default. The result is always an allow-list member.
func NormalizeSortField(field string) string {
	f := strings.ToLower(strings.TrimSpace(field))
	if _, ok := sortFields[f]; ok {
		return f
	}
	return DefaultSort
}

// normalize applies the clamping and defaulting rules:
// pageNumber >= 1, pageSize in [1,50] with out-of-range low values reset to
// the default, whitespace-only category treated as no filter.
func (p Params) normalize() Params {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	p.SortField = NormalizeSortField(p.SortField)
	if strings.EqualFold(strings.TrimSpace(p.SortOrder), "desc") {
		p.SortOrder = "desc"
	} else {
		p.SortOrder = "asc"
	}
	p.Category = strings.TrimSpace(p.Category)
	return p
}

// ListQuery is the normalized query handed to a repository.
type ListQuery struct {
	Category  string // exact match, case-insensitive; empty means no filter
	SortField string // canonical allow-list member
	Desc      bool
	Limit     int
	Offset    int
}
