package book

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by the service and its repositories.
var (
	ErrNotFound   = errors.New("book not found")
	ErrIDMismatch = errors.New("book id does not match request id")
)

// Classification values accepted on create and update.
const (
	ClassFiction    = "Fiction"
	ClassNonFiction = "Non-Fiction"
)

// Book represents a single catalog entry. Field names follow the public
// wire shape (camelCase), which must stay stable for existing clients.
type Book struct {
	BookID         int64   `json:"bookId"`
	Title          string  `json:"title"`
	Author         string  `json:"author"`
	Publisher      string  `json:"publisher"`
	ISBN           string  `json:"isbn"`
	Classification string  `json:"classification"`
	Category       string  `json:"category"`
	PageCount      int     `json:"pageCount"`
	Price          float64 `json:"price"`
}

// ValidationError carries per-field messages for a rejected book.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	return fmt.Sprintf("invalid book: %s", strings.Join(keys, ", "))
}

// Validate checks the create/update shape: every string field non-empty,
// classification one of the two known values, pageCount positive, price
// non-negative. Identity rules belong to the service operations, not here.
func (b Book) Validate() error {
	fields := map[string]string{}
	requireString := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			fields[name] = "must not be empty"
		}
	}
	requireString("title", b.Title)
	requireString("author", b.Author)
	requireString("publisher", b.Publisher)
	requireString("isbn", b.ISBN)
	requireString("category", b.Category)

	if b.Classification != ClassFiction && b.Classification != ClassNonFiction {
		fields["classification"] = fmt.Sprintf("must be %q or %q", ClassFiction, ClassNonFiction)
	}
	if b.PageCount <= 0 {
		fields["pageCount"] = "must be a positive integer"
	}
	if b.Price < 0 {
		fields["price"] = "must not be negative"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// PagedResult is the page envelope returned by the catalog query. It is
// serialized as-is on GET /api/Books.
type PagedResult struct {
	Books      []Book `json:"books"`
	PageNumber int    `json:"pageNumber"`
	PageSize   int    `json:"pageSize"`
	TotalCount int    `json:"totalCount"`
	TotalPages int    `json:"totalPages"`
	SortField  string `json:"sortField"`
	SortOrder  string `json:"sortOrder"`
	Category   string `json:"category"`
}
