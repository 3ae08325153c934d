package client

import (
	"context"
	"sync"

	"bookstore/internal/book"
)

// Lister is the slice of Client the catalog view needs.
type Lister interface {
	GetBooks(ctx context.Context, p book.Params) (book.PagedResult, error)
	UsingSampleData() bool
}

// AllCategories is the sentinel option meaning "no category filter".
const AllCategories = "All"

// Snapshot is a render-ready copy of the view state.
type Snapshot struct {
	Page       book.PagedResult
	Categories []string
	Loading    bool
	SampleData bool
	Err        error
}

// CatalogView tracks the browse state (filter, sort, pagination) and keeps
// the current page in sync with it.
//
// Every state change re-issues the query. Changing the category, sort, or
// page size resets the page number to 1; plain navigation does not. Each
// request carries a generation number; a response is applied only while
// its generation is still current, so a slow stale response can never
// overwrite a newer page (last started wins).
type CatalogView struct {
	api Lister

	mu         sync.Mutex
	params     book.Params
	gen        uint64
	loading    bool
	page       book.PagedResult
	categories []string
	lastErr    error
}

func NewCatalogView(api Lister) *CatalogView {
	return &CatalogView{
		api: api,
		params: book.Params{
			PageNumber: 1,
			PageSize:   book.DefaultPageSize,
			SortField:  book.DefaultSort,
			SortOrder:  "asc",
		},
		categories: []string{AllCategories},
	}
}

// SetCategory applies a category filter (AllCategories or "" clears it)
// and jumps back to the first page.
func (v *CatalogView) SetCategory(ctx context.Context, category string) error {
	v.mu.Lock()
	if category == AllCategories {
		category = ""
	}
	v.params.Category = category
	v.params.PageNumber = 1
	v.mu.Unlock()
	return v.Refresh(ctx)
}

// SetSort changes the sort field and order and jumps back to the first page.
func (v *CatalogView) SetSort(ctx context.Context, field, order string) error {
	v.mu.Lock()
	v.params.SortField = field
	v.params.SortOrder = order
	v.params.PageNumber = 1
	v.mu.Unlock()
	return v.Refresh(ctx)
}

// SetPageSize changes the page size and jumps back to the first page.
func (v *CatalogView) SetPageSize(ctx context.Context, size int) error {
	v.mu.Lock()
	v.params.PageSize = size
	v.params.PageNumber = 1
	v.mu.Unlock()
	return v.Refresh(ctx)
}

// GoToPage navigates without resetting any other state.
func (v *CatalogView) GoToPage(ctx context.Context, page int) error {
	v.mu.Lock()
	if page < 1 {
		page = 1
	}
	v.params.PageNumber = page
	v.mu.Unlock()
	return v.Refresh(ctx)
}

// NextPage advances one page, stopping at the last known page.
func (v *CatalogView) NextPage(ctx context.Context) error {
	v.mu.Lock()
	if v.page.TotalPages > 0 && v.params.PageNumber >= v.page.TotalPages {
		v.mu.Unlock()
		return nil
	}
	v.params.PageNumber++
	v.mu.Unlock()
	return v.Refresh(ctx)
}

// PrevPage steps one page back, stopping at the first.
func (v *CatalogView) PrevPage(ctx context.Context) error {
	v.mu.Lock()
	if v.params.PageNumber <= 1 {
		v.mu.Unlock()
		return nil
	}
	v.params.PageNumber--
	v.mu.Unlock()
	return v.Refresh(ctx)
}

// Refresh re-issues the catalog query for the current state. Safe to call
// concurrently; a stale response is discarded instead of rendered.
func (v *CatalogView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.loading = true
	params := v.params
	v.mu.Unlock()

	result, err := v.api.GetBooks(ctx, params)

	// The category option list is derived from the full unfiltered set.
	// Only recomputed on unfiltered loads; known O(n) cost, acceptable at
	// catalog scale.
	var categories []string
	if err == nil && params.Category == "" && result.TotalCount > 0 {
		categories = v.fetchCategories(ctx, params, result.TotalCount)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		// superseded by a newer request; drop this response
		return nil
	}
	v.loading = false
	if err != nil {
		v.lastErr = err
		return err
	}
	v.page = result
	v.lastErr = nil
	if categories != nil {
		v.categories = categories
	}
	return nil
}

// fetchCategories walks the full unfiltered catalog and collects distinct
// categories in order of first appearance. The server clamps page size, so
// large catalogs take several requests.
func (v *CatalogView) fetchCategories(ctx context.Context, params book.Params, totalCount int) []string {
	categories := []string{AllCategories}
	seen := map[string]bool{}

	pageNumber := 1
	for {
		page, err := v.api.GetBooks(ctx, book.Params{
			PageNumber: pageNumber,
			PageSize:   totalCount,
			SortField:  params.SortField,
			SortOrder:  params.SortOrder,
		})
		if err != nil || len(page.Books) == 0 {
			return categories
		}
		for _, b := range page.Books {
			if !seen[b.Category] {
				seen[b.Category] = true
				categories = append(categories, b.Category)
			}
		}
		if page.PageNumber >= page.TotalPages {
			return categories
		}
		pageNumber++
	}
}

// Snapshot returns a copy of the current view state for rendering.
func (v *CatalogView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	categories := make([]string, len(v.categories))
	copy(categories, v.categories)
	return Snapshot{
		Page:       v.page,
		Categories: categories,
		Loading:    v.loading,
		SampleData: v.api.UsingSampleData(),
		Err:        v.lastErr,
	}
}

// Params returns the current query state.
func (v *CatalogView) Params() book.Params {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.params
}
