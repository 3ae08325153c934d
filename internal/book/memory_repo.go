package book

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-process Repository. It backs the unit tests and the
// client's sample-data fallback, so its filter/sort/paginate behavior must
// match the SQL implementation exactly.
type MemoryRepo struct {
	mu     sync.RWMutex
	books  []Book
	nextID int64
}

// NewMemoryRepo creates a repository pre-loaded with the given books.
// Seed records keep their ids; the next assigned id continues past the
// highest seen.
func NewMemoryRepo(seed ...Book) *MemoryRepo {
	r := &MemoryRepo{nextID: 1}
	for _, b := range seed {
		if b.BookID >= r.nextID {
			r.nextID = b.BookID + 1
		}
		r.books = append(r.books, b)
	}
	return r
}

func compareBooks(field string, a, b Book) int {
	switch field {
	case "author":
		return strings.Compare(a.Author, b.Author)
	case "publisher":
		return strings.Compare(a.Publisher, b.Publisher)
	case "isbn":
		return strings.Compare(a.ISBN, b.ISBN)
	case "classification":
		return strings.Compare(a.Classification, b.Classification)
	case "category":
		return strings.Compare(a.Category, b.Category)
	case "pagecount":
		switch {
		case a.PageCount < b.PageCount:
			return -1
		case a.PageCount > b.PageCount:
			return 1
		}
		return 0
	case "price":
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		}
		return 0
	default:
		return strings.Compare(a.Title, b.Title)
	}
}

func (r *MemoryRepo) List(_ context.Context, q ListQuery) ([]Book, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		if q.Category != "" && !strings.EqualFold(b.Category, q.Category) {
			continue
		}
		filtered = append(filtered, b)
	}
	total := len(filtered)

	sort.SliceStable(filtered, func(i, j int) bool {
		c := compareBooks(q.SortField, filtered[i], filtered[j])
		if q.Desc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		// bookId tie-break keeps equal keys in a deterministic order
		return filtered[i].BookID < filtered[j].BookID
	})

	if q.Offset >= total {
		return []Book{}, total, nil
	}
	end := q.Offset + q.Limit
	if end > total {
		end = total
	}
	page := make([]Book, end-q.Offset)
	copy(page, filtered[q.Offset:end])
	return page, total, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id int64) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.books {
		if b.BookID == id {
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}

func (r *MemoryRepo) Create(_ context.Context, b *Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.BookID = r.nextID
	r.nextID++
	r.books = append(r.books, *b)
	return nil
}

func (r *MemoryRepo) Update(_ context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.books {
		if r.books[i].BookID == b.BookID {
			r.books[i] = b
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.books {
		if r.books[i].BookID == id {
			r.books = append(r.books[:i], r.books[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
