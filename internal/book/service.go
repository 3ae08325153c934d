package book

import (
	"context"
)

// Service implements the catalog query and the admin CRUD operations on
// top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query returns one page of the catalog. Parameters are clamped and
// defaulted per the list-query contract; a page past the end of the data
// yields an empty books slice, not an error. Read-only.
func (s *Service) Query(ctx context.Context, p Params) (PagedResult, error) {
	p = p.normalize()

	q := ListQuery{
		Category:  p.Category,
		SortField: p.SortField,
		Desc:      p.SortOrder == "desc",
		Limit:     p.PageSize,
		Offset:    (p.PageNumber - 1) * p.PageSize,
	}

	books, total, err := s.repo.List(ctx, q)
	if err != nil {
		return PagedResult{}, err
	}
	if books == nil {
		books = []Book{}
	}

	return PagedResult{
		Books:      books,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		TotalCount: total,
		TotalPages: (total + p.PageSize - 1) / p.PageSize,
		SortField:  p.SortField,
		SortOrder:  p.SortOrder,
		Category:   p.Category,
	}, nil
}

// Get returns a single book or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the book and stores it. The repository assigns the
// identity; the returned record has it populated.
func (s *Service) Create(ctx context.Context, b Book) (Book, error) {
	if err := b.Validate(); err != nil {
		return Book{}, err
	}
	b.BookID = 0
	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Update replaces the full record. The body's id must equal the request id;
// a mismatch fails with ErrIDMismatch before storage is touched. A row that
// vanished between check and write surfaces as ErrNotFound.
func (s *Service) Update(ctx context.Context, id int64, b Book) error {
	if b.BookID != id {
		return ErrIDMismatch
	}
	if err := b.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, b)
}

// Delete removes a book, reporting ErrNotFound when it does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
