package book

import "context"

// Repository is the storage contract for the catalog.
//
// List returns one page of books plus the total count matching the filter
// before pagination. Create assigns the identity on the passed record.
// Update and Delete report ErrNotFound for missing rows.
type Repository interface {
	List(ctx context.Context, q ListQuery) ([]Book, int, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	Create(ctx context.Context, b *Book) error
	Update(ctx context.Context, b Book) error
	Delete(ctx context.Context, id int64) error
}
