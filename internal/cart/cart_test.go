package cart

import (
	"os"
	"path/filepath"
	"testing"

	"bookstore/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBook(id int64) book.Book {
	for _, b := range book.SampleBooks() {
		if b.BookID == id {
			return b
		}
	}
	panic("no such sample book")
}

func TestAdd_SameBookTwiceIncrementsQuantity(t *testing.T) {
	c := New()
	b := sampleBook(1) // Clean Code, 39.99

	c.Add(b)
	c.Add(b)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.InDelta(t, 79.98, c.Items[0].Subtotal, 1e-9)
	assert.Equal(t, 2, c.ItemCount)
	assert.InDelta(t, 79.98, c.TotalPrice, 1e-9)
}

func TestAdd_DifferentBooksAppendInOrder(t *testing.T) {
	c := New()
	c.Add(sampleBook(2))
	c.Add(sampleBook(1))
	c.Add(sampleBook(2))

	require.Len(t, c.Items, 2)
	assert.Equal(t, int64(2), c.Items[0].Book.BookID)
	assert.Equal(t, int64(1), c.Items[1].Book.BookID)
	assert.Equal(t, 3, c.ItemCount)
}

func TestSetQuantity(t *testing.T) {
	c := New()
	c.Add(sampleBook(1))

	c.SetQuantity(1, 5)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, 5, c.ItemCount)

	// below-1 quantities are ignored, not treated as removal
	c.SetQuantity(1, 0)
	assert.Equal(t, 5, c.Items[0].Quantity)
	c.SetQuantity(1, -3)
	assert.Equal(t, 5, c.Items[0].Quantity)

	// absent id is a no-op
	c.SetQuantity(999, 2)
	assert.Len(t, c.Items, 1)
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(sampleBook(1))
	c.Add(sampleBook(2))

	c.Remove(1)
	require.Len(t, c.Items, 1)
	assert.Equal(t, int64(2), c.Items[0].Book.BookID)

	c.Remove(999) // absent
	assert.Len(t, c.Items, 1)
}

func TestTotals_AreAFoldOverItems(t *testing.T) {
	c := New()
	for _, id := range []int64{1, 2, 3, 1, 5} {
		c.Add(sampleBook(id))
	}
	c.SetQuantity(3, 4)

	wantTotal := 0.0
	wantCount := 0
	for _, it := range c.Items {
		wantTotal += roundCents(float64(it.Quantity) * it.Book.Price)
		wantCount += it.Quantity
	}
	assert.InDelta(t, roundCents(wantTotal), c.TotalPrice, 1e-9)
	assert.Equal(t, wantCount, c.ItemCount)
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(sampleBook(1))
	c.Clear()

	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalPrice)
	assert.Zero(t, c.ItemCount)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	c := New()
	c.Add(sampleBook(1))
	c.Add(sampleBook(8))
	c.SetQuantity(8, 3)
	require.NoError(t, store.Save(c))

	got := store.Load()
	require.Len(t, got.Items, 2)
	assert.Equal(t, c.TotalPrice, got.TotalPrice)
	assert.Equal(t, c.ItemCount, got.ItemCount)
	assert.Equal(t, 3, got.Items[1].Quantity)
}

func TestFileStore_MissingFileIsEmptyCart(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	c := store.Load()
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
}

func TestFileStore_CorruptFileIsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	c := store.Load()
	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalPrice)
}

func TestFileStore_StaleAggregatesAreRecomputedOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	raw := `{"items":[{"book":{"bookId":1,"title":"Clean Code","price":10.00},"quantity":2,"subtotal":1.23}],"totalPrice":999,"itemCount":42}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	c := store.Load()
	require.Len(t, c.Items, 1)
	assert.InDelta(t, 20.00, c.Items[0].Subtotal, 1e-9)
	assert.InDelta(t, 20.00, c.TotalPrice, 1e-9)
	assert.Equal(t, 2, c.ItemCount)
}
