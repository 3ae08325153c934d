package client

import (
	"context"
	"sync"
	"testing"

	"bookstore/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serviceLister serves the view straight from an in-process query service.
type serviceLister struct {
	svc    *book.Service
	sample bool
}

func (l *serviceLister) GetBooks(ctx context.Context, p book.Params) (book.PagedResult, error) {
	return l.svc.Query(ctx, p)
}

func (l *serviceLister) UsingSampleData() bool { return l.sample }

func newSampleView() *CatalogView {
	return NewCatalogView(&serviceLister{
		svc: book.NewService(book.NewMemoryRepo(book.SampleBooks()...)),
	})
}

func TestView_InitialRefresh(t *testing.T) {
	v := newSampleView()
	require.NoError(t, v.Refresh(context.Background()))

	snap := v.Snapshot()
	assert.Len(t, snap.Page.Books, 5)
	assert.Equal(t, 10, snap.Page.TotalCount)
	assert.False(t, snap.Loading)
	assert.Equal(t, AllCategories, snap.Categories[0])
	assert.ElementsMatch(t, []string{"All", "Software", "Biography", "Self-Help", "Classic"}, snap.Categories)
}

func TestView_FilterAndSortResetPageNumber(t *testing.T) {
	v := newSampleView()
	ctx := context.Background()
	require.NoError(t, v.Refresh(ctx))

	require.NoError(t, v.GoToPage(ctx, 2))
	assert.Equal(t, 2, v.Params().PageNumber)

	require.NoError(t, v.SetCategory(ctx, "Classic"))
	assert.Equal(t, 1, v.Params().PageNumber)
	assert.Equal(t, 3, v.Snapshot().Page.TotalCount)

	require.NoError(t, v.SetCategory(ctx, AllCategories))
	require.NoError(t, v.GoToPage(ctx, 2))
	require.NoError(t, v.SetSort(ctx, "price", "desc"))
	assert.Equal(t, 1, v.Params().PageNumber)

	require.NoError(t, v.GoToPage(ctx, 2))
	require.NoError(t, v.SetPageSize(ctx, 10))
	assert.Equal(t, 1, v.Params().PageNumber)
}

func TestView_NavigationKeepsFilter(t *testing.T) {
	v := newSampleView()
	ctx := context.Background()

	require.NoError(t, v.SetCategory(ctx, "Software"))
	require.NoError(t, v.SetPageSize(ctx, 2))
	require.NoError(t, v.NextPage(ctx))

	params := v.Params()
	assert.Equal(t, "Software", params.Category)
	assert.Equal(t, 2, params.PageNumber)

	// bounded navigation: already on the last page of 3 software books
	require.NoError(t, v.NextPage(ctx))
	assert.Equal(t, 2, v.Params().PageNumber)

	require.NoError(t, v.PrevPage(ctx))
	require.NoError(t, v.PrevPage(ctx))
	assert.Equal(t, 1, v.Params().PageNumber)
}

func TestView_CategoriesNotRecomputedWhileFiltered(t *testing.T) {
	v := newSampleView()
	ctx := context.Background()
	require.NoError(t, v.Refresh(ctx))
	before := v.Snapshot().Categories

	require.NoError(t, v.SetCategory(ctx, "Classic"))
	assert.Equal(t, before, v.Snapshot().Categories)
}

// gateLister blocks selected requests so tests can interleave responses.
type gateLister struct {
	mu      sync.Mutex
	started chan int
	gates   map[int]chan struct{}
}

func (l *gateLister) GetBooks(_ context.Context, p book.Params) (book.PagedResult, error) {
	l.mu.Lock()
	gate := l.gates[p.PageNumber]
	l.mu.Unlock()
	if l.started != nil {
		l.started <- p.PageNumber
	}
	if gate != nil {
		<-gate
	}
	return book.PagedResult{
		Books:      []book.Book{{BookID: int64(p.PageNumber)}},
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		TotalCount: 100,
		TotalPages: 20,
		Category:   p.Category,
	}, nil
}

func (l *gateLister) UsingSampleData() bool { return false }

func TestView_StaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan int, 10)
	lister := &gateLister{
		started: started,
		gates:   map[int]chan struct{}{2: release},
	}
	v := NewCatalogView(lister)
	ctx := context.Background()

	// filter active so refreshes skip the category sweep
	require.NoError(t, v.SetCategory(ctx, "Classic"))
	<-started

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = v.GoToPage(ctx, 2) // will block inside the lister
	}()
	require.Equal(t, 2, <-started)
	assert.True(t, v.Snapshot().Loading)

	// a newer request completes while the old one is still in flight
	require.NoError(t, v.GoToPage(ctx, 3))
	<-started
	assert.Equal(t, 3, v.Snapshot().Page.PageNumber)

	close(release)
	wg.Wait()

	// the stale page-2 response must not have overwritten page 3
	snap := v.Snapshot()
	assert.Equal(t, 3, snap.Page.PageNumber)
	assert.False(t, snap.Loading)
}
