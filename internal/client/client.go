package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"bookstore/internal/book"
)

var (
	// ErrSampleMode is returned for writes while no backend is reachable.
	ErrSampleMode = errors.New("operation not available while using sample data")

	// ErrBadRequest means the server rejected the request body or id.
	ErrBadRequest = errors.New("request rejected by the server")
)

// requestTimeout is the transport-level budget for CRUD calls; probes have
// their own, shorter one.
const requestTimeout = 30 * time.Second

// Client is the typed API consumer. Reads fall back to the built-in sample
// catalog when no endpoint responds; once that happens the client stays in
// sample mode for its lifetime and UsingSampleData reports true so a UI
// can show a degraded-mode banner.
type Client struct {
	resolver *Resolver
	http     *http.Client

	mu       sync.Mutex
	sample   bool
	fallback *book.Service
}

func New(endpoints []string) *Client {
	return &Client{
		resolver: NewResolver(endpoints),
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// UsingSampleData reports whether reads are served from the frozen sample
// catalog instead of a live backend.
func (c *Client) UsingSampleData() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sample
}

// enterSampleMode switches reads to the built-in dataset. Idempotent.
func (c *Client) enterSampleMode() *book.Service {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fallback == nil {
		c.fallback = book.NewService(book.NewMemoryRepo(book.SampleBooks()...))
	}
	c.sample = true
	return c.fallback
}

func (c *Client) sampleService() (*book.Service, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fallback, c.sample
}

// GetBooks fetches one catalog page. Transport failures flip the client
// into sample mode and serve the page locally through the same query
// service the server uses.
func (c *Client) GetBooks(ctx context.Context, p book.Params) (book.PagedResult, error) {
	if svc, ok := c.sampleService(); ok {
		return svc.Query(ctx, p)
	}

	base, err := c.resolver.BaseURL(ctx)
	if err != nil {
		return c.enterSampleMode().Query(ctx, p)
	}

	q := url.Values{}
	q.Set("pageNumber", strconv.Itoa(p.PageNumber))
	q.Set("pageSize", strconv.Itoa(p.PageSize))
	q.Set("sortField", p.SortField)
	q.Set("sortOrder", p.SortOrder)
	q.Set("category", p.Category)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/Books?"+q.Encode(), nil)
	if err != nil {
		return book.PagedResult{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return c.enterSampleMode().Query(ctx, p)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return book.PagedResult{}, fmt.Errorf("list books: unexpected status %d", resp.StatusCode)
	}

	var result book.PagedResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return book.PagedResult{}, fmt.Errorf("decode book page: %w", err)
	}
	return result, nil
}

// GetBook fetches a single book by id, falling back to the sample catalog
// on transport failure.
func (c *Client) GetBook(ctx context.Context, id int64) (book.Book, error) {
	if svc, ok := c.sampleService(); ok {
		return svc.Get(ctx, id)
	}

	base, err := c.resolver.BaseURL(ctx)
	if err != nil {
		return c.enterSampleMode().Get(ctx, id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/Books/%d", base, id), nil)
	if err != nil {
		return book.Book{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return c.enterSampleMode().Get(ctx, id)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var b book.Book
		if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
			return book.Book{}, fmt.Errorf("decode book: %w", err)
		}
		return b, nil
	case http.StatusNotFound:
		return book.Book{}, book.ErrNotFound
	default:
		return book.Book{}, fmt.Errorf("get book: unexpected status %d", resp.StatusCode)
	}
}

// CreateBook posts a new book and returns it with the server-assigned id.
// Writes never fall back: in sample mode they fail with ErrSampleMode.
func (c *Client) CreateBook(ctx context.Context, b book.Book) (book.Book, error) {
	resp, err := c.doWrite(ctx, http.MethodPost, "/Books", b)
	if err != nil {
		return book.Book{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var created book.Book
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			return book.Book{}, fmt.Errorf("decode created book: %w", err)
		}
		return created, nil
	case http.StatusBadRequest:
		return book.Book{}, ErrBadRequest
	default:
		return book.Book{}, fmt.Errorf("create book: unexpected status %d", resp.StatusCode)
	}
}

// UpdateBook replaces the full record behind id.
func (c *Client) UpdateBook(ctx context.Context, id int64, b book.Book) error {
	resp, err := c.doWrite(ctx, http.MethodPut, fmt.Sprintf("/Books/%d", id), b)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusNotFound:
		return book.ErrNotFound
	default:
		return fmt.Errorf("update book: unexpected status %d", resp.StatusCode)
	}
}

// DeleteBook removes a book.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	resp, err := c.doWrite(ctx, http.MethodDelete, fmt.Sprintf("/Books/%d", id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return book.ErrNotFound
	default:
		return fmt.Errorf("delete book: unexpected status %d", resp.StatusCode)
	}
}

func (c *Client) doWrite(ctx context.Context, method, path string, body any) (*http.Response, error) {
	if _, sample := c.sampleService(); sample {
		return nil, ErrSampleMode
	}
	base, err := c.resolver.BaseURL(ctx)
	if err != nil {
		c.enterSampleMode()
		return nil, ErrSampleMode
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, base+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}
