package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *http.ServeMux {
	repo := book.NewMemoryRepo(book.SampleBooks()...)
	return NewRouter(NewBookHandler(book.NewService(repo)))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestList_WireShape(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/Books?pageNumber=1&pageSize=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result book.PagedResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Books, 5)
	assert.Equal(t, 10, result.TotalCount)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, "title", result.SortField)
	assert.Equal(t, "asc", result.SortOrder)

	// camelCase field names are part of the public contract
	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, key := range []string{"books", "pageNumber", "pageSize", "totalCount", "totalPages", "sortField", "sortOrder", "category"} {
		assert.Contains(t, raw, key)
	}
	first := raw["books"].([]any)[0].(map[string]any)
	for _, key := range []string{"bookId", "title", "author", "publisher", "isbn", "classification", "category", "pageCount", "price"} {
		assert.Contains(t, first, key)
	}
}

func TestList_ClampsAndEmptyPage(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/Books?pageNumber=3&pageSize=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result book.PagedResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Empty(t, result.Books)
	assert.Equal(t, 10, result.TotalCount)
	assert.Equal(t, 2, result.TotalPages)

	// books must serialize as [] even when empty
	assert.Contains(t, w.Body.String(), `"books":[]`)

	w = doJSON(t, router, http.MethodGet, "/api/Books?pageSize=500", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 50, result.PageSize)
}

func TestGet(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"existing book", "/api/Books/1", http.StatusOK},
		{"missing book", "/api/Books/999", http.StatusNotFound},
		{"non-numeric id", "/api/Books/abc", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	w := doJSON(t, router, http.MethodGet, "/api/Books/1", nil)
	var b book.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, "Clean Code", b.Title)
}

func TestCreate(t *testing.T) {
	router := newTestRouter()

	newBook := book.Book{
		Title:          "Refactoring",
		Author:         "Martin Fowler",
		Publisher:      "Addison-Wesley",
		ISBN:           "978-0134757599",
		Classification: book.ClassNonFiction,
		Category:       "Software",
		PageCount:      448,
		Price:          47.99,
	}

	w := doJSON(t, router, http.MethodPost, "/api/Books", newBook)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/Books/11", w.Header().Get("Location"))

	var created book.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(11), created.BookID)

	w = doJSON(t, router, http.MethodGet, "/api/Books/11", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreate_Rejections(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/Books", book.Book{Title: "only a title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")

	req := httptest.NewRequest(http.MethodPost, "/api/Books", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdate(t *testing.T) {
	router := newTestRouter()

	valid := book.SampleBooks()[0]
	valid.Price = 44.99

	mismatched := valid
	mismatched.BookID = 2

	missing := valid
	missing.BookID = 999

	tests := []struct {
		name       string
		path       string
		body       book.Book
		wantStatus int
	}{
		{"full replace", "/api/Books/1", valid, http.StatusNoContent},
		{"id mismatch", "/api/Books/1", mismatched, http.StatusBadRequest},
		{"vanished row", "/api/Books/999", missing, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	w := doJSON(t, router, http.MethodGet, "/api/Books/1", nil)
	var b book.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, 44.99, b.Price)
}

func TestDelete(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodDelete, "/api/Books/10", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/Books/10", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/Books/10", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
