package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bookstore/internal/book"
	"bookstore/internal/httpx"
)

// BookHandler serves the /api/Books surface. Success bodies are the bare
// wire types (PagedBookResult, Book); the envelope-free shape is a
// compatibility requirement for existing clients.
type BookHandler struct {
	service *book.Service
}

func NewBookHandler(service *book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// NewRouter registers the book routes on a fresh mux. Health and metrics
// endpoints are attached by the caller.
func NewRouter(h *BookHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/Books", h.List)
	mux.HandleFunc("GET /api/Books/{id}", h.Get)
	mux.HandleFunc("POST /api/Books", h.Create)
	mux.HandleFunc("PUT /api/Books/{id}", h.Update)
	mux.HandleFunc("DELETE /api/Books/{id}", h.Delete)
	return mux
}

// List handles GET /api/Books
// @Summary List books
// @Description Paginated, sortable, filterable book listing
// @Tags books
// @Produce json
// @Param pageNumber query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (1-50)" default(5)
// @Param sortField query string false "Sort field" default(title)
// @Param sortOrder query string false "asc or desc" default(asc)
// @Param category query string false "Exact category filter (case-insensitive)"
// @Success 200 {object} book.PagedResult
// @Router /api/Books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	pageNumber, _ := strconv.Atoi(query.Get("pageNumber"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	params := book.Params{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		SortField:  query.Get("sortField"),
		SortOrder:  query.Get("sortOrder"),
		Category:   query.Get("category"),
	}

	result, err := h.service.Query(r.Context(), params)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, result)
}

// Get handles GET /api/Books/{id}
// @Summary Get book by id
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} book.Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/Books/{id} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

// Create handles POST /api/Books
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param book body book.Book true "Book without id"
// @Success 201 {object} book.Book
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/Books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var b book.Book
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Malformed JSON body", nil)
		return
	}

	created, err := h.service.Create(r.Context(), b)
	if err != nil {
		writeBookError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/Books/%d", created.BookID))
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/Books/{id}
// @Summary Replace a book
// @Tags books
// @Accept json
// @Param id path int true "Book id"
// @Param book body book.Book true "Full book record; bookId must match the path"
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/Books/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	var b book.Book
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Malformed JSON body", nil)
		return
	}

	if err := h.service.Update(r.Context(), id, b); err != nil {
		writeBookError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/Books/{id}
// @Summary Delete a book
// @Tags books
// @Param id path int true "Book id"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/Books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeBookError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeBookError(w http.ResponseWriter, err error) {
	var verr *book.ValidationError
	switch {
	case errors.Is(err, book.ErrIDMismatch):
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Book id in body does not match the request path", nil)
	case errors.As(err, &verr):
		details := make([]httpx.ErrorDetail, 0, len(verr.Fields))
		for field, msg := range verr.Fields {
			details = append(details, httpx.ErrorDetail{Field: field, Message: msg})
		}
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Book failed validation", details)
	case errors.Is(err, book.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
