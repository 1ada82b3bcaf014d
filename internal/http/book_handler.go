package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/LongerDude/Library-Management-System/internal/entity"
	"github.com/LongerDude/Library-Management-System/internal/usecase"
)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

type createBookReq struct {
	Title  string `json:"title" validate:"required,max=500"`
	Author string `json:"author" validate:"required,max=500"`
	Amount int    `json:"amount" validate:"gte=0"`
}

type updateBookReq struct {
	Amount int `json:"amount" validate:"gte=0"`
}

// Create handles POST /api/books. On success it answers 201 with a Location
// header pointing at the new resource.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	book := &entity.Book{
		Title:  req.Title,
		Author: req.Author,
		Amount: req.Amount,
	}
	if err := h.repo.Create(r.Context(), book); err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/books/%d", book.ID))
	JSONSuccessCreated(w, book)
}

// List handles GET /api/books and returns every book in id order.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	JSONSuccess(w, books, map[string]any{"total": len(books)})
}

// GetByID handles GET /api/books/{id}.
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	book, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		default:
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	JSONSuccess(w, book, nil)
}

// UpdateAmount handles PUT /api/books/{id}. Only the copy count changes;
// title and author are kept as stored.
func (h *BookHandler) UpdateAmount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bookID(w, r)
	if !ok {
		return
	}

	var req updateBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	if err := h.repo.UpdateAmount(r.Context(), id, req.Amount); err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		default:
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	JSONSuccessNoContent(w)
}

// bookID extracts the numeric id from /api/books/{id} paths.
func (h *BookHandler) bookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	const prefix = "/api/books/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		http.NotFound(w, r)
		return 0, false
	}
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		http.NotFound(w, r)
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "INVALID_ID", "Book id must be numeric", nil)
		return 0, false
	}
	return id, true
}
