package httpx

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/ports"
	"github.com/mruizdev/bookstore-backoffice/internal/pkg/cache"
)

const cacheTTL = 5 * time.Minute

// BookHandler adapts the book service to HTTP. The cache is optional;
// nil disables it.
type BookHandler struct {
	books ports.BookService
	cache cache.Cache
}

func NewBookHandler(books ports.BookService, c cache.Cache) *BookHandler {
	return &BookHandler{books: books, cache: c}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapBooksToResponse(books))
}

func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	key := ""
	if h.cache != nil {
		key = h.cache.GenerateKey("book", strconv.FormatInt(id, 10))
		if cached, err := h.cache.Get(r.Context(), key); err == nil && cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(cached))
			return
		}
	}

	book, err := h.books.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := mapBookToResponse(book)
	if h.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := h.cache.Set(r.Context(), key, payload, cacheTTL); err != nil {
				slog.WarnContext(r.Context(), "book cache set failed", "id", id, "error", err)
			}
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	candidate, err := req.toDomain()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	book, err := h.books.Create(r.Context(), candidate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "book created", "id", book.ID)
	writeJSON(w, http.StatusCreated, mapBookToResponse(book))
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	candidate, err := req.toDomain()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	book, err := h.books.Update(r.Context(), id, candidate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.invalidate(r, id)
	writeJSON(w, http.StatusOK, mapBookToResponse(book))
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.books.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	h.invalidate(r, id)
	slog.InfoContext(r.Context(), "book deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *BookHandler) invalidate(r *http.Request, id int64) {
	if h.cache == nil {
		return
	}
	key := h.cache.GenerateKey("book", strconv.FormatInt(id, 10))
	if err := h.cache.Del(r.Context(), key); err != nil {
		slog.WarnContext(r.Context(), "book cache invalidation failed", "id", id, "error", err)
	}
}
