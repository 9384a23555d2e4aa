package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/infra/httpx/middlewares"
)

// NewRouter wires the CRUD endpoints for books, customers, and orders.
func NewRouter(books *BookHandler, customers *CustomerHandler, orders *OrderHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachRequestMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/books", func(r chi.Router) {
		r.Get("/", books.List)
		r.Post("/", books.Create)
		r.Get("/{id}", books.GetByID)
		r.Put("/{id}", books.Update)
		r.Delete("/{id}", books.Delete)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", customers.List)
		r.Post("/", customers.Create)
		r.Get("/{id}", customers.GetByID)
		r.Put("/{id}", customers.Update)
		r.Delete("/{id}", customers.Delete)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orders.List)
		r.Post("/", orders.Create)
		r.Get("/{id}", orders.GetByID)
		r.Put("/{id}", orders.Update)
		r.Delete("/{id}", orders.Delete)
	})

	return r
}
