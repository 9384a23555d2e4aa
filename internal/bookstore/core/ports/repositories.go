// Package ports declares the interfaces between the bookstore core and its
// adapters. Services depend on these abstractions, not on SQLite directly,
// so the storage engine can be swapped for in-memory fakes in tests.
package ports

import (
	"context"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
)

// BookRepository is the storage capability the core needs for books.
//
// FindByID distinguishes "found" from "absent" with the bool; an absent id
// is not an error at this level, the caller decides what it means.
// Save assigns a fresh store-generated id when the record's ID is zero and
// overwrites the existing row otherwise.
type BookRepository interface {
	FindAll(ctx context.Context) ([]domain.Book, error)
	FindByID(ctx context.Context, id int64) (domain.Book, bool, error)
	Save(ctx context.Context, book domain.Book) (domain.Book, error)
	Delete(ctx context.Context, book domain.Book) error
}

// CustomerRepository is the storage capability the core needs for customers.
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id int64) (domain.Customer, bool, error)
	Save(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Delete(ctx context.Context, customer domain.Customer) error
}

// OrderRepository is the storage capability the core needs for orders.
// Loaded orders carry their referenced book and customer records embedded.
type OrderRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, bool, error)
	Save(ctx context.Context, order domain.Order) (domain.Order, error)
	Delete(ctx context.Context, order domain.Order) error
}
