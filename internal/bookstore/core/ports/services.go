package ports

import (
	"context"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
)

// BookService exposes book CRUD to the transport layer.
type BookService interface {
	List(ctx context.Context) ([]domain.Book, error)
	Get(ctx context.Context, id int64) (domain.Book, error)
	Create(ctx context.Context, candidate domain.Book) (domain.Book, error)
	Update(ctx context.Context, id int64, candidate domain.Book) (domain.Book, error)
	Delete(ctx context.Context, id int64) error
}

// CustomerService exposes customer CRUD to the transport layer.
type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (domain.Customer, error)
	Create(ctx context.Context, candidate domain.Customer) (domain.Customer, error)
	Update(ctx context.Context, id int64, candidate domain.Customer) (domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// OrderService exposes order CRUD to the transport layer. Create resolves
// and validates the order's book and customer references; Update does not
// (see the service implementation for the rationale).
type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id int64) (domain.Order, error)
	Create(ctx context.Context, candidate domain.Order) (domain.Order, error)
	Update(ctx context.Context, id int64, candidate domain.Order) (domain.Order, error)
	Delete(ctx context.Context, id int64) error
}
