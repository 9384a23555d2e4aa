package services

import (
	"context"
	"fmt"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/ports"
)

// Resolver turns a candidate order's embedded book and customer references
// into validated, current records. A candidate usually arrives carrying bare
// references (only the id set, possibly with stale or forged field values);
// resolving replaces them with the authoritative rows from the store.
type Resolver struct {
	books     ports.BookRepository
	customers ports.CustomerRepository
}

// NewResolver builds a resolver over the given repositories.
func NewResolver(books ports.BookRepository, customers ports.CustomerRepository) *Resolver {
	return &Resolver{books: books, customers: customers}
}

// Resolve looks up the candidate's book and customer by id and returns the
// candidate with both references replaced by the freshly loaded records.
// A reference that does not resolve fails with a NotFoundError for that
// entity kind. Resolve performs the two lookups and nothing else.
func (r *Resolver) Resolve(ctx context.Context, candidate domain.Order) (domain.Order, error) {
	book, ok, err := r.books.FindByID(ctx, candidate.Book.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("resolve book reference: %w", err)
	}
	if !ok {
		return domain.Order{}, domain.NewNotFound(domain.KindBook, candidate.Book.ID)
	}

	customer, ok, err := r.customers.FindByID(ctx, candidate.Customer.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("resolve customer reference: %w", err)
	}
	if !ok {
		return domain.Order{}, domain.NewNotFound(domain.KindCustomer, candidate.Customer.ID)
	}

	candidate.Book = book
	candidate.Customer = customer
	return candidate, nil
}
