package services

import (
	"context"
	"fmt"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/ports"
)

var _ ports.OrderService = (*OrderService)(nil)

// OrderService orchestrates the order lifecycle. Creation enforces
// referential integrity through the resolver; update deliberately does not.
type OrderService struct {
	orders   ports.OrderRepository
	resolver *Resolver
}

// NewOrderService builds the order lifecycle manager.
func NewOrderService(orders ports.OrderRepository, resolver *Resolver) *OrderService {
	return &OrderService{orders: orders, resolver: resolver}
}

// List returns all orders.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.FindAll(ctx)
}

// Get returns the order with the given id.
func (s *OrderService) Get(ctx context.Context, id int64) (domain.Order, error) {
	order, ok, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	if !ok {
		return domain.Order{}, domain.NewNotFound(domain.KindOrder, id)
	}
	return order, nil
}

// Create validates the candidate, resolves its book and customer references
// against the store, and persists the resolved order. A reference that does
// not resolve aborts the create with the resolver's NotFoundError; nothing
// is written in that case and the failure is not retried.
func (s *OrderService) Create(ctx context.Context, candidate domain.Order) (domain.Order, error) {
	if err := candidate.Validate(); err != nil {
		return domain.Order{}, err
	}

	resolved, err := s.resolver.Resolve(ctx, candidate)
	if err != nil {
		return domain.Order{}, err
	}

	resolved.ID = 0 // the store assigns identifiers
	stored, err := s.orders.Save(ctx, resolved)
	if err != nil {
		return domain.Order{}, fmt.Errorf("save order: %w", err)
	}
	return stored, nil
}

// Update overwrites the book, customer, status, and order-time fields of an
// existing order with those from the candidate and persists the result.
//
// The new book and customer references are NOT re-validated against the
// store. The upstream system applies the raw references on update, and this
// port preserves that asymmetry with create for behavioral fidelity.
func (s *OrderService) Update(ctx context.Context, id int64, candidate domain.Order) (domain.Order, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}

	existing.Book = candidate.Book
	existing.Customer = candidate.Customer
	existing.Status = candidate.Status
	existing.OrderTime = candidate.OrderTime

	stored, err := s.orders.Save(ctx, existing)
	if err != nil {
		return domain.Order{}, fmt.Errorf("save order: %w", err)
	}
	return stored, nil
}

// Delete removes the order with the given id.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, existing); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
