package services

import (
	"context"
	"fmt"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/ports"
)

var _ ports.CustomerService = (*CustomerService)(nil)

// CustomerService provides CRUD over customer accounts.
type CustomerService struct {
	customers ports.CustomerRepository
}

func NewCustomerService(customers ports.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.FindAll(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id int64) (domain.Customer, error) {
	customer, ok, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	if !ok {
		return domain.Customer{}, domain.NewNotFound(domain.KindCustomer, id)
	}
	return customer, nil
}

// Create validates and persists a new customer. Any caller-supplied id is
// discarded; the store generates one.
func (s *CustomerService) Create(ctx context.Context, candidate domain.Customer) (domain.Customer, error) {
	if err := candidate.Validate(); err != nil {
		return domain.Customer{}, err
	}
	candidate.ID = 0
	stored, err := s.customers.Save(ctx, candidate)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("save customer: %w", err)
	}
	return stored, nil
}

// Update replaces all four mutable fields of an existing customer.
func (s *CustomerService) Update(ctx context.Context, id int64, candidate domain.Customer) (domain.Customer, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return domain.Customer{}, err
	}

	existing.Name = candidate.Name
	existing.Address = candidate.Address
	existing.Email = candidate.Email
	existing.Password = candidate.Password

	if err := existing.Validate(); err != nil {
		return domain.Customer{}, err
	}

	stored, err := s.customers.Save(ctx, existing)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("save customer: %w", err)
	}
	return stored, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.customers.Delete(ctx, existing); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
