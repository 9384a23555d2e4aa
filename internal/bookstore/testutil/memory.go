// Package testutil provides in-memory implementations of the repository
// ports for tests and local development. They mimic the store contract:
// generated integer ids, overwrite-on-save, insertion-order FindAll.
package testutil

import (
	"context"
	"sync"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/ports"
)

var (
	_ ports.BookRepository     = (*MemBookRepository)(nil)
	_ ports.CustomerRepository = (*MemCustomerRepository)(nil)
	_ ports.OrderRepository    = (*MemOrderRepository)(nil)
)

// MemBookRepository is an in-memory ports.BookRepository.
type MemBookRepository struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	books  map[int64]domain.Book
}

func NewMemBookRepository() *MemBookRepository {
	return &MemBookRepository{books: make(map[int64]domain.Book)}
}

func (r *MemBookRepository) FindAll(_ context.Context) ([]domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Book, 0, len(r.order))
	for _, id := range r.order {
		if b, ok := r.books[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemBookRepository) FindByID(_ context.Context, id int64) (domain.Book, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.books[id]
	return b, ok, nil
}

func (r *MemBookRepository) Save(_ context.Context, book domain.Book) (domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if book.ID == 0 {
		r.nextID++
		book.ID = r.nextID
		r.order = append(r.order, book.ID)
	} else if _, exists := r.books[book.ID]; !exists {
		r.order = append(r.order, book.ID)
	}
	r.books[book.ID] = book
	return book, nil
}

func (r *MemBookRepository) Delete(_ context.Context, book domain.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.books, book.ID)
	return nil
}

// MemCustomerRepository is an in-memory ports.CustomerRepository.
type MemCustomerRepository struct {
	mu        sync.RWMutex
	nextID    int64
	order     []int64
	customers map[int64]domain.Customer
}

func NewMemCustomerRepository() *MemCustomerRepository {
	return &MemCustomerRepository{customers: make(map[int64]domain.Customer)}
}

func (r *MemCustomerRepository) FindAll(_ context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Customer, 0, len(r.order))
	for _, id := range r.order {
		if c, ok := r.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *MemCustomerRepository) FindByID(_ context.Context, id int64) (domain.Customer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	return c, ok, nil
}

func (r *MemCustomerRepository) Save(_ context.Context, customer domain.Customer) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if customer.ID == 0 {
		r.nextID++
		customer.ID = r.nextID
		r.order = append(r.order, customer.ID)
	} else if _, exists := r.customers[customer.ID]; !exists {
		r.order = append(r.order, customer.ID)
	}
	r.customers[customer.ID] = customer
	return customer, nil
}

func (r *MemCustomerRepository) Delete(_ context.Context, customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.customers, customer.ID)
	return nil
}

// MemOrderRepository is an in-memory ports.OrderRepository. Orders are
// stored as saved, embedded records included.
type MemOrderRepository struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	orders map[int64]domain.Order
}

func NewMemOrderRepository() *MemOrderRepository {
	return &MemOrderRepository{orders: make(map[int64]domain.Order)}
}

func (r *MemOrderRepository) FindAll(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, 0, len(r.order))
	for _, id := range r.order {
		if o, ok := r.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *MemOrderRepository) FindByID(_ context.Context, id int64) (domain.Order, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	return o, ok, nil
}

func (r *MemOrderRepository) Save(_ context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == 0 {
		r.nextID++
		order.ID = r.nextID
		r.order = append(r.order, order.ID)
	} else if _, exists := r.orders[order.ID]; !exists {
		r.order = append(r.order, order.ID)
	}
	r.orders[order.ID] = order
	return order, nil
}

func (r *MemOrderRepository) Delete(_ context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, order.ID)
	return nil
}

// Len reports the number of stored orders; handy for "store gained nothing"
// assertions.
func (r *MemOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
