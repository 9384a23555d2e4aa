package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/services"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/testutil"
)

type fixture struct {
	books     *testutil.MemBookRepository
	customers *testutil.MemCustomerRepository
	orders    *testutil.MemOrderRepository
	service   *services.OrderService
}

func newFixture() *fixture {
	books := testutil.NewMemBookRepository()
	customers := testutil.NewMemCustomerRepository()
	orders := testutil.NewMemOrderRepository()
	return &fixture{
		books:     books,
		customers: customers,
		orders:    orders,
		service:   services.NewOrderService(orders, services.NewResolver(books, customers)),
	}
}

func (f *fixture) seedBook(t *testing.T) domain.Book {
	t.Helper()
	book, err := f.books.Save(context.Background(), domain.Book{
		Title:          "T",
		Author:         "A",
		EAN:            "E1",
		Price:          10.0,
		PublishingDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return book
}

func (f *fixture) seedCustomer(t *testing.T) domain.Customer {
	t.Helper()
	customer, err := f.customers.Save(context.Background(), domain.Customer{
		Name:     "N",
		Address:  "Addr",
		Email:    "e@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	return customer
}

func Test_OrderService_Create_HydratesReferences(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	book := f.seedBook(t)
	customer := f.seedCustomer(t)

	orderTime := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	// The candidate carries bare references with forged field values; the
	// stored order must embed the authoritative records instead.
	created, err := f.service.Create(ctx, domain.Order{
		Book:      domain.Book{ID: book.ID, Title: "forged title"},
		Customer:  domain.Customer{ID: customer.ID, Name: "forged name"},
		Status:    "Processing",
		OrderTime: orderTime,
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, book, created.Book)
	assert.Equal(t, customer, created.Customer)
	assert.Equal(t, "T", created.Book.Title)
	assert.Equal(t, "Processing", created.Status)
	assert.Equal(t, orderTime, created.OrderTime)

	got, err := f.service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func Test_OrderService_Create_UnknownBook(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customer := f.seedCustomer(t)

	_, err := f.service.Create(ctx, domain.Order{
		Book:      domain.Book{ID: 999},
		Customer:  domain.Customer{ID: customer.ID},
		Status:    "Processing",
		OrderTime: time.Now(),
	})

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, domain.KindBook, nf.Kind)
	assert.Equal(t, int64(999), nf.ID)

	// A failed create leaves the store unchanged.
	assert.Zero(t, f.orders.Len())
}

func Test_OrderService_Create_UnknownCustomer(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	book := f.seedBook(t)

	_, err := f.service.Create(ctx, domain.Order{
		Book:      domain.Book{ID: book.ID},
		Customer:  domain.Customer{ID: 12345},
		Status:    "Processing",
		OrderTime: time.Now(),
	})

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, domain.KindCustomer, nf.Kind)
	assert.Zero(t, f.orders.Len())
}

func Test_OrderService_Create_InvalidCandidate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	book := f.seedBook(t)
	customer := f.seedCustomer(t)

	tests := []struct {
		name      string
		candidate domain.Order
		wantField string
	}{
		{
			name: "blank_status",
			candidate: domain.Order{
				Book:      domain.Book{ID: book.ID},
				Customer:  domain.Customer{ID: customer.ID},
				Status:    "  ",
				OrderTime: time.Now(),
			},
			wantField: "status",
		},
		{
			name: "missing_order_time",
			candidate: domain.Order{
				Book:     domain.Book{ID: book.ID},
				Customer: domain.Customer{ID: customer.ID},
				Status:   "Processing",
			},
			wantField: "order_time",
		},
		{
			name: "missing_book_reference",
			candidate: domain.Order{
				Customer:  domain.Customer{ID: customer.ID},
				Status:    "Processing",
				OrderTime: time.Now(),
			},
			wantField: "book",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.Create(ctx, tc.candidate)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantField, ve.Field)
			assert.Zero(t, f.orders.Len())
		})
	}
}

func Test_OrderService_Create_IgnoresCallerID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	book := f.seedBook(t)
	customer := f.seedCustomer(t)

	created, err := f.service.Create(ctx, domain.Order{
		ID:        777,
		Book:      domain.Book{ID: book.ID},
		Customer:  domain.Customer{ID: customer.ID},
		Status:    "Processing",
		OrderTime: time.Now(),
	})
	require.NoError(t, err)
	assert.NotEqual(t, int64(777), created.ID)
}

func Test_OrderService_Update_DoesNotRevalidateReferences(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	book := f.seedBook(t)
	customer := f.seedCustomer(t)

	created, err := f.service.Create(ctx, domain.Order{
		Book:      domain.Book{ID: book.ID},
		Customer:  domain.Customer{ID: customer.ID},
		Status:    "Processing",
		OrderTime: time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Dangling references: neither id exists. The update must still apply
	// status and order time as given.
	newTime := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	updated, err := f.service.Update(ctx, created.ID, domain.Order{
		Book:      domain.Book{ID: 999},
		Customer:  domain.Customer{ID: 888},
		Status:    "Shipped",
		OrderTime: newTime,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Shipped", updated.Status)
	assert.Equal(t, newTime, updated.OrderTime)
	assert.Equal(t, int64(999), updated.Book.ID)
	assert.Equal(t, int64(888), updated.Customer.ID)
}

func Test_OrderService_Update_NoStatusStateMachine(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	book := f.seedBook(t)
	customer := f.seedCustomer(t)

	created, err := f.service.Create(ctx, domain.Order{
		Book:      domain.Book{ID: book.ID},
		Customer:  domain.Customer{ID: customer.ID},
		Status:    "Cancelled",
		OrderTime: time.Now(),
	})
	require.NoError(t, err)

	// Status is an opaque label: a cancelled order can be reopened.
	updated, err := f.service.Update(ctx, created.ID, domain.Order{
		Book:      created.Book,
		Customer:  created.Customer,
		Status:    "Processing",
		OrderTime: created.OrderTime,
	})
	require.NoError(t, err)
	assert.Equal(t, "Processing", updated.Status)
}

func Test_OrderService_Update_UnknownOrder(t *testing.T) {
	f := newFixture()

	_, err := f.service.Update(context.Background(), 555, domain.Order{})

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, domain.KindOrder, nf.Kind)
	assert.Equal(t, int64(555), nf.ID)
}

func Test_OrderService_Delete_ThenGetFails(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	book := f.seedBook(t)
	customer := f.seedCustomer(t)

	created, err := f.service.Create(ctx, domain.Order{
		Book:      domain.Book{ID: book.ID},
		Customer:  domain.Customer{ID: customer.ID},
		Status:    "Processing",
		OrderTime: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Delete(ctx, created.ID))

	_, err = f.service.Get(ctx, created.ID)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, domain.KindOrder, nf.Kind)
}

func Test_OrderService_Delete_UnknownOrder(t *testing.T) {
	f := newFixture()

	err := f.service.Delete(context.Background(), 1)

	assert.True(t, domain.IsNotFound(err))
}

func Test_OrderService_List(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	book := f.seedBook(t)
	customer := f.seedCustomer(t)

	for _, status := range []string{"Processing", "Shipped", "Delivered"} {
		_, err := f.service.Create(ctx, domain.Order{
			Book:      domain.Book{ID: book.ID},
			Customer:  domain.Customer{ID: customer.ID},
			Status:    status,
			OrderTime: time.Now(),
		})
		require.NoError(t, err)
	}

	orders, err := f.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "Processing", orders[0].Status)
	assert.Equal(t, "Shipped", orders[1].Status)
	assert.Equal(t, "Delivered", orders[2].Status)
}
