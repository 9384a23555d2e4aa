package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/adapters/storage/sqlite"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "bookstore.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func Test_BookRepository_RoundTrip(t *testing.T) {
	store := openStore(t)
	repo := store.Books()
	ctx := context.Background()

	published := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	saved, err := repo.Save(ctx, domain.Book{
		Title:          "T",
		Author:         "A",
		EAN:            "E1",
		Price:          10.0,
		PublishingDate: published,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	got, ok, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, got)

	// Overwrite at the same id.
	saved.Price = 12.5
	_, err = repo.Save(ctx, saved)
	require.NoError(t, err)

	got, ok, err = repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 12.5, got.Price)

	require.NoError(t, repo.Delete(ctx, saved))

	_, ok, err = repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_BookRepository_FindAll_InsertionOrder(t *testing.T) {
	store := openStore(t)
	repo := store.Books()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Save(ctx, domain.Book{
			Title:          title,
			Author:         "A",
			EAN:            "E",
			Price:          1,
			PublishingDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	books, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "first", books[0].Title)
	assert.Equal(t, "second", books[1].Title)
	assert.Equal(t, "third", books[2].Title)
}

func Test_CustomerRepository_RoundTrip(t *testing.T) {
	store := openStore(t)
	repo := store.Customers()
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.Customer{
		Name:     "N",
		Address:  "Addr",
		Email:    "e@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	got, ok, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, got)

	_, ok, err = repo.FindByID(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_OrderRepository_EmbedsReferencedRecords(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	book, err := store.Books().Save(ctx, domain.Book{
		Title:          "T",
		Author:         "A",
		EAN:            "E1",
		Price:          10.0,
		PublishingDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	customer, err := store.Customers().Save(ctx, domain.Customer{
		Name:     "N",
		Address:  "Addr",
		Email:    "e@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	orderTime := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	saved, err := store.Orders().Save(ctx, domain.Order{
		Book:      book,
		Customer:  customer,
		Status:    "Processing",
		OrderTime: orderTime,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	got, ok, err := store.Orders().FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, book, got.Book)
	assert.Equal(t, customer, got.Customer)
	assert.Equal(t, "Processing", got.Status)
	assert.True(t, orderTime.Equal(got.OrderTime))
}

func Test_OrderRepository_DanglingReferencesStillLoad(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	// Unvalidated updates can store reference ids without matching rows.
	// Loading must not drop the order, only leave the references bare.
	orderTime := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	saved, err := store.Orders().Save(ctx, domain.Order{
		Book:      domain.Book{ID: 999},
		Customer:  domain.Customer{ID: 888},
		Status:    "Shipped",
		OrderTime: orderTime,
	})
	require.NoError(t, err)

	got, ok, err := store.Orders().FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Book{ID: 999}, got.Book)
	assert.Equal(t, domain.Customer{ID: 888}, got.Customer)
	assert.Equal(t, "Shipped", got.Status)
	assert.True(t, orderTime.Equal(got.OrderTime))

	orders, err := store.Orders().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func Test_OrderRepository_Overwrite(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	saved, err := store.Orders().Save(ctx, domain.Order{
		Book:      domain.Book{ID: 1},
		Customer:  domain.Customer{ID: 1},
		Status:    "Processing",
		OrderTime: time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	saved.Status = "Delivered"
	_, err = store.Orders().Save(ctx, saved)
	require.NoError(t, err)

	got, ok, err := store.Orders().FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Delivered", got.Status)

	require.NoError(t, store.Orders().Delete(ctx, saved))
	_, ok, err = store.Orders().FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
