package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/services"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/testutil"
)

func newCustomerService() *services.CustomerService {
	return services.NewCustomerService(testutil.NewMemCustomerRepository())
}

func Test_CustomerService_CreateAndGet(t *testing.T) {
	service := newCustomerService()
	ctx := context.Background()

	created, err := service.Create(ctx, domain.Customer{
		Name:     "N",
		Address:  "Addr",
		Email:    "e@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// Stored as received; no hashing happens anywhere.
	assert.Equal(t, "secret1", got.Password)
}

func Test_CustomerService_Create_RejectsShortPassword(t *testing.T) {
	service := newCustomerService()

	_, err := service.Create(context.Background(), domain.Customer{
		Name:     "N",
		Address:  "Addr",
		Email:    "e@x.com",
		Password: "short",
	})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)
}

func Test_CustomerService_Update_ReplacesAllFields(t *testing.T) {
	service := newCustomerService()
	ctx := context.Background()

	created, err := service.Create(ctx, domain.Customer{
		Name:     "Before",
		Address:  "Old Street 1",
		Email:    "old@x.com",
		Password: "oldpass1",
	})
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, domain.Customer{
		Name:     "After",
		Address:  "New Street 2",
		Email:    "new@x.com",
		Password: "newpass1",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, "New Street 2", updated.Address)
	assert.Equal(t, "new@x.com", updated.Email)
	assert.Equal(t, "newpass1", updated.Password)
}

func Test_CustomerService_Get_Unknown(t *testing.T) {
	service := newCustomerService()

	_, err := service.Get(context.Background(), 404)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, domain.KindCustomer, nf.Kind)
	assert.Equal(t, int64(404), nf.ID)
}

func Test_CustomerService_Delete_ThenGetFails(t *testing.T) {
	service := newCustomerService()
	ctx := context.Background()

	created, err := service.Create(ctx, domain.Customer{
		Name:     "N",
		Address:  "Addr",
		Email:    "e@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.True(t, domain.IsNotFound(service.Delete(ctx, created.ID)))
}
