package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/domain"
	"github.com/mruizdev/bookstore-backoffice/internal/bookstore/core/ports"
)

var _ ports.CustomerRepository = (*CustomerRepository)(nil)

type customerRow struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Address  string `db:"address"`
	Email    string `db:"email"`
	Password string `db:"password"`
}

func (r customerRow) toDomain() domain.Customer {
	return domain.Customer{
		ID:       r.ID,
		Name:     r.Name,
		Address:  r.Address,
		Email:    r.Email,
		Password: r.Password,
	}
}

// CustomerRepository is the SQLite implementation of ports.CustomerRepository.
type CustomerRepository struct {
	db *sqlx.DB
}

// FindAll returns all customers in id order.
func (r *CustomerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	query, args, err := dialect.From("customers").
		Order(goqu.I("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build find all customers: %w", err)
	}

	var rows []customerRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("sqlite: find all customers: %w", err)
	}

	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, row.toDomain())
	}
	return customers, nil
}

// FindByID returns the customer with the given id, or false if absent.
func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (domain.Customer, bool, error) {
	query, args, err := dialect.From("customers").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return domain.Customer{}, false, fmt.Errorf("sqlite: build find customer: %w", err)
	}

	var row customerRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, false, nil
		}
		return domain.Customer{}, false, fmt.Errorf("sqlite: find customer %d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

// Save inserts the customer when its ID is zero and overwrites the existing
// row otherwise.
func (r *CustomerRepository) Save(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	record := goqu.Record{
		"name":     customer.Name,
		"address":  customer.Address,
		"email":    customer.Email,
		"password": customer.Password,
	}

	if customer.ID == 0 {
		query, args, err := dialect.Insert("customers").Rows(record).Prepared(true).ToSQL()
		if err != nil {
			return domain.Customer{}, fmt.Errorf("sqlite: build insert customer: %w", err)
		}
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return domain.Customer{}, fmt.Errorf("sqlite: insert customer: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return domain.Customer{}, fmt.Errorf("sqlite: customer insert id: %w", err)
		}
		customer.ID = id
		return customer, nil
	}

	query, args, err := dialect.Update("customers").
		Set(record).
		Where(goqu.C("id").Eq(customer.ID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return domain.Customer{}, fmt.Errorf("sqlite: build update customer: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Customer{}, fmt.Errorf("sqlite: update customer %d: %w", customer.ID, err)
	}
	return customer, nil
}

// Delete removes the customer row. Callers verify existence first.
func (r *CustomerRepository) Delete(ctx context.Context, customer domain.Customer) error {
	query, args, err := dialect.Delete("customers").
		Where(goqu.C("id").Eq(customer.ID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("sqlite: build delete customer: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqlite: delete customer %d: %w", customer.ID, err)
	}
	return nil
}
