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

var _ ports.OrderRepository = (*OrderRepository)(nil)

// orderRow joins an orders row with its referenced book and customer rows.
// The joined columns are nullable: updates may store reference ids that no
// longer (or never did) resolve, and such orders must still load.
type orderRow struct {
	ID         int64  `db:"id"`
	BookID     int64  `db:"book_id"`
	CustomerID int64  `db:"customer_id"`
	Status     string `db:"status"`
	OrderTime  string `db:"order_time"`

	BookTitle          sql.NullString  `db:"book_title"`
	BookAuthor         sql.NullString  `db:"book_author"`
	BookEAN            sql.NullString  `db:"book_ean"`
	BookPrice          sql.NullFloat64 `db:"book_price"`
	BookPublishingDate sql.NullString  `db:"book_publishing_date"`

	CustomerName     sql.NullString `db:"customer_name"`
	CustomerAddress  sql.NullString `db:"customer_address"`
	CustomerEmail    sql.NullString `db:"customer_email"`
	CustomerPassword sql.NullString `db:"customer_password"`
}

func (r orderRow) toDomain() (domain.Order, error) {
	orderTime, err := parseTime(r.OrderTime)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		ID:        r.ID,
		Book:      domain.Book{ID: r.BookID},
		Customer:  domain.Customer{ID: r.CustomerID},
		Status:    r.Status,
		OrderTime: orderTime,
	}

	// A failed join leaves a bare reference carrying only the stored id.
	if r.BookTitle.Valid {
		published, err := parseDate(r.BookPublishingDate.String)
		if err != nil {
			return domain.Order{}, err
		}
		order.Book = domain.Book{
			ID:             r.BookID,
			Title:          r.BookTitle.String,
			Author:         r.BookAuthor.String,
			EAN:            r.BookEAN.String,
			Price:          r.BookPrice.Float64,
			PublishingDate: published,
		}
	}
	if r.CustomerName.Valid {
		order.Customer = domain.Customer{
			ID:       r.CustomerID,
			Name:     r.CustomerName.String,
			Address:  r.CustomerAddress.String,
			Email:    r.CustomerEmail.String,
			Password: r.CustomerPassword.String,
		}
	}

	return order, nil
}

// OrderRepository is the SQLite implementation of ports.OrderRepository.
type OrderRepository struct {
	db *sqlx.DB
}

// selectOrders builds the base SELECT with the book and customer LEFT JOINs.
func selectOrders() *goqu.SelectDataset {
	return dialect.From(goqu.T("orders").As("o")).
		LeftJoin(
			goqu.T("books").As("b"),
			goqu.On(goqu.I("b.id").Eq(goqu.I("o.book_id"))),
		).
		LeftJoin(
			goqu.T("customers").As("c"),
			goqu.On(goqu.I("c.id").Eq(goqu.I("o.customer_id"))),
		).
		Select(
			goqu.I("o.id").As("id"),
			goqu.I("o.book_id").As("book_id"),
			goqu.I("o.customer_id").As("customer_id"),
			goqu.I("o.status").As("status"),
			goqu.I("o.order_time").As("order_time"),
			goqu.I("b.title").As("book_title"),
			goqu.I("b.author").As("book_author"),
			goqu.I("b.ean").As("book_ean"),
			goqu.I("b.price").As("book_price"),
			goqu.I("b.publishing_date").As("book_publishing_date"),
			goqu.I("c.name").As("customer_name"),
			goqu.I("c.address").As("customer_address"),
			goqu.I("c.email").As("customer_email"),
			goqu.I("c.password").As("customer_password"),
		)
}

// FindAll returns all orders in id order with their references embedded.
func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query, args, err := selectOrders().
		Order(goqu.I("o.id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build find all orders: %w", err)
	}

	var rows []orderRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("sqlite: find all orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// FindByID returns the order with the given id, or false if absent.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (domain.Order, bool, error) {
	query, args, err := selectOrders().
		Where(goqu.I("o.id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return domain.Order{}, false, fmt.Errorf("sqlite: build find order: %w", err)
	}

	var row orderRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, false, nil
		}
		return domain.Order{}, false, fmt.Errorf("sqlite: find order %d: %w", id, err)
	}

	order, err := row.toDomain()
	if err != nil {
		return domain.Order{}, false, err
	}
	return order, true, nil
}

// Save inserts the order when its ID is zero and overwrites the existing row
// otherwise. Only the reference ids are stored; the embedded records live in
// their own tables.
func (r *OrderRepository) Save(ctx context.Context, order domain.Order) (domain.Order, error) {
	record := goqu.Record{
		"book_id":     order.Book.ID,
		"customer_id": order.Customer.ID,
		"status":      order.Status,
		"order_time":  formatTime(order.OrderTime),
	}

	if order.ID == 0 {
		query, args, err := dialect.Insert("orders").Rows(record).Prepared(true).ToSQL()
		if err != nil {
			return domain.Order{}, fmt.Errorf("sqlite: build insert order: %w", err)
		}
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return domain.Order{}, fmt.Errorf("sqlite: insert order: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return domain.Order{}, fmt.Errorf("sqlite: order insert id: %w", err)
		}
		order.ID = id
		return order, nil
	}

	query, args, err := dialect.Update("orders").
		Set(record).
		Where(goqu.C("id").Eq(order.ID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return domain.Order{}, fmt.Errorf("sqlite: build update order: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Order{}, fmt.Errorf("sqlite: update order %d: %w", order.ID, err)
	}
	return order, nil
}

// Delete removes the order row. Callers verify existence first.
func (r *OrderRepository) Delete(ctx context.Context, order domain.Order) error {
	query, args, err := dialect.Delete("orders").
		Where(goqu.C("id").Eq(order.ID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("sqlite: build delete order: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqlite: delete order %d: %w", order.ID, err)
	}
	return nil
}
