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

var _ ports.BookRepository = (*BookRepository)(nil)

// bookRow mirrors the books table for sqlx scanning.
type bookRow struct {
	ID             int64   `db:"id"`
	Title          string  `db:"title"`
	Author         string  `db:"author"`
	EAN            string  `db:"ean"`
	Price          float64 `db:"price"`
	PublishingDate string  `db:"publishing_date"`
}

func (r bookRow) toDomain() (domain.Book, error) {
	published, err := parseDate(r.PublishingDate)
	if err != nil {
		return domain.Book{}, err
	}
	return domain.Book{
		ID:             r.ID,
		Title:          r.Title,
		Author:         r.Author,
		EAN:            r.EAN,
		Price:          r.Price,
		PublishingDate: published,
	}, nil
}

// BookRepository is the SQLite implementation of ports.BookRepository.
type BookRepository struct {
	db *sqlx.DB
}

// FindAll returns all books in id order.
func (r *BookRepository) FindAll(ctx context.Context) ([]domain.Book, error) {
	query, args, err := dialect.From("books").
		Order(goqu.I("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build find all books: %w", err)
	}

	var rows []bookRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("sqlite: find all books: %w", err)
	}

	books := make([]domain.Book, 0, len(rows))
	for _, row := range rows {
		book, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// FindByID returns the book with the given id, or false if absent.
func (r *BookRepository) FindByID(ctx context.Context, id int64) (domain.Book, bool, error) {
	query, args, err := dialect.From("books").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return domain.Book{}, false, fmt.Errorf("sqlite: build find book: %w", err)
	}

	var row bookRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Book{}, false, nil
		}
		return domain.Book{}, false, fmt.Errorf("sqlite: find book %d: %w", id, err)
	}

	book, err := row.toDomain()
	if err != nil {
		return domain.Book{}, false, err
	}
	return book, true, nil
}

// Save inserts the book when its ID is zero, letting SQLite assign one, and
// overwrites the existing row otherwise.
func (r *BookRepository) Save(ctx context.Context, book domain.Book) (domain.Book, error) {
	record := goqu.Record{
		"title":           book.Title,
		"author":          book.Author,
		"ean":             book.EAN,
		"price":           book.Price,
		"publishing_date": formatDate(book.PublishingDate),
	}

	if book.ID == 0 {
		query, args, err := dialect.Insert("books").Rows(record).Prepared(true).ToSQL()
		if err != nil {
			return domain.Book{}, fmt.Errorf("sqlite: build insert book: %w", err)
		}
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return domain.Book{}, fmt.Errorf("sqlite: insert book: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return domain.Book{}, fmt.Errorf("sqlite: book insert id: %w", err)
		}
		book.ID = id
		return book, nil
	}

	query, args, err := dialect.Update("books").
		Set(record).
		Where(goqu.C("id").Eq(book.ID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return domain.Book{}, fmt.Errorf("sqlite: build update book: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Book{}, fmt.Errorf("sqlite: update book %d: %w", book.ID, err)
	}
	return book, nil
}

// Delete removes the book row. Callers verify existence first.
func (r *BookRepository) Delete(ctx context.Context, book domain.Book) error {
	query, args, err := dialect.Delete("books").
		Where(goqu.C("id").Eq(book.ID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("sqlite: build delete book: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqlite: delete book %d: %w", book.ID, err)
	}
	return nil
}
