// Package sqlite provides the SQLite-backed implementations of the bookstore
// repository ports.
//
// WAL mode is enabled on Open so that readers never block writers and vice
// versa; requests are served concurrently and reads race writes routinely.
// Timestamps are stored as RFC3339 TEXT, the SQLite idiom, since SQLite has
// no native datetime type.
package sqlite

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	// Register the sqlite3 dialect for the goqu query builder.
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/jmoiron/sqlx"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO,
	// keeping Docker (Alpine) builds simple.
	_ "modernc.org/sqlite"
)

var dialect = goqu.Dialect("sqlite3")

// schema is the DDL executed once on startup. Identifiers are assigned by
// SQLite. orders.book_id / orders.customer_id are plain integer references:
// existence is enforced at the application layer on create, and deliberately
// not on update, so no FOREIGN KEY constraint is declared.
const schema = `
CREATE TABLE IF NOT EXISTS books (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    title           TEXT    NOT NULL,
    author          TEXT    NOT NULL,
    ean             TEXT    NOT NULL,
    price           REAL    NOT NULL,
    publishing_date TEXT    NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    name     TEXT NOT NULL,
    address  TEXT NOT NULL,
    email    TEXT NOT NULL,
    password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    book_id     INTEGER NOT NULL,
    customer_id INTEGER NOT NULL,
    status      TEXT    NOT NULL,
    order_time  TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_book_id     ON orders(book_id);
CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id);
`

// Store owns the database handle and hands out per-entity repositories.
type Store struct {
	db *sqlx.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema.
//
//	store, err := sqlite.Open("./data/bookstore.db")
func Open(path string) (*Store, error) {
	// The pure-Go driver uses _pragma query parameters to configure
	// connection state. busy_timeout waits for locks instead of failing.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// Use "sqlite", not "sqlite3", for the modernc driver.
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (s *Store) Close() error {
	return s.db.Close()
}

// Books returns the book repository backed by this store.
func (s *Store) Books() *BookRepository {
	return &BookRepository{db: s.db}
}

// Customers returns the customer repository backed by this store.
func (s *Store) Customers() *CustomerRepository {
	return &CustomerRepository{db: s.db}
}

// Orders returns the order repository backed by this store.
func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{db: s.db}
}

// applySchema runs the DDL statements once. Idempotent due to IF NOT EXISTS.
func applySchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}
