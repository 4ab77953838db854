package store

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
)

// ProductRow, OrderRow etc are simple structs representing DB rows
type ProductRow struct {
	ID       int64
	Name     string
	Price    float64
	Quantity int
}

type OrderRow struct {
	ID           int64
	CustomerName string
	TotalPrice   float64
}

type OrderItemRow struct {
	ID        int64
	OrderID   int64
	ProductID sql.NullInt64
	Quantity  int
}

type UserRow struct {
	ID       int64
	Username string
	Password string
	Role     string
}

// ErrNotFound is returned when no row exists for the given key.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a registration collides with an
// existing username.
var ErrAlreadyExists = errors.New("already exists")

// ErrNothingFulfilled is returned when no requested order line could be
// fulfilled, so no order was recorded.
var ErrNothingFulfilled = errors.New("no order line could be fulfilled")

// SQLStore is a Store backed by a single process-wide sql.DB handle,
// opened at startup and held for the process lifetime.
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(dsn string) (*SQLStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &SQLStore{DB: db}, nil
}

func (s *SQLStore) Close() error { return s.DB.Close() }
