package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

const (
	selectPriceStock  = `SELECT price, quantity FROM products WHERE name=$1`
	selectProductID   = `SELECT id FROM products WHERE name=$1`
	updateStockByName = `UPDATE products SET quantity=$1 WHERE name=$2`
	insertOrder       = `INSERT INTO orders (customer_name, total_price) VALUES ($1, $2) RETURNING id`
	insertOrderItem   = `INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)`
)

func TestPlaceOrder_FulfillsAndDecrementsStock(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPriceStock)).
		WithArgs("Ring").
		WillReturnRows(sqlmock.NewRows([]string{"price", "quantity"}).AddRow(10.0, 5))
	mock.ExpectExec(regexp.QuoteMeta(updateStockByName)).
		WithArgs(2, "Ring").
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(regexp.QuoteMeta(insertOrder)).
		WithArgs("A", 30.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	mock.ExpectQuery(regexp.QuoteMeta(selectProductID)).
		WithArgs("Ring").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectExec(regexp.QuoteMeta(insertOrderItem)).
		WithArgs(int64(1), int64(9), 3).
		WillReturnResult(sqlmock.NewResult(1, 1))

	order, err := s.PlaceOrder("A", map[string]int{"Ring": 3})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if order.TotalPrice != 30 {
		t.Fatalf("expected total 30, got %v", order.TotalPrice)
	}
	if order.ID != 1 || order.CustomerName != "A" {
		t.Fatalf("unexpected order: %+v", order)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// A requested line whose product does not exist is skipped during
// fulfillment but still recorded as an order line, with a NULL product id.
func TestPlaceOrder_RecordsUnfulfillableLines(t *testing.T) {
	s, mock := newMockStore(t)
	// two requested lines; map iteration order is not fixed
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(regexp.QuoteMeta(selectPriceStock)).
		WithArgs("Ring").
		WillReturnRows(sqlmock.NewRows([]string{"price", "quantity"}).AddRow(10.0, 5))
	mock.ExpectExec(regexp.QuoteMeta(updateStockByName)).
		WithArgs(2, "Ring").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectPriceStock)).
		WithArgs("Ghost").
		WillReturnError(sql.ErrNoRows)

	mock.ExpectQuery(regexp.QuoteMeta(insertOrder)).
		WithArgs("A", 30.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	mock.ExpectQuery(regexp.QuoteMeta(selectProductID)).
		WithArgs("Ring").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectExec(regexp.QuoteMeta(insertOrderItem)).
		WithArgs(int64(4), int64(9), 3).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectProductID)).
		WithArgs("Ghost").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta(insertOrderItem)).
		WithArgs(int64(4), nil, 1).
		WillReturnResult(sqlmock.NewResult(2, 1))

	order, err := s.PlaceOrder("A", map[string]int{"Ring": 3, "Ghost": 1})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if order.TotalPrice != 30 {
		t.Fatalf("expected total 30, got %v", order.TotalPrice)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceOrder_InsufficientStockLineSkipped(t *testing.T) {
	s, mock := newMockStore(t)

	// stock 2 < requested 3: no decrement, no order rows
	mock.ExpectQuery(regexp.QuoteMeta(selectPriceStock)).
		WithArgs("Ring").
		WillReturnRows(sqlmock.NewRows([]string{"price", "quantity"}).AddRow(10.0, 2))

	_, err := s.PlaceOrder("A", map[string]int{"Ring": 3})
	if !errors.Is(err, ErrNothingFulfilled) {
		t.Fatalf("expected ErrNothingFulfilled, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceOrder_NothingFulfilledWritesNothing(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPriceStock)).
		WithArgs("Ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := s.PlaceOrder("A", map[string]int{"Ghost": 1})
	if !errors.Is(err, ErrNothingFulfilled) {
		t.Fatalf("expected ErrNothingFulfilled, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteOrder_NotFoundAndCascade(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM orders WHERE id=$1`)).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	if err := s.DeleteOrder(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM orders WHERE id=$1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM orders WHERE id=$1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM order_items WHERE order_id=$1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := s.DeleteOrder(7); err != nil {
		t.Fatalf("DeleteOrder failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListOrders(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, customer_name, total_price FROM orders ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_name", "total_price"}).
			AddRow(int64(1), "A", 30.0).
			AddRow(int64(2), "B", 500.0))

	got, err := s.ListOrders()
	if err != nil {
		t.Fatalf("ListOrders failed: %v", err)
	}
	if len(got) != 2 || got[1].CustomerName != "B" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
