package store

import (
	"database/sql"
	"errors"
)

// PlaceOrder fulfills what it can of the requested name->quantity mapping
// for a customer and records the order.
//
// Fulfillment pass: each requested line whose product exists with enough
// stock contributes price*quantity to the total and has its stock
// decremented immediately. Lines for unknown products, or with
// insufficient stock, are skipped without error.
//
// Recording pass: if anything was fulfilled, one order row is inserted,
// then one order_items row per originally requested line. The full
// requested set is recorded, not just the fulfilled lines; quantities are
// not re-validated and an unknown product gets a NULL product id.
//
// When no line could be fulfilled, nothing is written and
// ErrNothingFulfilled is returned.
func (s *SQLStore) PlaceOrder(customerName string, requested map[string]int) (OrderRow, error) {
	var total float64
	for name, qty := range requested {
		var price float64
		var stock int
		err := s.DB.QueryRow(`SELECT price, quantity FROM products WHERE name=$1`, name).Scan(&price, &stock)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return OrderRow{}, err
		}
		if stock < qty {
			continue
		}
		total += price * float64(qty)
		if _, err := s.DB.Exec(`UPDATE products SET quantity=$1 WHERE name=$2`, stock-qty, name); err != nil {
			return OrderRow{}, err
		}
	}

	if total <= 0 {
		return OrderRow{}, ErrNothingFulfilled
	}

	var orderID int64
	if err := s.DB.QueryRow(
		`INSERT INTO orders (customer_name, total_price) VALUES ($1, $2) RETURNING id`,
		customerName, total,
	).Scan(&orderID); err != nil {
		return OrderRow{}, err
	}

	for name, qty := range requested {
		var productID sql.NullInt64
		err := s.DB.QueryRow(`SELECT id FROM products WHERE name=$1`, name).Scan(&productID.Int64)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return OrderRow{}, err
		}
		productID.Valid = err == nil
		if _, err := s.DB.Exec(
			`INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)`,
			orderID, productID, qty,
		); err != nil {
			return OrderRow{}, err
		}
	}

	return OrderRow{ID: orderID, CustomerName: customerName, TotalPrice: total}, nil
}

// DeleteOrder removes an order together with its line items.
func (s *SQLStore) DeleteOrder(orderID int64) error {
	var id int64
	err := s.DB.QueryRow(`SELECT id FROM orders WHERE id=$1`, orderID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if _, err := s.DB.Exec(`DELETE FROM orders WHERE id=$1`, orderID); err != nil {
		return err
	}
	_, err = s.DB.Exec(`DELETE FROM order_items WHERE order_id=$1`, orderID)
	return err
}

func (s *SQLStore) ListOrders() ([]OrderRow, error) {
	rows, err := s.DB.Query(`SELECT id, customer_name, total_price FROM orders ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []OrderRow{}
	for rows.Next() {
		var o OrderRow
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.TotalPrice); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
