package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/mo"
)

// AddOrRestockProduct inserts a new product, or adds quantity to the
// existing stock when a product with the same name is already on the
// shelf. The price argument is ignored on restock; the first listing
// price is kept. Returns true when it restocked.
func (s *SQLStore) AddOrRestockProduct(name string, price float64, quantity int) (bool, error) {
	var current ProductRow
	err := s.DB.QueryRow(`SELECT id, name, price, quantity FROM products WHERE name=$1`, name).
		Scan(&current.ID, &current.Name, &current.Price, &current.Quantity)
	switch {
	case err == nil:
		_, err = s.DB.Exec(`UPDATE products SET quantity=$1 WHERE name=$2`, current.Quantity+quantity, name)
		return true, err
	case errors.Is(err, sql.ErrNoRows):
		_, err = s.DB.Exec(`INSERT INTO products (name, price, quantity) VALUES ($1, $2, $3)`, name, price, quantity)
		return false, err
	default:
		return false, err
	}
}

// RemoveProduct deletes the product and every order line referencing it.
// Past orders keep their totals but lose the product reference.
func (s *SQLStore) RemoveProduct(name string) error {
	var id int64
	err := s.DB.QueryRow(`SELECT id FROM products WHERE name=$1`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if _, err := s.DB.Exec(`DELETE FROM products WHERE name=$1`, name); err != nil {
		return err
	}
	_, err = s.DB.Exec(`DELETE FROM order_items WHERE product_id=$1`, id)
	return err
}

// UpdateProduct applies a partial update; an absent option keeps the
// current value.
func (s *SQLStore) UpdateProduct(name string, price mo.Option[float64], quantity mo.Option[int]) error {
	var current ProductRow
	err := s.DB.QueryRow(`SELECT id, name, price, quantity FROM products WHERE name=$1`, name).
		Scan(&current.ID, &current.Name, &current.Price, &current.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	newPrice := price.OrElse(current.Price)
	newQuantity := quantity.OrElse(current.Quantity)
	_, err = s.DB.Exec(`UPDATE products SET price=$1, quantity=$2 WHERE name=$3`, newPrice, newQuantity, name)
	return err
}

// FilterProducts returns products satisfying every supplied bound. Absent
// bounds are unconstrained; with no bounds at all it returns everything.
func (s *SQLStore) FilterProducts(f ProductFilter) ([]ProductRow, error) {
	var clauses []string
	var args []interface{}
	add := func(cond string, v interface{}) {
		args = append(args, v)
		clauses = append(clauses, fmt.Sprintf(cond, len(args)))
	}
	if v, ok := f.MinPrice.Get(); ok {
		add("price >= $%d", v)
	}
	if v, ok := f.MaxPrice.Get(); ok {
		add("price <= $%d", v)
	}
	if v, ok := f.MinQuantity.Get(); ok {
		add("quantity >= $%d", v)
	}
	if v, ok := f.MaxQuantity.Get(); ok {
		add("quantity <= $%d", v)
	}

	query := `SELECT id, name, price, quantity FROM products`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	return s.queryProducts(query, args...)
}

// ListAvailableProducts returns all products with stock on the shelf.
func (s *SQLStore) ListAvailableProducts() ([]ProductRow, error) {
	return s.queryProducts(`SELECT id, name, price, quantity FROM products WHERE quantity > 0`)
}

func (s *SQLStore) GetProductByName(name string) (ProductRow, error) {
	var p ProductRow
	err := s.DB.QueryRow(`SELECT id, name, price, quantity FROM products WHERE name=$1`, name).
		Scan(&p.ID, &p.Name, &p.Price, &p.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return ProductRow{}, ErrNotFound
	}
	return p, err
}

func (s *SQLStore) queryProducts(query string, args ...interface{}) ([]ProductRow, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ProductRow{}
	for rows.Next() {
		var p ProductRow
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Quantity); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
