package store

import "github.com/samber/mo"

// ProductFilter holds optional bounds; an absent bound is unconstrained.
type ProductFilter struct {
	MinPrice    mo.Option[float64]
	MaxPrice    mo.Option[float64]
	MinQuantity mo.Option[int]
	MaxQuantity mo.Option[int]
}

type Store interface {
	AddOrRestockProduct(name string, price float64, quantity int) (restocked bool, err error)
	RemoveProduct(name string) error
	UpdateProduct(name string, price mo.Option[float64], quantity mo.Option[int]) error
	FilterProducts(f ProductFilter) ([]ProductRow, error)
	ListAvailableProducts() ([]ProductRow, error)
	GetProductByName(name string) (ProductRow, error)

	PlaceOrder(customerName string, requested map[string]int) (OrderRow, error)
	DeleteOrder(orderID int64) error
	ListOrders() ([]OrderRow, error)

	RegisterUser(username, password, role string) (int64, error)
	Authenticate(username, password, role string) (bool, error)
	ListUsers() ([]UserRow, error)
	DeleteUser(userID int64) error
	UpdateUser(userID int64, username, password, role mo.Option[string]) error
	UserIDByName(username string) (int64, error)

	Close() error
}
