package service

import (
	"github.com/samber/mo"

	"jewelry-shop/store"
)

type ServiceInterface interface {
	AddOrRestockProduct(name string, price float64, quantity int) (bool, error)
	RemoveProduct(name string) error
	UpdateProduct(name string, price mo.Option[float64], quantity mo.Option[int]) error
	FilterProducts(f store.ProductFilter) ([]Product, error)
	ListAvailableProducts() ([]Product, error)
	GetProductByName(name string) (Product, error)

	PlaceOrder(customerName string, requested map[string]int) (Order, error)
	DeleteOrder(orderID int64) error
	ListOrders() ([]Order, error)

	RegisterUser(username, password, role string) (int64, error)
	Authenticate(username, password, role string) (bool, error)
	ListUsers() ([]User, error)
	DeleteUser(userID int64) error
	UpdateUser(userID int64, username, password, role mo.Option[string]) error
	UserIDByName(username string) (int64, error)
}
