package service

import (
	"errors"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"jewelry-shop/store"
)

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) AddOrRestockProduct(name string, price float64, quantity int) (bool, error) {
	if name == "" {
		return false, errors.New("name required")
	}
	if price < 0 {
		return false, errors.New("price must be >= 0")
	}
	if quantity < 0 {
		return false, errors.New("quantity must be >= 0")
	}
	return s.store.AddOrRestockProduct(name, price, quantity)
}

func (s *Service) RemoveProduct(name string) error {
	if name == "" {
		return errors.New("name required")
	}
	return s.store.RemoveProduct(name)
}

func (s *Service) UpdateProduct(name string, price mo.Option[float64], quantity mo.Option[int]) error {
	if name == "" {
		return errors.New("name required")
	}
	return s.store.UpdateProduct(name, price, quantity)
}

func (s *Service) FilterProducts(f store.ProductFilter) ([]Product, error) {
	rows, err := s.store.FilterProducts(f)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, productFromRow), nil
}

func (s *Service) ListAvailableProducts() ([]Product, error) {
	rows, err := s.store.ListAvailableProducts()
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, productFromRow), nil
}

func (s *Service) GetProductByName(name string) (Product, error) {
	row, err := s.store.GetProductByName(name)
	if err != nil {
		return Product{}, err
	}
	return productFromRow(row, 0), nil
}

func (s *Service) PlaceOrder(customerName string, requested map[string]int) (Order, error) {
	if customerName == "" {
		return Order{}, errors.New("customer name required")
	}
	if len(requested) == 0 {
		return Order{}, store.ErrNothingFulfilled
	}
	row, err := s.store.PlaceOrder(customerName, requested)
	if err != nil {
		return Order{}, err
	}
	return orderFromRow(row, 0), nil
}

func (s *Service) DeleteOrder(orderID int64) error {
	return s.store.DeleteOrder(orderID)
}

func (s *Service) ListOrders() ([]Order, error) {
	rows, err := s.store.ListOrders()
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, orderFromRow), nil
}

func (s *Service) RegisterUser(username, password, role string) (int64, error) {
	if username == "" {
		return 0, errors.New("username required")
	}
	if password == "" {
		return 0, errors.New("password required")
	}
	return s.store.RegisterUser(username, password, role)
}

func (s *Service) Authenticate(username, password, role string) (bool, error) {
	return s.store.Authenticate(username, password, role)
}

func (s *Service) ListUsers() ([]User, error) {
	rows, err := s.store.ListUsers()
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, userFromRow), nil
}

func (s *Service) DeleteUser(userID int64) error {
	return s.store.DeleteUser(userID)
}

func (s *Service) UpdateUser(userID int64, username, password, role mo.Option[string]) error {
	return s.store.UpdateUser(userID, username, password, role)
}

func (s *Service) UserIDByName(username string) (int64, error) {
	return s.store.UserIDByName(username)
}

// DTOs
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customer_name"`
	TotalPrice   float64 `json:"total_price"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func productFromRow(r store.ProductRow, _ int) Product {
	return Product{ID: r.ID, Name: r.Name, Price: r.Price, Quantity: r.Quantity}
}

func orderFromRow(r store.OrderRow, _ int) Order {
	return Order{ID: r.ID, CustomerName: r.CustomerName, TotalPrice: r.TotalPrice}
}

func userFromRow(r store.UserRow, _ int) User {
	return User{ID: r.ID, Username: r.Username, Role: r.Role}
}
