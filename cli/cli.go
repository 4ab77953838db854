package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"jewelry-shop/service"
	"jewelry-shop/store"
)

// CLI is the text-menu layer that talks to service.ServiceInterface. It
// reads line-oriented input and writes prompts and results to out; every
// reported condition is printed and the loop re-prompts.
type CLI struct {
	svc service.ServiceInterface
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func New(svc service.ServiceInterface, in io.Reader, out io.Writer) *CLI {
	return &CLI{svc: svc, in: bufio.NewReader(in), out: out}
}

// Run drives the top-level register/login/exit menu until the user exits
// or input is exhausted.
func (c *CLI) Run() {
	for !c.eof {
		fmt.Fprintln(c.out, "\n1. Register\n2. Login\n3. Exit")
		switch c.readLine("Enter your choice: ") {
		case "1":
			c.register()
		case "2":
			c.login()
		case "3":
			return
		default:
			if c.eof {
				return
			}
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *CLI) register() {
	username := c.readLine("Enter username: ")
	password := c.readLine("Enter password: ")
	role := c.readLine("Enter role (client, employee, admin): ")

	if _, err := c.svc.RegisterUser(username, password, role); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			fmt.Fprintf(c.out, "Username '%s' is already taken. Choose another name.\n", username)
			return
		}
		fmt.Fprintf(c.out, "Registration failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Registration successful!")
}

func (c *CLI) login() {
	username := c.readLine("Enter username: ")
	password := c.readLine("Enter password: ")
	role := c.readLine("Enter role (client, employee, admin): ")

	ok, err := c.svc.Authenticate(username, password, role)
	if err != nil {
		fmt.Fprintf(c.out, "Login failed: %v\n", err)
		return
	}
	if !ok {
		fmt.Fprintln(c.out, "Authentication failed. Please try again.")
		return
	}
	fmt.Fprintln(c.out, "Authentication successful!")

	switch role {
	case "client":
		c.clientMenu(username)
	case "employee":
		c.employeeMenu(username)
	case "admin":
		c.adminMenu()
	}
}

func (c *CLI) clientMenu(username string) {
	cart := service.NewCart()
	for !c.eof {
		fmt.Fprintln(c.out, "\n1. View Available Products\n2. Add Product to Cart\n3. View Cart\n4. Checkout\n5. Logout")
		switch c.readLine("Enter your choice: ") {
		case "1":
			c.printAvailableProducts()
		case "2":
			name := c.readLine("Enter product name: ")
			qty := c.readInt("Enter quantity: ")
			if _, err := c.svc.GetProductByName(name); errors.Is(err, store.ErrNotFound) {
				fmt.Fprintf(c.out, "Note: '%s' is not currently stocked.\n", name)
			}
			cart.Add(name, qty)
			fmt.Fprintf(c.out, "%d %s(s) added to cart.\n", qty, name)
		case "3":
			if cart.Empty() {
				fmt.Fprintln(c.out, "Cart is empty.")
				continue
			}
			fmt.Fprintln(c.out, "\nCurrent Cart:")
			for name, qty := range cart.Items() {
				fmt.Fprintf(c.out, "%s: %d\n", name, qty)
			}
		case "4":
			order, err := c.svc.PlaceOrder(username, cart.Items())
			if errors.Is(err, store.ErrNothingFulfilled) {
				fmt.Fprintln(c.out, "No order placed: nothing in the cart could be fulfilled.")
			} else if err != nil {
				fmt.Fprintf(c.out, "Checkout failed: %v\n", err)
			} else {
				fmt.Fprintf(c.out, "Order placed successfully! Order %d, total %.2f\n", order.ID, order.TotalPrice)
			}
			cart.Clear()
		case "5":
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *CLI) employeeMenu(username string) {
	for !c.eof {
		fmt.Fprintln(c.out, "\nEmployee Actions:")
		fmt.Fprintln(c.out, "1. Add Product\n2. Delete Product\n3. Update Product\n4. View Available Products\n5. Filter Products\n6. Configure Own User Data\n7. Logout")
		switch c.readLine("Enter your choice: ") {
		case "1":
			name := c.readLine("Enter product name: ")
			price := c.readFloat("Enter product price: ")
			qty := c.readInt("Enter product quantity: ")
			restocked, err := c.svc.AddOrRestockProduct(name, price, qty)
			if err != nil {
				fmt.Fprintf(c.out, "Error adding product: %v\n", err)
			} else if restocked {
				fmt.Fprintf(c.out, "Stock of '%s' updated.\n", name)
			} else {
				fmt.Fprintf(c.out, "Product '%s' added.\n", name)
			}
		case "2":
			name := c.readLine("Enter product name to delete: ")
			if err := c.svc.RemoveProduct(name); errors.Is(err, store.ErrNotFound) {
				fmt.Fprintf(c.out, "Product '%s' not found.\n", name)
			} else if err != nil {
				fmt.Fprintf(c.out, "Error deleting product: %v\n", err)
			} else {
				fmt.Fprintf(c.out, "Product '%s' deleted.\n", name)
			}
		case "3":
			name := c.readLine("Enter product name to update: ")
			price := c.readOptionalFloat("Enter new price (blank to keep current): ")
			qty := c.readOptionalInt("Enter new quantity (blank to keep current): ")
			if err := c.svc.UpdateProduct(name, price, qty); errors.Is(err, store.ErrNotFound) {
				fmt.Fprintf(c.out, "Product '%s' not found.\n", name)
			} else if err != nil {
				fmt.Fprintf(c.out, "Error updating product: %v\n", err)
			} else {
				fmt.Fprintf(c.out, "Product '%s' updated.\n", name)
			}
		case "4":
			c.printAvailableProducts()
		case "5":
			f := store.ProductFilter{
				MinPrice:    c.readOptionalFloat("Min price (blank for none): "),
				MaxPrice:    c.readOptionalFloat("Max price (blank for none): "),
				MinQuantity: c.readOptionalInt("Min quantity (blank for none): "),
				MaxQuantity: c.readOptionalInt("Max quantity (blank for none): "),
			}
			products, err := c.svc.FilterProducts(f)
			if err != nil {
				fmt.Fprintf(c.out, "Error filtering products: %v\n", err)
				continue
			}
			c.printProducts(products)
		case "6":
			id, err := c.svc.UserIDByName(username)
			if err != nil {
				fmt.Fprintf(c.out, "Could not look up your account: %v\n", err)
				continue
			}
			c.promptUserUpdate(id)
		case "7":
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *CLI) adminMenu() {
	for !c.eof {
		fmt.Fprintln(c.out, "\nAdmin Actions:")
		fmt.Fprintln(c.out, "1. View All Users\n2. Delete User\n3. Update User\n4. Add User\n5. View Orders\n6. Delete Order\n7. Exit Admin Panel")
		switch c.readLine("Enter your choice: ") {
		case "1":
			users, err := c.svc.ListUsers()
			if err != nil {
				fmt.Fprintf(c.out, "Error retrieving users: %v\n", err)
				continue
			}
			fmt.Fprintln(c.out, "\nAll Users:")
			for _, u := range users {
				fmt.Fprintf(c.out, "ID: %d, Username: %s, Role: %s\n", u.ID, u.Username, u.Role)
			}
		case "2":
			id := c.readInt64("Enter user ID to delete: ")
			if err := c.svc.DeleteUser(id); err != nil {
				fmt.Fprintf(c.out, "Error deleting user: %v\n", err)
			} else {
				fmt.Fprintf(c.out, "User with ID %d deleted.\n", id)
			}
		case "3":
			id := c.readInt64("Enter user ID to update: ")
			c.promptUserUpdate(id)
		case "4":
			c.register()
		case "5":
			orders, err := c.svc.ListOrders()
			if err != nil {
				fmt.Fprintf(c.out, "Error retrieving orders: %v\n", err)
				continue
			}
			fmt.Fprintln(c.out, "\nAll Orders:")
			for _, o := range orders {
				fmt.Fprintf(c.out, "Order %d: customer %s, total %.2f\n", o.ID, o.CustomerName, o.TotalPrice)
			}
		case "6":
			id := c.readInt64("Enter order ID to delete: ")
			if err := c.svc.DeleteOrder(id); errors.Is(err, store.ErrNotFound) {
				fmt.Fprintf(c.out, "Order %d not found.\n", id)
			} else if err != nil {
				fmt.Fprintf(c.out, "Error deleting order: %v\n", err)
			} else {
				fmt.Fprintf(c.out, "Order %d deleted.\n", id)
			}
		case "7":
			fmt.Fprintln(c.out, "Exiting Admin Panel.")
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *CLI) promptUserUpdate(id int64) {
	username := c.readOptionalString("Enter new username (blank to keep current): ")
	password := c.readOptionalString("Enter new password (blank to keep current): ")
	role := c.readOptionalString("Enter new role (blank to keep current): ")
	if err := c.svc.UpdateUser(id, username, password, role); errors.Is(err, store.ErrNotFound) {
		fmt.Fprintf(c.out, "User with ID %d not found.\n", id)
	} else if err != nil {
		fmt.Fprintf(c.out, "Error updating user: %v\n", err)
	} else {
		fmt.Fprintf(c.out, "User with ID %d updated successfully.\n", id)
	}
}

func (c *CLI) printAvailableProducts() {
	products, err := c.svc.ListAvailableProducts()
	if err != nil {
		fmt.Fprintf(c.out, "Error retrieving products: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "\nAvailable Products:")
	c.printProducts(products)
}

func (c *CLI) printProducts(products []service.Product) {
	for _, p := range products {
		fmt.Fprintf(c.out, "ID: %d, Name: %s, Price: %.2f, Quantity: %d\n", p.ID, p.Name, p.Price, p.Quantity)
	}
}
