package service

// Cart accumulates requested quantities by product name for one client
// session. It is never persisted; a new cart is built on login and thrown
// away on logout.
type Cart struct {
	items map[string]int
}

func NewCart() *Cart {
	return &Cart{items: map[string]int{}}
}

// Add sums quantity into any existing entry for the name.
func (c *Cart) Add(name string, quantity int) {
	c.items[name] += quantity
}

// Clear resets the cart to empty.
func (c *Cart) Clear() {
	c.items = map[string]int{}
}

// Items returns a copy of the current name->quantity mapping.
func (c *Cart) Items() map[string]int {
	out := make(map[string]int, len(c.items))
	for name, qty := range c.items {
		out[name] = qty
	}
	return out
}

func (c *Cart) Empty() bool { return len(c.items) == 0 }
