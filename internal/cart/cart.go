package cart

import "sync"

// Line is a single dish selection in the cart: one distinct dish with a
// quantity and the options chosen for it (e.g. "Không hành").
type Line struct {
	ID        string
	Name      string
	UnitPrice int64 // VND, minor units
	Quantity  int
	Options   []string
	ImageURL  string
}

// Totals is the derived price breakdown of a cart.
type Totals struct {
	Subtotal    int64
	DeliveryFee int64
	Total       int64
}

// Cart holds the lines of one ordering session, keyed by line id and kept in
// insertion order. The delivery fee is fixed for the lifetime of the cart.
//
// All methods are safe for concurrent use; the settlement goroutine clears
// the cart when checkout succeeds.
type Cart struct {
	mu          sync.Mutex
	deliveryFee int64
	lines       map[string]*Line
	order       []string // line ids, insertion order
}

// New creates an empty cart with the given delivery fee.
func New(deliveryFee int64) *Cart {
	return &Cart{
		deliveryFee: deliveryFee,
		lines:       make(map[string]*Line),
	}
}

// AddOrIncrement inserts the line, or, if a line with the same id already
// exists, increments its quantity by the new line's quantity. Quantity is
// clamped to at least 1 on insert.
func (c *Cart) AddOrIncrement(line Line) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line.Quantity < 1 {
		line.Quantity = 1
	}

	if existing, ok := c.lines[line.ID]; ok {
		existing.Quantity += line.Quantity
		return
	}

	l := line
	c.lines[l.ID] = &l
	c.order = append(c.order, l.ID)
}

// SetQuantity replaces the quantity of the line with the given id. A quantity
// below 1 removes the line entirely. Unknown ids are a no-op: the UI
// double-taps faster than it re-renders, so a miss is tolerated, not an error.
func (c *Cart) SetQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[id]
	if !ok {
		return
	}
	if quantity < 1 {
		c.removeLocked(id)
		return
	}
	line.Quantity = quantity
}

// Remove deletes the line with the given id. Removing an absent id is a no-op.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

func (c *Cart) removeLocked(id string) {
	if _, ok := c.lines[id]; !ok {
		return
	}
	delete(c.lines, id)
	for i, lid := range c.order {
		if lid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart. Called after a successful checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[string]*Line)
	c.order = nil
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Totals computes the price breakdown from the current lines. Pure with
// respect to cart state: repeated calls without mutation return equal values.
func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	var subtotal int64
	for _, id := range c.order {
		l := c.lines[id]
		subtotal += l.UnitPrice * int64(l.Quantity)
	}
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: c.deliveryFee,
		Total:       subtotal + c.deliveryFee,
	}
}
