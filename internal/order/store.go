package order

import "errors"

// Common errors returned by the store
var (
	ErrOrderNotFound = errors.New("order not found")
)

// Store defines the interface for order storage operations
type Store interface {
	// Place creates a new order from the draft in StatusPlaced and returns it
	Place(draft Draft) (*Order, error)

	// Get returns the order with the given id
	Get(id string) (*Order, error)

	// List returns all orders, oldest first
	List() []*Order

	// Active returns orders that have not yet been delivered
	Active() []*Order

	// Past returns delivered orders
	Past() []*Order

	// Advance moves the order one status forward and returns the new status.
	// Advancing a delivered order is a no-op, not an error.
	Advance(id string) (Status, error)
}
