package order

import "time"

// Item is one line of a placed order, copied from the cart at checkout time.
type Item struct {
	ID        string
	Name      string
	UnitPrice int64 // VND, minor units
	Quantity  int
	Options   []string
}

// Rider is the delivery person assigned once the order leaves the restaurant.
type Rider struct {
	Name   string
	Phone  string
	Avatar string
}

// Order is one placed order. Status only moves forward; once delivered the
// order is immutable history.
type Order struct {
	ID                string
	RestaurantID      string
	RestaurantName    string
	RestaurantImage   string
	Items             []Item
	TotalAmount       int64
	AddressID         string
	PaymentMethodID   string
	PaymentReference  string
	Note              string
	Status            Status
	PlacedAt          time.Time
	EstimatedDelivery string
	Rider             *Rider // set when status first reaches ON_THE_WAY
}

// Draft carries everything needed to place an order, assembled by the
// checkout flow from the session and cart at the moment settlement succeeds.
type Draft struct {
	RestaurantID     string
	RestaurantName   string
	RestaurantImage  string
	Items            []Item
	TotalAmount      int64
	AddressID        string
	PaymentMethodID  string
	PaymentReference string
	Note             string
}

// RiderAssigner picks the rider for an order when it goes out for delivery.
type RiderAssigner interface {
	Assign(o *Order) Rider
}

// StaticAssigner always assigns the same rider. Demo stand-in for a dispatch
// system.
type StaticAssigner struct {
	Rider Rider
}

// Assign returns the configured rider.
func (a StaticAssigner) Assign(*Order) Rider {
	return a.Rider
}

// DefaultRider is the demo rider from the sample data.
func DefaultRider() Rider {
	return Rider{
		Name:   "Nguyễn Văn A",
		Phone:  "0912345678",
		Avatar: "https://randomuser.me/api/portraits/men/32.jpg",
	}
}
