package catalog

import "errors"

// Common errors returned by the repository
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// Restaurant is one listing on the discovery screen.
type Restaurant struct {
	ID           string
	Name         string
	Rating       float64
	ReviewCount  int
	Address      string
	DistanceKm   string
	OpeningHours string
	PriceRange   string
	ImageURL     string
	IsBusy       bool
}

// Dish is one menu entry of a restaurant. Price is in VND minor units.
type Dish struct {
	ID           string
	RestaurantID string
	Name         string
	Price        int64
	Description  string
	ImageURL     string
	IsPopular    bool
}

// Repository serves the restaurant and menu reference data the screens
// render. The in-memory implementation carries the demo data set; a real
// backend client would satisfy the same interface.
type Repository interface {
	// ListRestaurants returns every restaurant, in listing order
	ListRestaurants() []Restaurant

	// GetRestaurant returns the restaurant with the given id
	GetRestaurant(id string) (Restaurant, error)

	// ListDishes returns the menu of the given restaurant
	ListDishes(restaurantID string) ([]Dish, error)

	// PopularDishes returns the dishes flagged as popular
	PopularDishes(restaurantID string) ([]Dish, error)
}
