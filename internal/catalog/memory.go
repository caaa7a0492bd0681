package catalog

import "sync"

// MemoryRepository implements Repository over in-memory data.
type MemoryRepository struct {
	mu          sync.RWMutex
	restaurants []Restaurant
	dishes      map[string][]Dish // restaurantID -> menu
}

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{dishes: make(map[string][]Dish)}
}

// NewDemoRepository creates a repository seeded with the demo data set.
func NewDemoRepository() *MemoryRepository {
	r := NewMemoryRepository()
	for _, rest := range demoRestaurants {
		r.AddRestaurant(rest)
	}
	for _, d := range demoDishes {
		r.AddDish(d)
	}
	return r
}

// AddRestaurant appends a restaurant to the listing.
func (r *MemoryRepository) AddRestaurant(rest Restaurant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restaurants = append(r.restaurants, rest)
}

// AddDish appends a dish to its restaurant's menu.
func (r *MemoryRepository) AddDish(d Dish) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dishes[d.RestaurantID] = append(r.dishes[d.RestaurantID], d)
}

// ListRestaurants returns every restaurant in listing order.
func (r *MemoryRepository) ListRestaurants() []Restaurant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Restaurant(nil), r.restaurants...)
}

// GetRestaurant returns the restaurant with the given id.
func (r *MemoryRepository) GetRestaurant(id string) (Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getLocked(id)
}

// ListDishes returns the menu of the given restaurant.
func (r *MemoryRepository) ListDishes(restaurantID string) ([]Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, err := r.getLocked(restaurantID); err != nil {
		return nil, err
	}
	return append([]Dish(nil), r.dishes[restaurantID]...), nil
}

// PopularDishes returns the dishes flagged as popular.
func (r *MemoryRepository) PopularDishes(restaurantID string) ([]Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, err := r.getLocked(restaurantID); err != nil {
		return nil, err
	}
	var out []Dish
	for _, d := range r.dishes[restaurantID] {
		if d.IsPopular {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *MemoryRepository) getLocked(id string) (Restaurant, error) {
	for _, rest := range r.restaurants {
		if rest.ID == id {
			return rest, nil
		}
	}
	return Restaurant{}, ErrRestaurantNotFound
}
