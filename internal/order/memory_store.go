package order

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MemoryStore implements Store with in-memory storage.
type MemoryStore struct {
	mu       sync.RWMutex
	orders   map[string]*Order
	sequence []string // order ids, placement order

	assigner RiderAssigner
	now      func() time.Time
	logger   *zap.Logger
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithRiderAssigner overrides the rider assigner.
func WithRiderAssigner(a RiderAssigner) MemoryStoreOption {
	return func(s *MemoryStore) { s.assigner = a }
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) { s.now = now }
}

// WithLogger sets the store logger.
func WithLogger(logger *zap.Logger) MemoryStoreOption {
	return func(s *MemoryStore) { s.logger = logger }
}

// NewMemoryStore creates a new in-memory order store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		orders:   make(map[string]*Order),
		assigner: StaticAssigner{Rider: DefaultRider()},
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Place creates a new order from the draft, in StatusPlaced.
func (s *MemoryStore) Place(draft Draft) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := &Order{
		ID:                newOrderID(),
		RestaurantID:      draft.RestaurantID,
		RestaurantName:    draft.RestaurantName,
		RestaurantImage:   draft.RestaurantImage,
		Items:             append([]Item(nil), draft.Items...),
		TotalAmount:       draft.TotalAmount,
		AddressID:         draft.AddressID,
		PaymentMethodID:   draft.PaymentMethodID,
		PaymentReference:  draft.PaymentReference,
		Note:              draft.Note,
		Status:            StatusPlaced,
		PlacedAt:          s.now(),
		EstimatedDelivery: "15-30 phút",
	}

	s.orders[o.ID] = o
	s.sequence = append(s.sequence, o.ID)

	s.logger.Info("order placed",
		zap.String("order_id", o.ID),
		zap.String("restaurant", o.RestaurantName),
		zap.Int64("total", o.TotalAmount))
	return snapshot(o), nil
}

// Get returns a copy of the order with the given id.
func (s *MemoryStore) Get(id string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return snapshot(o), nil
}

// List returns all orders in placement order.
func (s *MemoryStore) List() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(*Order) bool { return true })
}

// Active returns orders that are still in flight.
func (s *MemoryStore) Active() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(o *Order) bool { return !o.Status.IsTerminal() })
}

// Past returns delivered orders.
func (s *MemoryStore) Past() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(o *Order) bool { return o.Status.IsTerminal() })
}

func (s *MemoryStore) collect(keep func(*Order) bool) []*Order {
	out := make([]*Order, 0, len(s.sequence))
	for _, id := range s.sequence {
		if o := s.orders[id]; keep(o) {
			out = append(out, snapshot(o))
		}
	}
	return out
}

// Advance moves the order one status forward. The rider is attached the
// moment the order first reaches ON_THE_WAY and stays attached afterwards.
// Advancing a delivered order returns the current status unchanged.
func (s *MemoryStore) Advance(id string) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return "", ErrOrderNotFound
	}

	next, ok := o.Status.Next()
	if !ok {
		return o.Status, nil
	}

	o.Status = next
	if next == StatusOnTheWay && o.Rider == nil {
		rider := s.assigner.Assign(o)
		o.Rider = &rider
	}

	s.logger.Info("order status advanced",
		zap.String("order_id", o.ID),
		zap.String("status", o.Status.String()))
	return o.Status, nil
}

func snapshot(o *Order) *Order {
	cp := *o
	cp.Items = append([]Item(nil), o.Items...)
	if o.Rider != nil {
		r := *o.Rider
		cp.Rider = &r
	}
	return &cp
}

// newOrderID builds a short "BK"-prefixed id, e.g. BK3F9A2C.
func newOrderID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("BK%s", raw[:6])
}
