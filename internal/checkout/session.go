package checkout

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/jot2003/bktable4u/internal/cart"
	"github.com/jot2003/bktable4u/internal/order"
	"github.com/jot2003/bktable4u/internal/payment"
)

// Params wires a checkout session to its collaborators. Cart, Processor and
// Orders are required.
type Params struct {
	Cart            *cart.Cart
	RestaurantID    string
	RestaurantName  string
	RestaurantImage string
	Processor       payment.Processor
	Orders          order.Store
	Logger          *zap.Logger
}

// Session is one checkout attempt: Address -> Payment -> Success, with one
// asynchronous settlement between the last two steps. A session never
// outlives its attempt; cancelling or discarding it leaves the cart intact
// and places no order. Entering Success places exactly one order and clears
// the cart.
//
// All methods are safe for concurrent use. The settlement completion runs on
// its own goroutine and is suppressed if the session was discarded in the
// meantime.
type Session struct {
	mu sync.Mutex

	step            Step
	addressID       string
	paymentMethodID string
	note            string
	totalAmount     int64

	processing bool
	closed     bool
	generation uint64
	cancelFn   context.CancelFunc

	orderID string
	lastErr error

	cart            *cart.Cart
	restaurantID    string
	restaurantName  string
	restaurantImage string
	processor       payment.Processor
	orders          order.Store
	logger          *zap.Logger
}

// NewSession opens a checkout attempt for the current cart contents. The
// total is captured up front: it is what the cart screen showed when the
// user tapped checkout.
func NewSession(p Params) *Session {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		step:            StepAddress,
		totalAmount:     p.Cart.Totals().Total,
		cart:            p.Cart,
		restaurantID:    p.RestaurantID,
		restaurantName:  p.RestaurantName,
		restaurantImage: p.RestaurantImage,
		processor:       p.Processor,
		orders:          p.Orders,
		logger:          logger,
	}
}

// SelectAddress sets the delivery address for this attempt.
func (s *Session) SelectAddress(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutableLocked(); err != nil {
		return err
	}
	s.addressID = id
	return nil
}

// SelectPayment sets the payment method for this attempt.
func (s *Session) SelectPayment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutableLocked(); err != nil {
		return err
	}
	s.paymentMethodID = id
	return nil
}

// SetNote sets the note passed along to the restaurant.
func (s *Session) SetNote(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutableLocked(); err != nil {
		return err
	}
	s.note = text
	return nil
}

func (s *Session) mutableLocked() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.processing {
		return ErrProcessing
	}
	if s.step.IsTerminal() {
		return ErrTerminalStep
	}
	return nil
}

// ConfirmStep advances the flow. At the address step it validates the
// selection and moves to payment. At the payment step it starts the
// settlement: the session reports IsProcessing until the processor answers,
// then enters Success and places the order. A rejected confirmation leaves
// the step unchanged.
func (s *Session) ConfirmStep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mutableLocked(); err != nil {
		return err
	}

	switch s.step {
	case StepAddress:
		if s.addressID == "" {
			return ErrNoAddressSelected
		}
		s.step = StepPayment
		s.logger.Debug("checkout step confirmed", zap.String("step", s.step.String()))
		return nil

	case StepPayment:
		if s.paymentMethodID == "" {
			return ErrNoPaymentSelected
		}
		s.processing = true
		s.lastErr = nil
		s.generation++

		ctx, cancel := context.WithCancel(context.Background())
		s.cancelFn = cancel
		go s.settle(ctx, s.generation)

		s.logger.Info("settlement started",
			zap.String("payment_method", s.paymentMethodID),
			zap.Int64("amount", s.totalAmount))
		return nil

	default:
		return ErrTerminalStep
	}
}

// settle runs off the caller's goroutine. Its completion is applied only if
// this session is still current: a settlement that outlives its session is
// dropped, never applied.
func (s *Session) settle(ctx context.Context, generation uint64) {
	result, err := s.processor.Process(ctx, s.totalAmount)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || generation != s.generation {
		s.logger.Debug("stale settlement dropped", zap.Uint64("generation", generation))
		return
	}

	s.processing = false
	s.cancelFn = nil

	if err != nil {
		s.lastErr = err
		s.logger.Warn("settlement failed", zap.Error(err))
		return
	}
	if !result.Approved {
		s.lastErr = ErrPaymentDeclined
		s.logger.Warn("settlement declined", zap.String("reason", result.DeclineReason))
		return
	}

	items := make([]order.Item, 0, s.cart.Len())
	for _, line := range s.cart.Lines() {
		items = append(items, order.Item{
			ID:        line.ID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Options:   append([]string(nil), line.Options...),
		})
	}

	placed, err := s.orders.Place(order.Draft{
		RestaurantID:     s.restaurantID,
		RestaurantName:   s.restaurantName,
		RestaurantImage:  s.restaurantImage,
		Items:            items,
		TotalAmount:      s.totalAmount,
		AddressID:        s.addressID,
		PaymentMethodID:  s.paymentMethodID,
		PaymentReference: result.Reference,
		Note:             s.note,
	})
	if err != nil {
		s.lastErr = err
		s.logger.Error("placing order failed", zap.Error(err))
		return
	}

	s.orderID = placed.ID
	s.cart.Clear()
	s.step = StepSuccess
	s.logger.Info("checkout succeeded", zap.String("order_id", placed.ID))
}

// Cancel abandons the attempt at the user's request. Rejected while the
// settlement is in flight; otherwise the session is discarded with no order
// placed and the cart untouched.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.processing {
		return ErrProcessing
	}
	if s.step.IsTerminal() {
		return ErrTerminalStep
	}

	s.closed = true
	s.logger.Debug("checkout cancelled", zap.String("step", s.step.String()))
	return nil
}

// Discard tears the session down unconditionally, e.g. when the screen
// owning it unmounts. A settlement still in flight is cancelled and its
// completion suppressed; no order is placed from a discarded session.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.processing = false
	if s.cancelFn != nil {
		s.cancelFn()
		s.cancelFn = nil
	}
	s.logger.Debug("checkout discarded", zap.String("step", s.step.String()))
}

// Step returns the current step.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// IsProcessing reports whether a settlement is in flight.
func (s *Session) IsProcessing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processing
}

// OrderID returns the placed order's id, empty until the flow succeeds.
func (s *Session) OrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderID
}

// TotalAmount returns the amount captured when the session was opened.
func (s *Session) TotalAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalAmount
}

// Note returns the note for the restaurant.
func (s *Session) Note() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.note
}

// LastError returns the most recent settlement failure, nil after a clean
// run. Cleared when a new settlement starts.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
