package order

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Tracker drives one order through its lifecycle on a fixed interval, the way
// the orders screen polls for progress. It owns the timer so the store itself
// stays free of any timing assumption; a backend event feed could call
// Store.Advance directly instead.
type Tracker struct {
	store    Store
	orderID  string
	interval time.Duration
	logger   *zap.Logger

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewTracker starts tracking the given order, advancing it every interval
// until it is delivered.
func NewTracker(store Store, orderID string, interval time.Duration, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Tracker{
		store:    store,
		orderID:  orderID,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
	}

	t.wg.Add(1)
	go t.loop()
	return t
}

func (t *Tracker) loop() {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			status, err := t.store.Advance(t.orderID)
			if err != nil {
				t.logger.Warn("tracker advance failed",
					zap.String("order_id", t.orderID),
					zap.Error(err))
				return
			}
			if status.IsTerminal() {
				return
			}
		case <-t.stop:
			return
		}
	}
}

// Close stops the tracker and waits for its loop to finish. Safe to call
// more than once; a tracker whose order was already delivered closes
// immediately.
func (t *Tracker) Close() {
	t.stopOnce.Do(func() { close(t.stop) })
	t.wg.Wait()
}
