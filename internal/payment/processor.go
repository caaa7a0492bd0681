package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a settlement attempt. Approved is the only outcome
// the simulated processor produces today; DeclineReason exists so a real
// gateway integration can report declines without reshaping the checkout flow.
type Result struct {
	Approved      bool
	Reference     string
	DeclineReason string
}

// Processor settles a payment for the given amount. Process blocks until the
// settlement completes or ctx is cancelled.
type Processor interface {
	Process(ctx context.Context, amount int64) (Result, error)
}

// SimulatedProcessor approves every settlement after a fixed delay. It stands
// in for a payment gateway during demos and tests.
type SimulatedProcessor struct {
	Delay time.Duration
}

// NewSimulatedProcessor creates a processor that settles after delay.
func NewSimulatedProcessor(delay time.Duration) *SimulatedProcessor {
	return &SimulatedProcessor{Delay: delay}
}

// Process waits out the configured delay, then approves.
func (p *SimulatedProcessor) Process(ctx context.Context, amount int64) (Result, error) {
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.C:
	}

	return Result{
		Approved:  true,
		Reference: uuid.NewString(),
	}, nil
}
