package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"arakucamp/models"
	"arakucamp/utils"

	"go.uber.org/zap"
)

// ErrAlreadyPolling means a settlement poll for the order is already running,
// typically from a second browser tab.
var ErrAlreadyPolling = errors.New("settlement poll already in progress for this order")

const (
	defaultPollInterval = time.Second
	defaultPollAttempts = 30
)

// StatusPoller watches a checkout order until it settles. Each attempt first
// consults the booking record, then asks the gateway directly; a captured
// payment the callback never reported gets settled from here.
type StatusPoller struct {
	state    func(orderID string) (models.PaymentState, error)
	paid     func(orderID string) (bool, error)
	settle   func(orderID string) error
	interval time.Duration
	attempts int

	mu     sync.Mutex
	active map[string]bool
}

func NewStatusPoller(
	state func(orderID string) (models.PaymentState, error),
	paid func(orderID string) (bool, error),
	settle func(orderID string) error,
) *StatusPoller {
	return &StatusPoller{
		state:    state,
		paid:     paid,
		settle:   settle,
		interval: defaultPollInterval,
		attempts: defaultPollAttempts,
		active:   make(map[string]bool),
	}
}

func (p *StatusPoller) WithInterval(interval time.Duration) *StatusPoller {
	if interval > 0 {
		p.interval = interval
	}
	return p
}

func (p *StatusPoller) WithAttempts(attempts int) *StatusPoller {
	if attempts > 0 {
		p.attempts = attempts
	}
	return p
}

// Active reports whether a poll for the order is currently running.
func (p *StatusPoller) Active(orderID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active[orderID]
}

// Await blocks until the order settles, the attempt budget runs out, or the
// context is cancelled. Only one poll per order runs at a time; a concurrent
// call fails fast with ErrAlreadyPolling instead of doubling the load.
func (p *StatusPoller) Await(ctx context.Context, orderID string) (bool, error) {
	if !p.acquire(orderID) {
		return false, ErrAlreadyPolling
	}
	defer p.release(orderID)

	logger := utils.GetLogger()
	for attempt := 1; attempt <= p.attempts; attempt++ {
		state, err := p.state(orderID)
		if err == nil && state.Settled() {
			return true, nil
		}

		captured, err := p.paid(orderID)
		if err != nil {
			logger.Warn("gateway payment lookup failed",
				zap.String("razorpayOrderId", orderID),
				zap.Int("attempt", attempt),
				zap.Error(err))
		} else if captured {
			if err := p.settle(orderID); err != nil {
				return false, err
			}
			logger.Info("payment captured, settled via poll",
				zap.String("razorpayOrderId", orderID),
				zap.Int("attempt", attempt))
			return true, nil
		}

		if attempt == p.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(p.interval):
		}
	}

	logger.Warn("settlement poll exhausted",
		zap.String("razorpayOrderId", orderID),
		zap.Int("attempts", p.attempts))
	return false, nil
}

func (p *StatusPoller) acquire(orderID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active[orderID] {
		return false
	}
	p.active[orderID] = true
	return true
}

func (p *StatusPoller) release(orderID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, orderID)
}
