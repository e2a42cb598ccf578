// Package payout keeps a fresh snapshot of the pending payout queue.
package payout

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mohammadpnp/admin-console/pkg/dto"
)

type queueFetcher interface {
	ListPayouts(ctx context.Context, token, status string) ([]dto.Payout, error)
}

// Poller refreshes the pending payout queue on a fixed interval. Polling is
// suspended while a mutating action (approve/reject/complete) is in flight
// and stops when the owning context is cancelled.
type Poller struct {
	api      queueFetcher
	token    string
	interval time.Duration
	log      *zap.Logger

	mu        sync.Mutex
	holds     int
	snapshot  []dto.Payout
	updatedAt time.Time
}

func NewPoller(api queueFetcher, token string, interval time.Duration, log *zap.Logger) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{
		api:      api,
		token:    token,
		interval: interval,
		log:      log,
	}
}

// Start launches the refresh loop and returns immediately. Cancelling ctx
// tears the loop down.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		p.Refresh(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				p.log.Info("payout poller stopped")
				return
			case <-ticker.C:
				if p.held() {
					continue
				}
				p.Refresh(ctx)
			}
		}
	}()
}

// Hold suspends polling while a payout mutation is outstanding. Call Release
// when the mutation finishes.
func (p *Poller) Hold() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.holds++
}

func (p *Poller) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.holds > 0 {
		p.holds--
	}
}

// Refresh fetches the queue once and replaces the snapshot. Fetch failures
// keep the previous snapshot; the next tick retries.
func (p *Poller) Refresh(ctx context.Context) {
	payouts, err := p.api.ListPayouts(ctx, p.token, "pending")
	if err != nil {
		p.log.Warn("payout queue refresh failed", zap.Error(err))
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshot = payouts
	p.updatedAt = time.Now()
}

// Snapshot returns the most recent queue along with when it was fetched.
func (p *Poller) Snapshot() ([]dto.Payout, time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]dto.Payout, len(p.snapshot))
	copy(out, p.snapshot)
	return out, p.updatedAt
}

func (p *Poller) held() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.holds > 0
}
