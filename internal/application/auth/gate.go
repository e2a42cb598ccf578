// Package auth decides whether a caller may use the admin console.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/mohammadpnp/admin-console/internal/domain/user"
)

const DefaultSessionTTL = 60 * time.Second

type Decision int

const (
	DecisionDenied Decision = iota
	DecisionGranted
)

type adminFlagReader interface {
	AdminFlag(ctx context.Context, userID string) (bool, error)
}

type cacheEntry struct {
	verified bool
	at       time.Time
}

// Gate checks the per-user admin flag, caching positive results for the
// configured TTL so navigation between screens does not hammer the user
// store. The cache is only ever populated from a positive check; a denial is
// re-verified on every attempt. Concurrent checks for the same user are
// coalesced into one lookup.
type Gate struct {
	store adminFlagReader
	ttl   time.Duration
	log   *zap.Logger
	now   func() time.Time

	flight singleflight.Group

	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewGate(store adminFlagReader, ttl time.Duration, log *zap.Logger) *Gate {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Gate{
		store:   store,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Authorize returns Granted only for a user whose admin flag is set. A
// missing user id is an immediate denial with no lookup. A valid cached
// positive result short-circuits the store read; it never grants access that
// a real check did not establish.
func (g *Gate) Authorize(ctx context.Context, userID string) (Decision, error) {
	if userID == "" {
		return DecisionDenied, nil
	}

	if g.cachedPositive(userID) {
		return DecisionGranted, nil
	}

	v, err, _ := g.flight.Do(userID, func() (any, error) {
		isAdmin, err := g.store.AdminFlag(ctx, userID)
		if err != nil {
			return false, err
		}
		if isAdmin {
			g.put(userID)
		}
		return isAdmin, nil
	})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			g.log.Warn("authorization check for unknown user", zap.String("user_id", userID))
			return DecisionDenied, nil
		}
		return DecisionDenied, fmt.Errorf("read admin flag: %w", err)
	}

	if v.(bool) {
		return DecisionGranted, nil
	}
	return DecisionDenied, nil
}

// Invalidate drops the cached result for one user, e.g. on logout.
func (g *Gate) Invalidate(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, userID)
}

// Clear drops every cached result.
func (g *Gate) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries = make(map[string]cacheEntry)
}

func (g *Gate) cachedPositive(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.entries[userID]
	if !ok {
		return false
	}
	if !entry.verified || g.now().Sub(entry.at) >= g.ttl {
		delete(g.entries, userID)
		return false
	}
	return true
}

func (g *Gate) put(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	// Whole-entry replacement; readers never see a partially updated entry.
	g.entries[userID] = cacheEntry{verified: true, at: g.now()}
}
