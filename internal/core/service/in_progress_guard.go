package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"stoik.com/outreach/internal/core/port"
)

const (
	DefaultAttemptTTL = 5 * time.Minute

	inProgressKeyPrefix  = "gmail_connection_in_progress:"
	attemptTimeKeyPrefix = "gmail_connection_attempt_time:"
)

// InProgressGuard marks a client session as having an authorization
// redirect in flight. The marker is last-write-wins and not atomic; two
// racing tabs may both acquire it.
type InProgressGuard struct {
	store   port.KeyValueStore
	session string
	ttl     time.Duration
	now     func() time.Time
}

func NewInProgressGuard(store port.KeyValueStore, session string, ttl time.Duration, now func() time.Time) *InProgressGuard {
	if ttl <= 0 {
		ttl = DefaultAttemptTTL
	}
	if now == nil {
		now = time.Now
	}
	return &InProgressGuard{
		store:   store,
		session: session,
		ttl:     ttl,
		now:     now,
	}
}

// TryAcquire sets a fresh marker unless a non-stale one already exists.
func (g *InProgressGuard) TryAcquire(ctx context.Context) (bool, error) {
	held, err := g.held(ctx)
	if err != nil {
		return false, err
	}
	if held {
		stale, err := g.IsStale(ctx, g.ttl)
		if err != nil {
			return false, err
		}
		if !stale {
			return false, nil
		}
		log.WithField("session", g.session).Info("Ignoring abandoned connection attempt")
	}

	now := g.now()
	// Store expiry is a backstop; staleness is decided from the timestamp.
	if err := g.store.Set(ctx, attemptTimeKeyPrefix+g.session, now.UTC().Format(time.RFC3339Nano), 2*g.ttl); err != nil {
		return false, fmt.Errorf("failed to record connection attempt time: %w", err)
	}
	if err := g.store.Set(ctx, inProgressKeyPrefix+g.session, "true", 2*g.ttl); err != nil {
		return false, fmt.Errorf("failed to record connection attempt: %w", err)
	}
	return true, nil
}

func (g *InProgressGuard) Release(ctx context.Context) error {
	if err := g.store.Delete(ctx, inProgressKeyPrefix+g.session, attemptTimeKeyPrefix+g.session); err != nil {
		return fmt.Errorf("failed to clear connection attempt: %w", err)
	}
	return nil
}

// IsStale reports whether the current marker is older than ttl. A marker
// without a readable timestamp counts as stale, as does no marker at all.
func (g *InProgressGuard) IsStale(ctx context.Context, ttl time.Duration) (bool, error) {
	raw, ok, err := g.store.Get(ctx, attemptTimeKeyPrefix+g.session)
	if err != nil {
		return false, fmt.Errorf("failed to read connection attempt time: %w", err)
	}
	if !ok {
		return true, nil
	}
	startedAt, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return true, nil
	}
	return g.now().Sub(startedAt) > ttl, nil
}

func (g *InProgressGuard) held(ctx context.Context) (bool, error) {
	value, ok, err := g.store.Get(ctx, inProgressKeyPrefix+g.session)
	if err != nil {
		return false, fmt.Errorf("failed to read connection attempt: %w", err)
	}
	return ok && value == "true", nil
}

// GuardFactory builds the guard for a client session.
type GuardFactory func(session string) *InProgressGuard

func NewGuardFactory(store port.KeyValueStore, ttl time.Duration, now func() time.Time) GuardFactory {
	return func(session string) *InProgressGuard {
		return NewInProgressGuard(store, session, ttl, now)
	}
}
