package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// KeyedLimiter enforces a minimum delay between calls that share a key,
// such as requests to the same model. Different keys never block each other.
type KeyedLimiter struct {
	mu       sync.Mutex
	next     map[string]time.Time // key: earliest time the next call may start
	minDelay time.Duration
}

// NewKeyedLimiter creates a limiter that spaces calls with the same key at
// least minDelay apart. A zero delay lets every call through.
func NewKeyedLimiter(minDelay time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		next:     make(map[string]time.Time),
		minDelay: minDelay,
	}
}

// Wait blocks until the key's slot opens. Concurrent callers on one key are
// queued in arrival order, each reserving the slot after the previous one.
// Returns an error if the context is cancelled while waiting.
func (l *KeyedLimiter) Wait(ctx context.Context, key string) error {
	if l.minDelay <= 0 {
		return ctx.Err()
	}

	l.mu.Lock()
	now := time.Now()
	slot := l.next[key]
	if slot.Before(now) {
		slot = now
	}
	l.next[key] = slot.Add(l.minDelay)
	l.mu.Unlock()

	wait := slot.Sub(now)
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limiter wait for %s: %w", key, ctx.Err())
	case <-timer.C:
		return nil
	}
}
