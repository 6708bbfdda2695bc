// ABOUTME: Client-side rate limiter enforcing a minimum delay between backend calls
// ABOUTME: Adds small random jitter on top of the fixed minimum spacing

package ratelimit

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter spaces out calls to an external API. Every Wait blocks until at
// least the configured minimum delay has passed since the previous call,
// plus a random jitter in [0, maxJitter). Safe for concurrent use.
type Limiter struct {
	limiter   *rate.Limiter
	maxJitter time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Limiter with the given minimum inter-call delay.
func New(minDelay, maxJitter time.Duration) *Limiter {
	if minDelay <= 0 {
		minDelay = time.Nanosecond
	}
	return &Limiter{
		limiter:   rate.NewLimiter(rate.Every(minDelay), 1),
		maxJitter: maxJitter,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Wait blocks until the next call is permitted or the context is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return err
	}

	jitter := l.jitter()
	if jitter <= 0 {
		return nil
	}

	timer := time.NewTimer(jitter)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Limiter) jitter() time.Duration {
	if l.maxJitter <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return time.Duration(l.rng.Int63n(int64(l.maxJitter)))
}
