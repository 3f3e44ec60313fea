// Package pacer spaces out calls to a rate limited platform API.
package pacer

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_pacer.go github.com/KirkDiggler/squadup/internal/common/pacer Pacer

// Pacer runs work no faster than its configured rate
type Pacer interface {
	// Do waits for a slot and then runs fn. It returns ctx.Err() if the
	// context ends before a slot frees up.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds configuration for a token bucket pacer
type Config struct {
	// Interval is the minimum spacing between calls. Zero disables pacing.
	Interval time.Duration

	// Burst is how many calls may run back to back before spacing applies.
	// Defaults to 1.
	Burst int
}

// Limiter is a token bucket Pacer. Callers queue on the bucket in arrival order.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a new Limiter
func New(cfg *Config) *Limiter {
	limit := rate.Inf
	burst := 1
	if cfg != nil {
		if cfg.Interval > 0 {
			limit = rate.Every(cfg.Interval)
		}
		if cfg.Burst > 0 {
			burst = cfg.Burst
		}
	}

	return &Limiter{
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Do waits for a token and runs fn
func (l *Limiter) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := l.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return fn(ctx)
}
