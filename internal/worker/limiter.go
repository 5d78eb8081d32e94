package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles how many transcripts a batch starts per second
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter allowing perSecond transcripts with the given
// burst. A non-positive rate disables throttling.
func NewLimiter(perSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}

	return &Limiter{limiter: rate.NewLimiter(limit, burst)}
}

// Wait blocks until the next transcript may start
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return ctx.Err()
	}
	return l.limiter.Wait(ctx)
}

// Unlimited reports whether the limiter never blocks
func (l *Limiter) Unlimited() bool {
	return l == nil || l.limiter.Limit() == rate.Inf
}
