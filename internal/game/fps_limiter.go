package game

import (
	"context"
	"time"
)

// spinWindow is how far ahead of the deadline sleeping stops and spinning
// starts.
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces frames against a running deadline.
type FPSLimiter struct {
	frame time.Duration
	next  time.Time
}

// NewFPSLimiter creates a limiter for limit frames per second. A limit of 0
// or less disables pacing.
func NewFPSLimiter(limit int) *FPSLimiter {
	f := &FPSLimiter{}
	if limit > 0 {
		f.frame = time.Second / time.Duration(limit)
	}
	return f
}

// Wait blocks until the next frame is due or ctx is done.
func (f *FPSLimiter) Wait(ctx context.Context) error {
	if f.frame <= 0 {
		return ctx.Err()
	}

	now := time.Now()
	if f.next.IsZero() || now.Sub(f.next) > f.frame {
		// first frame or a hitch: restart the schedule from now
		f.next = now.Add(f.frame)
	} else {
		f.next = f.next.Add(f.frame)
	}

	if coarse := time.Until(f.next) - spinWindow; coarse > 0 {
		t := time.NewTimer(coarse)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	for time.Now().Before(f.next) {
	}
	return nil
}
