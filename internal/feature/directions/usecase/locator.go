// Package usecase implements route lookup with layered rendering fallbacks.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"parksarthi_backend/internal/shared/geo"
)

// Locator resolves the caller's approximate current coordinate.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Locator interface {
	Locate(ctx context.Context) (geo.Coordinate, error)
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(ctx context.Context) (geo.Coordinate, error)

func (f LocatorFunc) Locate(ctx context.Context) (geo.Coordinate, error) { return f(ctx) }

// FixedLocator always reports the same coordinate. It backs the chain when no
// better position source is available.
type FixedLocator struct {
	Coordinate geo.Coordinate
}

// NewFixedLocator creates a FixedLocator pinned to the city center.
func NewFixedLocator() *FixedLocator {
	return &FixedLocator{Coordinate: geo.IndoreCenter}
}

func (l *FixedLocator) Locate(ctx context.Context) (geo.Coordinate, error) {
	return l.Coordinate, nil
}

// TimeoutLocator bounds an inner locator with a deadline and degrades to a
// fixed fallback coordinate on error or timeout.
type TimeoutLocator struct {
	inner    Locator
	timeout  time.Duration
	fallback geo.Coordinate
}

// NewTimeoutLocator decorates inner with the given deadline. If timeout is 0,
// it defaults to 5 seconds.
func NewTimeoutLocator(inner Locator, timeout time.Duration, fallback geo.Coordinate) *TimeoutLocator {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TimeoutLocator{inner: inner, timeout: timeout, fallback: fallback}
}

// Locate asks the inner locator for a position, falling back when it errors
// or misses the deadline. The fallback path never returns an error.
func (l *TimeoutLocator) Locate(ctx context.Context) (geo.Coordinate, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	type result struct {
		coord geo.Coordinate
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		c, err := l.inner.Locate(ctx)
		ch <- result{c, err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			slog.Warn("locator failed, using fallback", "error", res.err)
			return l.fallback, nil
		}
		return res.coord, nil
	case <-ctx.Done():
		slog.Warn("locator timed out, using fallback")
		return l.fallback, nil
	}
}
