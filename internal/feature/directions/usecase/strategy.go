package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"
)

// View is the rendering payload handed back to the client. Mode tells it
// which presentation the chain settled on.
type View struct {
	Mode     string `json:"mode"` // interactive, embed, static
	EmbedURL string `json:"embed_url,omitempty"`
	Geometry string `json:"geometry,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// RenderStrategy produces a View for a resolved route. Strategies are tried
// in order with a bounded per-strategy deadline; the terminal strategy must
// never fail.
type RenderStrategy interface {
	Name() string
	Timeout() time.Duration
	Render(ctx context.Context, route *Route) (*View, error)
}

// Chain tries an ordered list of strategies and returns the first View
// produced. The last strategy is expected to be infallible, so Render only
// errors when the chain was built empty.
type Chain struct {
	strategies []RenderStrategy
}

// NewChain creates a Chain over the given strategies, in priority order.
func NewChain(strategies ...RenderStrategy) *Chain {
	return &Chain{strategies: strategies}
}

// Render walks the chain. Each strategy gets its own deadline; failures are
// logged and the next strategy takes over.
func (c *Chain) Render(ctx context.Context, route *Route) (*View, error) {
	for _, s := range c.strategies {
		sctx, cancel := context.WithTimeout(ctx, s.Timeout())
		view, err := s.Render(sctx, route)
		cancel()
		if err != nil {
			slog.Warn("render strategy failed, degrading", "strategy", s.Name(), "error", err)
			continue
		}
		return view, nil
	}
	return nil, errors.New("no render strategy available")
}

// InteractiveStrategy renders the full SDK map. It needs a provider-resolved
// route geometry and a configured map key.
type InteractiveStrategy struct {
	MapKey string
}

func (s *InteractiveStrategy) Name() string           { return "interactive" }
func (s *InteractiveStrategy) Timeout() time.Duration { return 10 * time.Second }

func (s *InteractiveStrategy) Render(ctx context.Context, route *Route) (*View, error) {
	if s.MapKey == "" {
		return nil, errors.New("map key not configured")
	}
	if route.Geometry == "" {
		return nil, errors.New("no route geometry")
	}
	return &View{Mode: "interactive", Geometry: route.Geometry}, nil
}

// EmbedStrategy renders an embedded map frame pointed at the destination.
type EmbedStrategy struct {
	MapKey string
}

func (s *EmbedStrategy) Name() string           { return "embed" }
func (s *EmbedStrategy) Timeout() time.Duration { return 5 * time.Second }

func (s *EmbedStrategy) Render(ctx context.Context, route *Route) (*View, error) {
	if s.MapKey == "" {
		return nil, errors.New("map key not configured")
	}
	q := url.Values{}
	q.Set("marker", fmt.Sprintf("%f,%f", route.Destination.Lat, route.Destination.Lng))
	return &View{
		Mode:     "embed",
		EmbedURL: fmt.Sprintf("https://maps.mappls.com/embed/%s/map?%s", s.MapKey, q.Encode()),
	}, nil
}

// StaticStrategy is the terminal fallback: a text summary panel built from
// straight-line figures. It cannot fail.
type StaticStrategy struct{}

func (s *StaticStrategy) Name() string           { return "static" }
func (s *StaticStrategy) Timeout() time.Duration { return time.Second }

func (s *StaticStrategy) Render(ctx context.Context, route *Route) (*View, error) {
	return &View{
		Mode: "static",
		Summary: fmt.Sprintf("%.1f km away, about %d min by road",
			route.DistanceKm, int(route.Duration/time.Minute)),
	}, nil
}

// Compile-time checks that every strategy implements RenderStrategy.
var (
	_ RenderStrategy = (*InteractiveStrategy)(nil)
	_ RenderStrategy = (*EmbedStrategy)(nil)
	_ RenderStrategy = (*StaticStrategy)(nil)
)
