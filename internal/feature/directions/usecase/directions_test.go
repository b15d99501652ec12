package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"parksarthi_backend/internal/shared/geo"
)

// mockRouteProvider is a mock implementation of the RouteProvider interface.
type mockRouteProvider struct {
	RouteFunc func(ctx context.Context, origin, dest geo.Coordinate) (*ProviderRoute, error)
}

func (m *mockRouteProvider) Route(ctx context.Context, origin, dest geo.Coordinate) (*ProviderRoute, error) {
	return m.RouteFunc(ctx, origin, dest)
}

func staticChain() *Chain {
	return NewChain(&StaticStrategy{})
}

func TestDirections_IdentityProperty(t *testing.T) {
	// Same origin and destination: zero distance, zero minutes.
	uc := NewDirectionsUsecase(NewFixedLocator(), nil, staticChain())

	route, err := uc.Directions(context.Background(), &geo.IndoreCenter, geo.IndoreCenter)
	if err != nil {
		t.Fatalf("Directions() error = %v", err)
	}
	if route.DistanceKm != 0 {
		t.Errorf("DistanceKm = %v, want 0", route.DistanceKm)
	}
	if route.DurationMin != 0 {
		t.Errorf("DurationMin = %v, want 0", route.DurationMin)
	}
}

func TestDirections_NilOriginUsesLocator(t *testing.T) {
	uc := NewDirectionsUsecase(NewFixedLocator(), nil, staticChain())

	route, err := uc.Directions(context.Background(), nil, geo.Coordinate{Lat: 22.7533, Lng: 75.8937})
	if err != nil {
		t.Fatalf("Directions() error = %v", err)
	}
	if route.Origin != geo.IndoreCenter {
		t.Errorf("Origin = %+v, want city center", route.Origin)
	}
	if route.DistanceKm <= 0 {
		t.Errorf("DistanceKm = %v, want positive", route.DistanceKm)
	}
}

func TestDirections_ProviderFailureDegradesToEstimate(t *testing.T) {
	provider := &mockRouteProvider{
		RouteFunc: func(ctx context.Context, origin, dest geo.Coordinate) (*ProviderRoute, error) {
			return nil, errors.New("service unavailable")
		},
	}
	uc := NewDirectionsUsecase(NewFixedLocator(), provider, staticChain())

	route, err := uc.Directions(context.Background(), nil, geo.Coordinate{Lat: 22.7533, Lng: 75.8937})
	if err != nil {
		t.Fatalf("Directions() error = %v", err)
	}
	if route.Source != "estimate" {
		t.Errorf("Source = %q, want estimate", route.Source)
	}
}

func TestDirections_ProviderRouteWins(t *testing.T) {
	provider := &mockRouteProvider{
		RouteFunc: func(ctx context.Context, origin, dest geo.Coordinate) (*ProviderRoute, error) {
			return &ProviderRoute{DistanceKm: 6.2, Duration: 18 * time.Minute, Geometry: "abc123"}, nil
		},
	}
	uc := NewDirectionsUsecase(NewFixedLocator(), provider, NewChain(&InteractiveStrategy{MapKey: "k"}, &StaticStrategy{}))

	route, err := uc.Directions(context.Background(), nil, geo.Coordinate{Lat: 22.7533, Lng: 75.8937})
	if err != nil {
		t.Fatalf("Directions() error = %v", err)
	}
	if route.Source != "provider" || route.DistanceKm != 6.2 || route.DurationMin != 18 {
		t.Errorf("unexpected route: %+v", route)
	}
	if route.View.Mode != "interactive" {
		t.Errorf("View.Mode = %q, want interactive", route.View.Mode)
	}
}

func TestDirections_DeepLinks(t *testing.T) {
	uc := NewDirectionsUsecase(NewFixedLocator(), nil, staticChain())

	route, err := uc.Directions(context.Background(), nil, geo.Coordinate{Lat: 22.7533, Lng: 75.8937})
	if err != nil {
		t.Fatalf("Directions() error = %v", err)
	}
	if !strings.HasPrefix(route.MapplsURL, "https://www.mappls.com/direction?places=") {
		t.Errorf("MapplsURL = %q", route.MapplsURL)
	}
	if !strings.Contains(route.GoogleURL, "google.com/maps/dir/") {
		t.Errorf("GoogleURL = %q", route.GoogleURL)
	}
}

// failingStrategy always errors, to exercise chain degradation.
type failingStrategy struct{ name string }

func (s *failingStrategy) Name() string           { return s.name }
func (s *failingStrategy) Timeout() time.Duration { return time.Second }
func (s *failingStrategy) Render(ctx context.Context, route *Route) (*View, error) {
	return nil, errors.New("boom")
}

// recordingStrategy notes that it was tried before delegating to static.
type recordingStrategy struct {
	name  string
	order *[]string
	fail  bool
}

func (s *recordingStrategy) Name() string           { return s.name }
func (s *recordingStrategy) Timeout() time.Duration { return time.Second }
func (s *recordingStrategy) Render(ctx context.Context, route *Route) (*View, error) {
	*s.order = append(*s.order, s.name)
	if s.fail {
		return nil, errors.New("boom")
	}
	return &View{Mode: s.name}, nil
}

func TestChain_OrderedFallback(t *testing.T) {
	var order []string
	chain := NewChain(
		&recordingStrategy{name: "first", order: &order, fail: true},
		&recordingStrategy{name: "second", order: &order, fail: true},
		&recordingStrategy{name: "third", order: &order},
	)

	view, err := chain.Render(context.Background(), &Route{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if view.Mode != "third" {
		t.Errorf("Mode = %q, want third", view.Mode)
	}
	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Errorf("order = %v", order)
	}
}

func TestChain_FirstSuccessWins(t *testing.T) {
	var order []string
	chain := NewChain(
		&recordingStrategy{name: "first", order: &order},
		&recordingStrategy{name: "second", order: &order},
	)

	view, err := chain.Render(context.Background(), &Route{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if view.Mode != "first" {
		t.Errorf("Mode = %q, want first", view.Mode)
	}
	if len(order) != 1 {
		t.Errorf("later strategies were tried: %v", order)
	}
}

func TestStaticStrategy_NeverFails(t *testing.T) {
	chain := NewChain(&failingStrategy{name: "sdk"}, &failingStrategy{name: "embed"}, &StaticStrategy{})

	view, err := chain.Render(context.Background(), &Route{DistanceKm: 5.9, Duration: 12 * time.Minute})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if view.Mode != "static" {
		t.Errorf("Mode = %q, want static", view.Mode)
	}
	if !strings.Contains(view.Summary, "5.9 km") {
		t.Errorf("Summary = %q", view.Summary)
	}
}

func TestInteractiveStrategy_RequiresGeometry(t *testing.T) {
	s := &InteractiveStrategy{MapKey: "k"}
	if _, err := s.Render(context.Background(), &Route{}); err == nil {
		t.Error("expected error without geometry")
	}
}

func TestTimeoutLocator(t *testing.T) {
	fallback := geo.IndoreCenter

	t.Run("passes through a fast inner locator", func(t *testing.T) {
		inner := LocatorFunc(func(ctx context.Context) (geo.Coordinate, error) {
			return geo.Coordinate{Lat: 1, Lng: 2}, nil
		})
		l := NewTimeoutLocator(inner, time.Second, fallback)

		got, err := l.Locate(context.Background())
		if err != nil {
			t.Fatalf("Locate() error = %v", err)
		}
		if got != (geo.Coordinate{Lat: 1, Lng: 2}) {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("falls back on inner error", func(t *testing.T) {
		inner := LocatorFunc(func(ctx context.Context) (geo.Coordinate, error) {
			return geo.Coordinate{}, errors.New("permission denied")
		})
		l := NewTimeoutLocator(inner, time.Second, fallback)

		got, err := l.Locate(context.Background())
		if err != nil {
			t.Fatalf("Locate() error = %v", err)
		}
		if got != fallback {
			t.Errorf("got %+v, want fallback", got)
		}
	})

	t.Run("falls back on timeout", func(t *testing.T) {
		inner := LocatorFunc(func(ctx context.Context) (geo.Coordinate, error) {
			<-ctx.Done()
			return geo.Coordinate{}, ctx.Err()
		})
		l := NewTimeoutLocator(inner, 10*time.Millisecond, fallback)

		got, err := l.Locate(context.Background())
		if err != nil {
			t.Fatalf("Locate() error = %v", err)
		}
		if got != fallback {
			t.Errorf("got %+v, want fallback", got)
		}
	})
}
