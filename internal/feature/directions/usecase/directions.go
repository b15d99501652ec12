package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parksarthi_backend/internal/shared/geo"
)

// ProviderRoute is a road route resolved by an external directions provider.
type ProviderRoute struct {
	DistanceKm float64
	Duration   time.Duration
	Geometry   string
}

// RouteProvider fetches driving directions between two coordinates.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type RouteProvider interface {
	Route(ctx context.Context, origin, dest geo.Coordinate) (*ProviderRoute, error)
}

// Route is the assembled directions result: distances, a rendering view and
// deep links into external map applications.
type Route struct {
	Origin      geo.Coordinate `json:"origin"`
	Destination geo.Coordinate `json:"destination"`
	DistanceKm  float64        `json:"distance_km"`
	Duration    time.Duration  `json:"-"`
	DurationMin int            `json:"duration_min"`
	Geometry    string         `json:"-"`
	Source      string         `json:"source"` // provider or estimate
	View        *View          `json:"view"`
	MapplsURL   string         `json:"mappls_url"`
	GoogleURL   string         `json:"google_url"`
}

// directionsUsecase resolves the caller position, fetches a route and renders
// it through the fallback chain.
type directionsUsecase struct {
	locator  Locator
	provider RouteProvider
	chain    *Chain
}

// NewDirectionsUsecase creates a new instance of directionsUsecase.
// provider may be nil, in which case every route is a straight-line estimate.
func NewDirectionsUsecase(locator Locator, provider RouteProvider, chain *Chain) *directionsUsecase {
	return &directionsUsecase{locator: locator, provider: provider, chain: chain}
}

// Directions computes a route from origin to dest. A nil origin is resolved
// through the locator. Provider failures degrade to haversine figures; the
// caller always gets a usable route.
func (u *directionsUsecase) Directions(ctx context.Context, origin *geo.Coordinate, dest geo.Coordinate) (*Route, error) {
	var from geo.Coordinate
	if origin != nil {
		from = *origin
	} else {
		var err error
		from, err = u.locator.Locate(ctx)
		if err != nil {
			return nil, fmt.Errorf("locate caller: %w", err)
		}
	}

	route := &Route{
		Origin:      from,
		Destination: dest,
		DistanceKm:  geo.Haversine(from, dest),
		Source:      "estimate",
		MapplsURL:   MapplsDeepLink(from, dest),
		GoogleURL:   GoogleMapsDeepLink(from, dest),
	}
	route.Duration = geo.EstimateDuration(route.DistanceKm)

	if u.provider != nil {
		if pr, err := u.provider.Route(ctx, from, dest); err != nil {
			slog.Warn("route provider failed, using straight-line estimate", "error", err)
		} else {
			route.DistanceKm = pr.DistanceKm
			route.Duration = pr.Duration
			route.Geometry = pr.Geometry
			route.Source = "provider"
		}
	}
	route.DurationMin = int(route.Duration / time.Minute)

	view, err := u.chain.Render(ctx, route)
	if err != nil {
		return nil, fmt.Errorf("render route: %w", err)
	}
	route.View = view
	return route, nil
}

// MapplsDeepLink builds a direction link into the Mappls app/site.
func MapplsDeepLink(origin, dest geo.Coordinate) string {
	return fmt.Sprintf("https://www.mappls.com/direction?places=%f,%f;%f,%f",
		origin.Lat, origin.Lng, dest.Lat, dest.Lng)
}

// GoogleMapsDeepLink builds a direction link into Google Maps.
func GoogleMapsDeepLink(origin, dest geo.Coordinate) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&origin=%f,%f&destination=%f,%f",
		origin.Lat, origin.Lng, dest.Lat, dest.Lng)
}
