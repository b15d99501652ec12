// Package usecase implements parking spot and EV station queries.
package usecase

import (
	"context"
	"fmt"
	"sort"

	"parksarthi_backend/internal/feature/parking/domain"
	"parksarthi_backend/internal/feature/parking/domain/entity"
	"parksarthi_backend/internal/shared/geo"
)

// SpotRepository abstracts parking-spot reads.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SpotRepository interface {
	ListActive(ctx context.Context) ([]entity.ParkingSpot, error)
}

// StationRepository abstracts EV station reads.
type StationRepository interface {
	ListActive(ctx context.Context) ([]entity.EVStation, error)
}

// NearbySpot pairs a parking spot with its straight-line distance from the caller.
type NearbySpot struct {
	entity.ParkingSpot
	DistanceKm float64 `json:"distance_km"`
}

// NearbyStation pairs an EV station with its straight-line distance from the caller.
type NearbyStation struct {
	entity.EVStation
	DistanceKm float64 `json:"distance_km"`
}

// parkingUsecase serves spot and station queries.
type parkingUsecase struct {
	spots    SpotRepository
	stations StationRepository
}

// NewParkingUsecase creates a new instance of parkingUsecase.
func NewParkingUsecase(spots SpotRepository, stations StationRepository) *parkingUsecase {
	return &parkingUsecase{spots: spots, stations: stations}
}

// ListSpots returns all active parking spots.
func (u *parkingUsecase) ListSpots(ctx context.Context) ([]entity.ParkingSpot, error) {
	return u.spots.ListActive(ctx)
}

// NearestSpot returns the active spot closest to the given coordinate by
// great-circle distance. Spots with no free slots are skipped.
func (u *parkingUsecase) NearestSpot(ctx context.Context, from geo.Coordinate) (*NearbySpot, error) {
	spots, err := u.spots.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}

	var nearest *NearbySpot
	for _, spot := range spots {
		if spot.AvailableSlots == 0 {
			continue
		}
		d := geo.Haversine(from, spot.Coordinates.Data())
		if nearest == nil || d < nearest.DistanceKm {
			nearest = &NearbySpot{ParkingSpot: spot, DistanceKm: d}
		}
	}
	if nearest == nil {
		return nil, domain.ErrNoSpots
	}
	return nearest, nil
}

// ListStations returns active EV stations annotated with their distance from
// the given coordinate, nearest first.
func (u *parkingUsecase) ListStations(ctx context.Context, from geo.Coordinate) ([]NearbyStation, error) {
	stations, err := u.stations.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}

	out := make([]NearbyStation, 0, len(stations))
	for _, st := range stations {
		out = append(out, NearbyStation{
			EVStation:  st,
			DistanceKm: geo.Haversine(from, st.Coordinates.Data()),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out, nil
}
