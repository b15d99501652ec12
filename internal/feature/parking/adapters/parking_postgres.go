// Package adapters provides repository implementations for the parking feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"parksarthi_backend/internal/feature/parking/domain/entity"
	"parksarthi_backend/internal/feature/parking/usecase"
)

// spotPostgres is the Postgres implementation of the SpotRepository interface.
type spotPostgres struct {
	db *gorm.DB
}

// Compile-time check that spotPostgres implements SpotRepository.
var _ usecase.SpotRepository = (*spotPostgres)(nil)

// NewSpotPostgres creates a new instance of spotPostgres with the given gorm.DB connection.
func NewSpotPostgres(db *gorm.DB) *spotPostgres {
	return &spotPostgres{db: db}
}

// ListActive retrieves all active parking spots.
func (r *spotPostgres) ListActive(ctx context.Context) ([]entity.ParkingSpot, error) {
	var spots []entity.ParkingSpot
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

// Create adds a parking spot record to the database. Used by seeding.
func (r *spotPostgres) Create(ctx context.Context, s *entity.ParkingSpot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// stationPostgres is the Postgres implementation of the StationRepository interface.
type stationPostgres struct {
	db *gorm.DB
}

// Compile-time check that stationPostgres implements StationRepository.
var _ usecase.StationRepository = (*stationPostgres)(nil)

// NewStationPostgres creates a new instance of stationPostgres with the given gorm.DB connection.
func NewStationPostgres(db *gorm.DB) *stationPostgres {
	return &stationPostgres{db: db}
}

// ListActive retrieves all active EV stations.
func (r *stationPostgres) ListActive(ctx context.Context) ([]entity.EVStation, error) {
	var stations []entity.EVStation
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

// Create adds an EV station record to the database. Used by seeding.
func (r *stationPostgres) Create(ctx context.Context, s *entity.EVStation) error {
	return r.db.WithContext(ctx).Create(s).Error
}
