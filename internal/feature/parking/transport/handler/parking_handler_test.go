package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"parksarthi_backend/internal/feature/parking/domain"
	"parksarthi_backend/internal/feature/parking/domain/entity"
	"parksarthi_backend/internal/feature/parking/usecase"
	"parksarthi_backend/internal/shared/geo"
)

// mockParkingUsecase is a mock implementation of the ParkingUsecase interface.
type mockParkingUsecase struct {
	ListSpotsFunc    func(ctx context.Context) ([]entity.ParkingSpot, error)
	NearestSpotFunc  func(ctx context.Context, from geo.Coordinate) (*usecase.NearbySpot, error)
	ListStationsFunc func(ctx context.Context, from geo.Coordinate) ([]usecase.NearbyStation, error)
}

func (m *mockParkingUsecase) ListSpots(ctx context.Context) ([]entity.ParkingSpot, error) {
	if m.ListSpotsFunc != nil {
		return m.ListSpotsFunc(ctx)
	}
	return []entity.ParkingSpot{{ID: "s1", Location: "Rajwada Palace"}}, nil
}

func (m *mockParkingUsecase) NearestSpot(ctx context.Context, from geo.Coordinate) (*usecase.NearbySpot, error) {
	if m.NearestSpotFunc != nil {
		return m.NearestSpotFunc(ctx, from)
	}
	return &usecase.NearbySpot{ParkingSpot: entity.ParkingSpot{ID: "s1"}, DistanceKm: 0.4}, nil
}

func (m *mockParkingUsecase) ListStations(ctx context.Context, from geo.Coordinate) ([]usecase.NearbyStation, error) {
	if m.ListStationsFunc != nil {
		return m.ListStationsFunc(ctx, from)
	}
	return nil, nil
}

func setupRouter(uc ParkingUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewParkingHandler(uc)
	r := gin.New()
	r.GET("/api/parking/spots", h.ListSpots)
	r.GET("/api/parking/spots/nearest", h.NearestSpot)
	r.GET("/api/ev-stations", h.ListStations)
	return r
}

func TestParkingHandler_ListSpots(t *testing.T) {
	r := setupRouter(&mockParkingUsecase{})

	req, _ := http.NewRequest(http.MethodGet, "/api/parking/spots", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rajwada Palace")
}

func TestParkingHandler_NearestSpot(t *testing.T) {
	t.Run("passes the caller coordinate through", func(t *testing.T) {
		var got geo.Coordinate
		r := setupRouter(&mockParkingUsecase{
			NearestSpotFunc: func(ctx context.Context, from geo.Coordinate) (*usecase.NearbySpot, error) {
				got = from
				return &usecase.NearbySpot{ParkingSpot: entity.ParkingSpot{ID: "s1"}}, nil
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/api/parking/spots/nearest?lat=22.75&lng=75.89", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, geo.Coordinate{Lat: 22.75, Lng: 75.89}, got)
	})

	t.Run("missing coordinates default to the city center", func(t *testing.T) {
		var got geo.Coordinate
		r := setupRouter(&mockParkingUsecase{
			NearestSpotFunc: func(ctx context.Context, from geo.Coordinate) (*usecase.NearbySpot, error) {
				got = from
				return &usecase.NearbySpot{ParkingSpot: entity.ParkingSpot{ID: "s1"}}, nil
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/api/parking/spots/nearest", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, geo.IndoreCenter, got)
	})

	t.Run("malformed coordinates are rejected", func(t *testing.T) {
		r := setupRouter(&mockParkingUsecase{})

		req, _ := http.NewRequest(http.MethodGet, "/api/parking/spots/nearest?lat=abc&lng=75.89", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no spots maps to 404", func(t *testing.T) {
		r := setupRouter(&mockParkingUsecase{
			NearestSpotFunc: func(ctx context.Context, from geo.Coordinate) (*usecase.NearbySpot, error) {
				return nil, domain.ErrNoSpots
			},
		})

		req, _ := http.NewRequest(http.MethodGet, "/api/parking/spots/nearest?lat=22.72&lng=75.86", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestParkingHandler_ListStations(t *testing.T) {
	r := setupRouter(&mockParkingUsecase{
		ListStationsFunc: func(ctx context.Context, from geo.Coordinate) ([]usecase.NearbyStation, error) {
			return []usecase.NearbyStation{
				{EVStation: entity.EVStation{ID: "e1", Name: "Vijay Nagar Charging Hub"}, DistanceKm: 4.2},
			}, nil
		},
	})

	req, _ := http.NewRequest(http.MethodGet, "/api/ev-stations?lat=22.72&lng=75.86", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Vijay Nagar Charging Hub")
}
