// Package handler provides HTTP handlers for the parking feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parksarthi_backend/internal/feature/parking/domain"
	"parksarthi_backend/internal/feature/parking/domain/entity"
	"parksarthi_backend/internal/feature/parking/usecase"
	"parksarthi_backend/internal/shared/geo"
)

// ParkingUsecase defines the parking queries used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ParkingUsecase interface {
	ListSpots(ctx context.Context) ([]entity.ParkingSpot, error)
	NearestSpot(ctx context.Context, from geo.Coordinate) (*usecase.NearbySpot, error)
	ListStations(ctx context.Context, from geo.Coordinate) ([]usecase.NearbyStation, error)
}

// ParkingHandler handles HTTP requests for parking spots and EV stations.
type ParkingHandler struct {
	parking ParkingUsecase
}

// NewParkingHandler creates a new instance of ParkingHandler.
func NewParkingHandler(parking ParkingUsecase) *ParkingHandler {
	return &ParkingHandler{parking: parking}
}

// ListSpots handles GET /api/parking/spots.
func (h *ParkingHandler) ListSpots(c *gin.Context) {
	spots, err := h.parking.ListSpots(c.Request.Context())
	if err != nil {
		slog.Error("spot list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list spots"})
		return
	}
	c.JSON(http.StatusOK, spots)
}

// NearestSpot handles GET /api/parking/spots/nearest?lat=&lng=.
func (h *ParkingHandler) NearestSpot(c *gin.Context) {
	from, ok := coordinateQuery(c)
	if !ok {
		return
	}

	spot, err := h.parking.NearestSpot(c.Request.Context(), from)
	if err != nil {
		if errors.Is(err, domain.ErrNoSpots) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no parking spots available"})
			return
		}
		slog.Error("nearest spot lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not find a spot"})
		return
	}
	c.JSON(http.StatusOK, spot)
}

// ListStations handles GET /api/ev-stations?lat=&lng=.
func (h *ParkingHandler) ListStations(c *gin.Context) {
	from, ok := coordinateQuery(c)
	if !ok {
		return
	}

	stations, err := h.parking.ListStations(c.Request.Context(), from)
	if err != nil {
		slog.Error("station list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list stations"})
		return
	}
	c.JSON(http.StatusOK, stations)
}

// coordinateQuery reads lat/lng query parameters, falling back to the city
// center when both are absent. A malformed value aborts with 400.
func coordinateQuery(c *gin.Context) (geo.Coordinate, bool) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" && lngStr == "" {
		return geo.IndoreCenter, true
	}

	lat, err1 := strconv.ParseFloat(latStr, 64)
	lng, err2 := strconv.ParseFloat(lngStr, 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Lat: lat, Lng: lng}, true
}
