// Package handler provides HTTP handlers for the directions feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"parksarthi_backend/internal/feature/directions/usecase"
	"parksarthi_backend/internal/shared/geo"
)

// DirectionsUsecase defines the route operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DirectionsUsecase interface {
	Directions(ctx context.Context, origin *geo.Coordinate, dest geo.Coordinate) (*usecase.Route, error)
}

// DirectionsHandler handles HTTP requests for route lookups.
type DirectionsHandler struct {
	directions DirectionsUsecase
}

// NewDirectionsHandler creates a new instance of DirectionsHandler.
func NewDirectionsHandler(directions DirectionsUsecase) *DirectionsHandler {
	return &DirectionsHandler{directions: directions}
}

// Get handles GET /api/directions?lat=&lng=[&origin_lat=&origin_lng=].
// The destination is required; the origin is optional and otherwise resolved
// server-side.
func (h *DirectionsHandler) Get(c *gin.Context) {
	dest, ok := parseCoordinate(c.Query("lat"), c.Query("lng"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid destination coordinates"})
		return
	}

	var origin *geo.Coordinate
	if c.Query("origin_lat") != "" || c.Query("origin_lng") != "" {
		o, ok := parseCoordinate(c.Query("origin_lat"), c.Query("origin_lng"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid origin coordinates"})
			return
		}
		origin = &o
	}

	route, err := h.directions.Directions(c.Request.Context(), origin, dest)
	if err != nil {
		slog.Error("directions failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute route"})
		return
	}
	c.JSON(http.StatusOK, route)
}

func parseCoordinate(latStr, lngStr string) (geo.Coordinate, bool) {
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lng, err2 := strconv.ParseFloat(lngStr, 64)
	if err1 != nil || err2 != nil {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Lat: lat, Lng: lng}, true
}
