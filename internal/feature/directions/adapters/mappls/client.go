package mappls

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"parksarthi_backend/internal/feature/directions/usecase"
	"parksarthi_backend/internal/shared/geo"
)

// Client fetches driving routes from the Mappls routing API.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements RouteProvider.
var _ usecase.RouteProvider = (*Client)(nil)

// NewClient creates a new Client with the given config and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// routeResponse mirrors the OSRM-style payload of the route_adv endpoint.
type routeResponse struct {
	ResponseCode int    `json:"responseCode"`
	Message      string `json:"message"`
	Routes       []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
		Geometry string  `json:"geometry"` // encoded polyline
	} `json:"routes"`
}

// Route requests driving directions between two coordinates. Mappls takes
// lng,lat pairs in the path.
func (c *Client) Route(ctx context.Context, origin, dest geo.Coordinate) (*usecase.ProviderRoute, error) {
	u := fmt.Sprintf("%s/%s/route_adv/driving/%f,%f;%f,%f?overview=full",
		c.cfg.BaseURL, c.cfg.APIKey,
		origin.Lng, origin.Lat, dest.Lng, dest.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("mappls http %d", res.StatusCode)
	}

	var body routeResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Routes) == 0 {
		if body.Message != "" {
			return nil, fmt.Errorf("mappls: %s", body.Message)
		}
		return nil, fmt.Errorf("mappls: no route found")
	}

	r := body.Routes[0]
	return &usecase.ProviderRoute{
		DistanceKm: r.Distance / 1000,
		Duration:   time.Duration(r.Duration) * time.Second,
		Geometry:   r.Geometry,
	}, nil
}
