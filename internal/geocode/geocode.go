package geocode

import (
	"context"  // Request scoped cancellation
	"errors"   // Sentinel errors
	"fmt"      // Error wrapping
	"net/http" // HTTP client
	"strings"  // Status inspection
	"time"     // Client timeout

	"googlemaps.github.io/maps" // Google Maps Platform client

	"places_api/internal/domain" // Location type
)

// ErrNoResults is returned when the address resolves to nothing
var ErrNoResults = errors.New("geocode: no results for address")

// Geocoder resolves a street address to coordinates
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Location, error)
}

// GoogleClient talks to the Google Geocoding API
type GoogleClient struct {
	maps *maps.Client
}

// NewGoogleClient creates a Google Geocoding API client, apiKey must not be empty
func NewGoogleClient(baseURL, apiKey string, timeout time.Duration) (*GoogleClient, error) {
	c, err := maps.NewClient(
		maps.WithAPIKey(apiKey),
		maps.WithBaseURL(baseURL),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("geocode: create client: %w", err)
	}
	return &GoogleClient{maps: c}, nil
}

// Geocode returns the location of the first result for address
func (g *GoogleClient) Geocode(ctx context.Context, address string) (domain.Location, error) {
	results, err := g.maps.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		// The client reports API statuses as "maps: <STATUS> - <message>"
		if strings.Contains(err.Error(), "ZERO_RESULTS") {
			return domain.Location{}, ErrNoResults
		}
		return domain.Location{}, fmt.Errorf("geocode: %w", err)
	}
	if len(results) == 0 {
		return domain.Location{}, ErrNoResults
	}
	loc := results[0].Geometry.Location
	return domain.Location{Lat: loc.Lat, Lng: loc.Lng}, nil
}
