package location

import (
	"context"

	"surfcast/internal/providers/openstreetmap"
	"surfcast/internal/types"
)

// Service turns a place name or a coordinate pair into a forecast point
type Service interface {
	// Resolve geocodes a free-text query such as "Biarritz" or "Ericeira, Portugal"
	Resolve(ctx context.Context, query string) (*types.ForecastPoint, error)
	// Describe names a coordinate pair using a reverse lookup
	Describe(ctx context.Context, latitude, longitude float64) (*types.ForecastPoint, error)
}

// SearchProvider defines the interface for forward geocoding providers
type SearchProvider interface {
	Search(ctx context.Context, query string) (*openstreetmap.SearchResult, error)
}

// ReverseGeocodeProvider defines the interface for location data providers
type ReverseGeocodeProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}
