package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"surfcast/internal/providers/openstreetmap"
	"surfcast/internal/types"
)

var (
	ErrEmptyQuery       = errors.New("location query must not be empty")
	ErrLocationNotFound = errors.New("could not find location")
)

// locationService implements the Service interface
type locationService struct {
	searchProvider   SearchProvider
	locationProvider ReverseGeocodeProvider
	logger           *slog.Logger
}

// NewLocationService creates a location service backed by Nominatim
func NewLocationService(client *openstreetmap.Client, logger *slog.Logger) Service {
	return NewLocationServiceWithProviders(client, client, logger)
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	searchProvider SearchProvider,
	locationProvider ReverseGeocodeProvider,
	logger *slog.Logger,
) Service {
	return &locationService{
		searchProvider:   searchProvider,
		locationProvider: locationProvider,
		logger:           logger.With("component", "location-service"),
	}
}

func (s *locationService) Resolve(ctx context.Context, query string) (*types.ForecastPoint, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	result, err := s.searchProvider.Search(ctx, query)
	if err != nil {
		if errors.Is(err, openstreetmap.ErrNoResult) {
			return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, query)
		}
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, query)
	}

	lat, lon, err := result.Coordinates()
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}
	coords := types.NewCoords(lat, lon)
	if err := coords.Validate(); err != nil {
		return nil, fmt.Errorf("%w: geocoder returned invalid coordinates for %q: %w", ErrLocationNotFound, query, err)
	}

	s.logger.Debug("resolved location", "query", query, "coords", coords.String(), "display_name", result.DisplayName)

	return &types.ForecastPoint{
		Coordinates: coords,
		Location:    translateSearchResult(query, result),
	}, nil
}

func (s *locationService) Describe(ctx context.Context, latitude, longitude float64) (*types.ForecastPoint, error) {
	coords := types.NewCoords(latitude, longitude)
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	point := &types.ForecastPoint{
		Coordinates: coords,
		Location: types.LocationInfo{
			Name:        coords.String(),
			DisplayName: coords.String(),
		},
	}

	// A forecast for open water is still useful without a place name
	resp, err := s.locationProvider.Lookup(ctx, latitude, longitude)
	if err != nil {
		s.logger.Warn("reverse lookup failed, using coordinates as name", "coords", coords.String(), "error", err)
		return point, nil
	}

	point.Location = translateLocationInfo(resp, point.Location)
	return point, nil
}

// translateSearchResult converts a Nominatim search hit to domain LocationInfo type
func translateSearchResult(query string, result *openstreetmap.SearchResult) types.LocationInfo {
	name := result.Name
	if name == "" {
		name = query
	}
	displayName := result.DisplayName
	if displayName == "" {
		displayName = name
	}

	return types.LocationInfo{
		Name:        name,
		DisplayName: displayName,
		Country:     result.Address.Country,
		CountryCode: result.Address.CountryCode,
	}
}

// translateLocationInfo converts an OpenStreetMap reverse lookup response to domain LocationInfo type
func translateLocationInfo(resp *openstreetmap.LookupAPIResponse, fallback types.LocationInfo) types.LocationInfo {
	if resp == nil {
		return fallback
	}

	// Extract the display name or name as the location name
	name := resp.DisplayName
	if resp.Name != "" {
		name = resp.Name
	}
	if name == "" {
		return fallback
	}
	displayName := resp.DisplayName
	if displayName == "" {
		displayName = name
	}

	return types.LocationInfo{
		Name:        name,
		DisplayName: displayName,
		Country:     resp.Address.Country,
		CountryCode: resp.Address.CountryCode,
	}
}
