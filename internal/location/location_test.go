package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"surfcast/internal/providers/openstreetmap"
	"surfcast/internal/types"
)

// Mock providers for testing

type mockSearchProvider struct {
	response *openstreetmap.SearchResult
	err      error
	query    string
}

func (m *mockSearchProvider) Search(ctx context.Context, query string) (*openstreetmap.SearchResult, error) {
	m.query = query
	return m.response, m.err
}

type mockLocationProvider struct {
	response *openstreetmap.LookupAPIResponse
	err      error
}

func (m *mockLocationProvider) Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error) {
	return m.response, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocationService_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		response    *openstreetmap.SearchResult
		searchErr   error
		wantErr     error
		errContains string
		validate    func(*testing.T, *types.ForecastPoint)
	}{
		{
			name:  "successful resolution",
			query: "  Biarritz ",
			response: &openstreetmap.SearchResult{
				Lat:         "43.4832",
				Lon:         "-1.5586",
				Name:        "Biarritz",
				DisplayName: "Biarritz, Pyrénées-Atlantiques, France",
				Address:     openstreetmap.Address{Country: "France", CountryCode: "fr"},
			},
			validate: func(t *testing.T, fp *types.ForecastPoint) {
				if fp.Coordinates.Latitude != 43.4832 {
					t.Errorf("Latitude = %v, want %v", fp.Coordinates.Latitude, 43.4832)
				}
				if fp.Coordinates.Longitude != -1.5586 {
					t.Errorf("Longitude = %v, want %v", fp.Coordinates.Longitude, -1.5586)
				}
				if fp.Location.DisplayName != "Biarritz, Pyrénées-Atlantiques, France" {
					t.Errorf("DisplayName = %q", fp.Location.DisplayName)
				}
				if fp.Location.CountryCode != "fr" {
					t.Errorf("CountryCode = %q, want fr", fp.Location.CountryCode)
				}
			},
		},
		{
			name:     "name falls back to query",
			query:    "Supertubos",
			response: &openstreetmap.SearchResult{Lat: "39.34", Lon: "-9.36"},
			validate: func(t *testing.T, fp *types.ForecastPoint) {
				if fp.Location.Name != "Supertubos" || fp.Location.DisplayName != "Supertubos" {
					t.Errorf("Expected query as name, got %+v", fp.Location)
				}
			},
		},
		{
			name:    "empty query",
			query:   "   ",
			wantErr: ErrEmptyQuery,
		},
		{
			name:        "no result",
			query:       "Atlantis",
			searchErr:   openstreetmap.ErrNoResult,
			wantErr:     ErrLocationNotFound,
			errContains: "could not find location: Atlantis",
		},
		{
			name:        "transport failure",
			query:       "Nazaré",
			searchErr:   errors.New("failed to fetch: connection refused"),
			errContains: "failed to geocode",
		},
		{
			name:        "unparsable coordinates",
			query:       "Nowhere",
			response:    &openstreetmap.SearchResult{Lat: "north", Lon: "0"},
			errContains: "failed to parse latitude",
		},
		{
			name:     "out of range coordinates",
			query:    "Broken",
			response: &openstreetmap.SearchResult{Lat: "95", Lon: "0"},
			wantErr:  types.ErrInvalidLatitude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search := &mockSearchProvider{response: tt.response, err: tt.searchErr}
			svc := NewLocationServiceWithProviders(search, &mockLocationProvider{}, testLogger())

			got, err := svc.Resolve(context.Background(), tt.query)

			if tt.wantErr != nil || tt.errContains != "" {
				if err == nil {
					t.Fatal("Resolve() expected error, got nil")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve() error = %v, want %v", err, tt.wantErr)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Resolve() error = %q, want it to contain %q", err.Error(), tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve() unexpected error = %v", err)
			}
			if search.query != strings.TrimSpace(tt.query) {
				t.Errorf("Expected trimmed query %q, got %q", strings.TrimSpace(tt.query), search.query)
			}
			if tt.validate != nil {
				tt.validate(t, got)
			}
		})
	}
}

func TestLocationService_Describe(t *testing.T) {
	tests := []struct {
		name      string
		lat       float64
		lon       float64
		response  *openstreetmap.LookupAPIResponse
		lookupErr error
		wantErr   error
		wantName  string
	}{
		{
			name: "named by reverse lookup",
			lat:  38.679,
			lon:  -9.337,
			response: &openstreetmap.LookupAPIResponse{
				Name:        "Praia de Carcavelos",
				DisplayName: "Praia de Carcavelos, Cascais, Portugal",
				Address:     openstreetmap.Address{Country: "Portugal", CountryCode: "pt"},
			},
			wantName: "Praia de Carcavelos",
		},
		{
			name:      "lookup failure falls back to coordinates",
			lat:       30,
			lon:       -40,
			lookupErr: openstreetmap.ErrNoResult,
			wantName:  "30.0000, -40.0000",
		},
		{
			name:     "empty lookup falls back to coordinates",
			lat:      1.5,
			lon:      2.5,
			response: &openstreetmap.LookupAPIResponse{},
			wantName: "1.5000, 2.5000",
		},
		{
			name:    "invalid longitude",
			lat:     0,
			lon:     -181,
			wantErr: types.ErrInvalidLongitude,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reverse := &mockLocationProvider{response: tt.response, err: tt.lookupErr}
			svc := NewLocationServiceWithProviders(&mockSearchProvider{}, reverse, testLogger())

			got, err := svc.Describe(context.Background(), tt.lat, tt.lon)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Describe() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Describe() unexpected error = %v", err)
			}
			if got.Location.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Location.Name, tt.wantName)
			}
			if got.Coordinates.Latitude != tt.lat || got.Coordinates.Longitude != tt.lon {
				t.Errorf("Coordinates = %v, want %v, %v", got.Coordinates, tt.lat, tt.lon)
			}
		})
	}
}
