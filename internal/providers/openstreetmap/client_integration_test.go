//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"surfcast/internal/providers/httpclient"
)

func newLiveClient() *Client {
	hc := httpclient.New(httpclient.TransportPolicy(10*time.Second, 3, time.Second), "surf_forecast_mcp", nil)
	return NewClient(DefaultBaseURL, hc, slog.Default())
}

func TestClient_Search_Integration(t *testing.T) {
	client := newLiveClient()

	t.Logf("Making API call to OpenStreetMap Nominatim search...")

	resp, err := client.Search(context.Background(), "Carcavelos, Portugal")
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	lat, lon, err := resp.Coordinates()
	if err != nil {
		t.Fatalf("Failed to parse coordinates: %v", err)
	}
	if lat < 38 || lat > 39.5 || lon < -10 || lon > -9 {
		t.Errorf("Unexpected coordinates for Carcavelos: %f, %f", lat, lon)
	}
}

func TestClient_Lookup_Integration(t *testing.T) {
	// Test coordinates: Carcavelos beach
	lat := 38.6790
	lon := -9.3370

	client := newLiveClient()

	t.Logf("Making API call to OpenStreetMap Nominatim reverse...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.Lookup(context.Background(), lat, lon)
	if err != nil {
		t.Fatalf("Failed to look up location: %v", err)
	}

	t.Logf("  Display Name: %s", resp.DisplayName)
	t.Logf("  Country: %s", resp.Address.Country)

	if resp.Address.CountryCode != "pt" {
		t.Errorf("Expected country code pt, got %q", resp.Address.CountryCode)
	}
}
