//go:build integration

package openmeteo

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"surfcast/internal/providers/httpclient"
	"surfcast/internal/types"
)

// Test coordinates: Carcavelos beach, Portugal
var carcavelos = types.NewCoords(38.6790, -9.3370)

func liveHTTPClient() *httpclient.Client {
	return httpclient.New(httpclient.UpstreamPolicy(30*time.Second, 3, time.Second), "surfcast-integration", slog.Default())
}

func TestMarineClient_GetMarineForecast_Integration(t *testing.T) {
	client := NewMarineClient(DefaultMarineURL, liveHTTPClient(), slog.Default())

	t.Logf("Making API call to OpenMeteo Marine API...")
	t.Logf("Coordinates: %s", carcavelos)

	resp, err := client.GetMarineForecast(context.Background(), carcavelos, "Europe/Lisbon", 7)
	if err != nil {
		t.Fatalf("Failed to get marine forecast: %v", err)
	}

	t.Logf("Response metadata:")
	t.Logf("  Timezone: %s", resp.Timezone)
	t.Logf("  Generation time: %.2f ms", resp.GenerationtimeMs)
	t.Logf("Hourly forecast contains %d time points", len(resp.Hourly.Time))
	t.Logf("Daily forecast contains %d days", len(resp.Daily.Time))

	if len(resp.Daily.Time) != 7 {
		t.Errorf("Expected 7 daily points, got %d", len(resp.Daily.Time))
	}
}

func TestForecastClient_GetForecast_Integration(t *testing.T) {
	client := NewForecastClient(DefaultForecastURL, liveHTTPClient(), slog.Default())

	t.Logf("Making API call to OpenMeteo Forecast API...")

	resp, err := client.GetForecast(context.Background(), carcavelos, "auto", 7)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	if resp.HourlyUnits["windspeed_10m"] != "kn" {
		t.Errorf("Expected wind speed in knots, got %q", resp.HourlyUnits["windspeed_10m"])
	}
	if resp.Hourly.Temperature2M[0] != nil {
		t.Logf("First temperature: %.1f°C", *resp.Hourly.Temperature2M[0])
	}
}
