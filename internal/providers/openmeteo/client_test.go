package openmeteo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"surfcast/internal/providers/httpclient"
	"surfcast/internal/types"
)

const marineFixture = `{
  "latitude": 38.68, "longitude": -9.33, "timezone": "Europe/Lisbon",
  "hourly": {
    "time": ["2025-01-01T00:00", "2025-01-01T01:00"],
    "wave_height": [1.5, null],
    "wave_direction": [270, 280],
    "wave_period": [10, 11],
    "wind_wave_height": [0.3, 0.4],
    "wind_wave_direction": [200, 210],
    "wind_wave_period": [4, 4],
    "swell_wave_height": [1.2, 1.3],
    "swell_wave_direction": [280, 285],
    "swell_wave_period": [12, 12]
  },
  "daily": {
    "time": ["2025-01-01"],
    "wave_height_max": [2.0],
    "wave_direction_dominant": [275],
    "wave_period_max": [12],
    "wind_wave_height_max": [0.5],
    "wind_wave_direction_dominant": [200],
    "wind_wave_period_max": [5],
    "swell_wave_height_max": [1.8],
    "swell_wave_direction_dominant": [280],
    "swell_wave_period_max": [13]
  }
}`

const weatherFixture = `{
  "latitude": 38.68, "longitude": -9.33, "timezone": "Europe/Lisbon",
  "hourly": {
    "time": ["2025-01-01T00:00"],
    "temperature_2m": [15.2],
    "windspeed_10m": [8.4],
    "winddirection_10m": [350],
    "windgusts_10m": [null]
  },
  "daily": {
    "time": ["2025-01-01"],
    "temperature_2m_max": [17],
    "temperature_2m_min": [11],
    "windspeed_10m_max": [14],
    "winddirection_10m_dominant": [340],
    "windgusts_10m_max": [22]
  }
}`

var lisbon = types.NewCoords(38.68, -9.33)

func newHTTPClient() *httpclient.Client {
	return httpclient.New(httpclient.UpstreamPolicy(2*time.Second, 2, time.Millisecond), "surfcast-test", nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, status int, body string, seen *url.Values) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = r.URL.Query()
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func TestMarineClient_GetMarineForecast(t *testing.T) {
	var query url.Values
	baseURL := serve(t, http.StatusOK, marineFixture, &query)
	client := NewMarineClient(baseURL, newHTTPClient(), discardLogger())

	resp, err := client.GetMarineForecast(context.Background(), lisbon, "Europe/Lisbon", 7)
	if err != nil {
		t.Fatalf("GetMarineForecast() error = %v", err)
	}

	if query.Get("timezone") != "Europe/Lisbon" {
		t.Errorf("Expected timezone Europe/Lisbon, got %q", query.Get("timezone"))
	}
	if query.Get("forecast_days") != "7" {
		t.Errorf("Expected forecast_days 7, got %q", query.Get("forecast_days"))
	}
	if query.Get("hourly") == "" || query.Get("daily") == "" {
		t.Error("Expected hourly and daily variables in the query")
	}

	if len(resp.Hourly.Time) != 2 {
		t.Fatalf("Expected 2 hourly points, got %d", len(resp.Hourly.Time))
	}
	if resp.Hourly.WaveHeight[0] == nil || *resp.Hourly.WaveHeight[0] != 1.5 {
		t.Errorf("Expected wave height 1.5, got %v", resp.Hourly.WaveHeight[0])
	}
	if resp.Hourly.WaveHeight[1] != nil {
		t.Errorf("Expected null wave height to stay nil, got %v", *resp.Hourly.WaveHeight[1])
	}
}

func TestMarineClient_DefaultTimezone(t *testing.T) {
	var query url.Values
	baseURL := serve(t, http.StatusOK, marineFixture, &query)
	client := NewMarineClient(baseURL, newHTTPClient(), discardLogger())

	if _, err := client.GetMarineForecast(context.Background(), lisbon, "", 7); err != nil {
		t.Fatalf("GetMarineForecast() error = %v", err)
	}
	if query.Get("timezone") != DefaultTimezone {
		t.Errorf("Expected timezone %q, got %q", DefaultTimezone, query.Get("timezone"))
	}
}

func TestForecastClient_GetForecast(t *testing.T) {
	var query url.Values
	baseURL := serve(t, http.StatusOK, weatherFixture, &query)
	client := NewForecastClient(baseURL, newHTTPClient(), discardLogger())

	resp, err := client.GetForecast(context.Background(), lisbon, "auto", 7)
	if err != nil {
		t.Fatalf("GetForecast() error = %v", err)
	}

	if query.Get("windspeed_unit") != "kn" {
		t.Errorf("Expected windspeed_unit kn, got %q", query.Get("windspeed_unit"))
	}
	if *resp.Hourly.Windspeed10M[0] != 8.4 {
		t.Errorf("Expected wind speed 8.4, got %v", *resp.Hourly.Windspeed10M[0])
	}
	if resp.Hourly.Windgusts10M[0] != nil {
		t.Error("Expected null gusts to stay nil")
	}
}

func TestClients_InvalidCoordinates(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	marine := NewMarineClient(server.URL, newHTTPClient(), discardLogger())
	weather := NewForecastClient(server.URL, newHTTPClient(), discardLogger())
	bad := types.NewCoords(91, 0)

	if _, err := marine.GetMarineForecast(context.Background(), bad, "", 7); !errors.Is(err, types.ErrInvalidLatitude) {
		t.Errorf("Expected ErrInvalidLatitude from marine client, got %v", err)
	}
	if _, err := weather.GetForecast(context.Background(), types.NewCoords(0, 181), "", 7); !errors.Is(err, types.ErrInvalidLongitude) {
		t.Errorf("Expected ErrInvalidLongitude from weather client, got %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected no upstream calls for invalid coordinates, got %d", calls)
	}
}

func TestMarineClient_StatusError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":true,"reason":"boom"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewMarineClient(server.URL, newHTTPClient(), discardLogger())
	_, err := client.GetMarineForecast(context.Background(), lisbon, "", 7)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", statusErr.StatusCode)
	}
	if !errors.Is(err, ErrUpstream) {
		t.Error("Expected StatusError to wrap ErrUpstream")
	}
	if calls != 3 {
		t.Errorf("Expected 3 attempts (1 + 2 retries), got %d", calls)
	}
}

func TestForecastClient_BadRequestNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewForecastClient(server.URL, newHTTPClient(), discardLogger())
	if _, err := client.GetForecast(context.Background(), lisbon, "", 7); err == nil {
		t.Fatal("Expected error, got nil")
	}
	if calls != 1 {
		t.Errorf("Expected a single attempt for 400, got %d", calls)
	}
}

func TestMarineClient_SchemaError(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "malformed json",
			body:      `{"hourly":`,
			wantField: "body",
		},
		{
			name:      "empty hourly axis",
			body:      `{"hourly":{"time":[]},"daily":{"time":["2025-01-01"]}}`,
			wantField: "hourly.time",
		},
		{
			name:      "missing series",
			body:      `{"hourly":{"time":["2025-01-01T00:00"]},"daily":{"time":["2025-01-01"]}}`,
			wantField: "hourly.wave_height",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL := serve(t, http.StatusOK, tt.body, nil)
			client := NewMarineClient(baseURL, newHTTPClient(), discardLogger())

			_, err := client.GetMarineForecast(context.Background(), lisbon, "", 7)
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Expected *SchemaError, got %v", err)
			}
			if schemaErr.Dataset != "marine" {
				t.Errorf("Expected dataset marine, got %q", schemaErr.Dataset)
			}
			if schemaErr.Field != tt.wantField {
				t.Errorf("Expected field %q, got %q", tt.wantField, schemaErr.Field)
			}
			if !errors.Is(err, ErrUpstream) {
				t.Error("Expected SchemaError to wrap ErrUpstream")
			}
		})
	}
}

func TestFetch_TransportErrorWrapsUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewForecastClient(baseURL, newHTTPClient(), discardLogger())
	_, err := client.GetForecast(context.Background(), lisbon, "", 7)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("Expected ErrUpstream for connection failure, got %v", err)
	}
}
