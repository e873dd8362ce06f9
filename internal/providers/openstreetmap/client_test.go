package openstreetmap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"surfcast/internal/providers/httpclient"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	hc := httpclient.New(httpclient.TransportPolicy(2*time.Second, 1, 0), "surfcast-test", nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(server.URL, hc, logger)
}

func TestClient_Search(t *testing.T) {
	var gotQuery, gotAgent string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("Expected path /search, got %s", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		if r.URL.Query().Get("limit") != "1" {
			t.Errorf("Expected limit=1, got %q", r.URL.Query().Get("limit"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"place_id":1,"lat":"38.6790","lon":"-9.3370","name":"Carcavelos","display_name":"Carcavelos, Cascais, Lisboa, Portugal","address":{"country":"Portugal","country_code":"pt"}}]`))
	})

	result, err := client.Search(context.Background(), "Carcavelos")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotQuery != "Carcavelos" {
		t.Errorf("Expected q=Carcavelos, got %q", gotQuery)
	}
	if gotAgent != "surfcast-test" {
		t.Errorf("Expected User-Agent surfcast-test, got %q", gotAgent)
	}
	if result.DisplayName != "Carcavelos, Cascais, Lisboa, Portugal" {
		t.Errorf("Unexpected display name %q", result.DisplayName)
	}
	if result.Address.CountryCode != "pt" {
		t.Errorf("Expected country code pt, got %q", result.Address.CountryCode)
	}

	lat, lon, err := result.Coordinates()
	if err != nil {
		t.Fatalf("Coordinates() error = %v", err)
	}
	if lat != 38.679 || lon != -9.337 {
		t.Errorf("Coordinates() = %v, %v", lat, lon)
	}
}

func TestClient_Search_NoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.Search(context.Background(), "Atlantis")
	if !errors.Is(err, ErrNoResult) {
		t.Fatalf("Expected ErrNoResult, got %v", err)
	}
}

func TestClient_Search_StatusError(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.Search(context.Background(), "Carcavelos")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "status 429") {
		t.Errorf("Expected status in error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected status errors not to be retried, got %d calls", calls)
	}
}

func TestClient_Search_InvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.Search(context.Background(), "Carcavelos")
	if err == nil || !strings.Contains(err.Error(), "failed to decode response") {
		t.Fatalf("Expected decode error, got %v", err)
	}
}

func TestClient_Lookup(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("Expected path /reverse, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("lat") != "38.679000" {
			t.Errorf("Unexpected lat %q", r.URL.Query().Get("lat"))
		}
		_, _ = w.Write([]byte(`{"place_id":7,"lat":"38.679","lon":"-9.337","name":"Praia de Carcavelos","display_name":"Praia de Carcavelos, Portugal","address":{"town":"Carcavelos","country":"Portugal","country_code":"pt"}}`))
	})

	resp, err := client.Lookup(context.Background(), 38.679, -9.337)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if resp.Name != "Praia de Carcavelos" {
		t.Errorf("Unexpected name %q", resp.Name)
	}
	if resp.Address.Town != "Carcavelos" {
		t.Errorf("Unexpected town %q", resp.Address.Town)
	}
}

func TestClient_Lookup_UnableToGeocode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	})

	_, err := client.Lookup(context.Background(), 0, -30)
	if !errors.Is(err, ErrNoResult) {
		t.Fatalf("Expected ErrNoResult, got %v", err)
	}
}

func TestSearchResult_Coordinates_Invalid(t *testing.T) {
	r := &SearchResult{Lat: "abc", Lon: "1"}
	if _, _, err := r.Coordinates(); err == nil {
		t.Error("Expected error for unparsable latitude")
	}
}
