package openstreetmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"surfcast/internal/providers/httpclient"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample requests:
// - https://nominatim.openstreetmap.org/search?q=Carcavelos&format=json&limit=1
// - https://nominatim.openstreetmap.org/reverse?lat=38.68&lon=-9.33&format=json
const (
	DefaultBaseURL = "https://nominatim.openstreetmap.org"
)

// ErrNoResult is returned when Nominatim has no match for the request
var ErrNoResult = errors.New("no result found")

type Client struct {
	httpClient *httpclient.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(baseURL string, httpClient *httpclient.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "openstreetmap-client"),
	}
}

// Search resolves free text to the best matching place
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/search"
	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("addressdetails", "1")
	u.RawQuery = q.Encode()

	c.logger.Debug("searching OpenStreetMap", "query", query, "url", u.String())

	var results []SearchResult
	if err := c.getJSON(ctx, u.String(), &results); err != nil {
		c.logger.Error("failed to search OpenStreetMap", "query", query, "error", err)
		return nil, err
	}

	if len(results) == 0 {
		c.logger.Debug("OpenStreetMap search returned no results", "query", query)
		return nil, fmt.Errorf("%w for %q", ErrNoResult, query)
	}

	c.logger.Debug("successfully searched OpenStreetMap",
		"query", query,
		"display_name", results[0].DisplayName,
	)

	return &results[0], nil
}

// Lookup reverse geocodes a coordinate pair
func (c *Client) Lookup(ctx context.Context, latitude, longitude float64) (*LookupAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/reverse"
	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
		"url", u.String(),
	)

	var apiResp LookupAPIResponse
	if err := c.getJSON(ctx, u.String(), &apiResp); err != nil {
		c.logger.Error("failed to fetch OpenStreetMap data",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, err
	}

	// Nominatim answers 200 with an error field when nothing is nearby
	if apiResp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrNoResult, apiResp.Error)
	}

	c.logger.Debug("successfully fetched OpenStreetMap location data",
		"latitude", latitude,
		"longitude", longitude,
		"display_name", apiResp.DisplayName,
	)

	return &apiResp, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	// Make the HTTP request
	resp, err := c.httpClient.Get(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body := httpclient.ReadErrorBody(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, body)
	}

	// Parse the JSON response
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// Coordinates parses the string lat/lon pair Nominatim returns
func (r *SearchResult) Coordinates() (float64, float64, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse longitude %q: %w", r.Lon, err)
	}
	return lat, lon, nil
}
