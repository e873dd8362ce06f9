package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"surfcast/internal/providers/httpclient"
	"surfcast/internal/types"
)

// DefaultTimezone lets Open-Meteo pick the zone from the coordinates
const DefaultTimezone = "auto"

func buildURL(baseURL string, coords types.Coords, timezone string, forecastDays int, hourly, daily []string, extra url.Values) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	if timezone == "" {
		timezone = DefaultTimezone
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", coords.Latitude))
	q.Set("longitude", fmt.Sprintf("%f", coords.Longitude))
	q.Set("hourly", strings.Join(hourly, ","))
	q.Set("daily", strings.Join(daily, ","))
	q.Set("timezone", timezone)
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	for key, values := range extra {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// fetch performs the GET and decodes a 200 body into out. Every failure
// it returns wraps ErrUpstream.
func fetch(ctx context.Context, client *httpclient.Client, dataset, rawURL string, out any) error {
	resp, err := client.Get(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("%w: failed to fetch %s forecast: %w", ErrUpstream, dataset, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       httpclient.ReadErrorBody(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &SchemaError{Dataset: dataset, Field: "body", Reason: err.Error()}
	}

	return nil
}
