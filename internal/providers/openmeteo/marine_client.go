package openmeteo

import (
	"context"
	"log/slog"

	"surfcast/internal/providers/httpclient"
	"surfcast/internal/types"
)

// API Docs: https://open-meteo.com/en/docs/marine-weather-api
// Sample request: https://marine-api.open-meteo.com/v1/marine?latitude=38.68&longitude=-9.33&hourly=wave_height,wave_direction,wave_period&daily=wave_height_max&timezone=auto&forecast_days=7
const (
	DefaultMarineURL = "https://marine-api.open-meteo.com/v1/marine"
)

var marineHourlyVars = []string{
	"wave_height",
	"wave_direction",
	"wave_period",
	"wind_wave_height",
	"wind_wave_direction",
	"wind_wave_period",
	"swell_wave_height",
	"swell_wave_direction",
	"swell_wave_period",
}

var marineDailyVars = []string{
	"wave_height_max",
	"wave_direction_dominant",
	"wave_period_max",
	"wind_wave_height_max",
	"wind_wave_direction_dominant",
	"wind_wave_period_max",
	"swell_wave_height_max",
	"swell_wave_direction_dominant",
	"swell_wave_period_max",
}

type MarineClient struct {
	httpClient *httpclient.Client
	baseURL    string
	logger     *slog.Logger
}

func NewMarineClient(baseURL string, httpClient *httpclient.Client, logger *slog.Logger) *MarineClient {
	if baseURL == "" {
		baseURL = DefaultMarineURL
	}
	return &MarineClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "marine-client"),
	}
}

// GetMarineForecast fetches hourly and daily wave data for the coordinates
func (c *MarineClient) GetMarineForecast(ctx context.Context, coords types.Coords, timezone string, forecastDays int) (*MarineAPIResponse, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	rawURL, err := buildURL(c.baseURL, coords, timezone, forecastDays, marineHourlyVars, marineDailyVars, nil)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetching marine forecast", "coords", coords.String(), "url", rawURL)

	var apiResp MarineAPIResponse
	if err := fetch(ctx, c.httpClient, "marine", rawURL, &apiResp); err != nil {
		c.logger.Error("failed to fetch marine forecast", "coords", coords.String(), "error", err)
		return nil, err
	}

	if err := apiResp.Validate(); err != nil {
		c.logger.Error("marine forecast failed validation", "coords", coords.String(), "error", err)
		return nil, err
	}

	c.logger.Debug("successfully fetched marine forecast",
		"coords", coords.String(),
		"hourly_points", len(apiResp.Hourly.Time),
		"daily_points", len(apiResp.Daily.Time),
	)

	return &apiResp, nil
}
