package openmeteo

import (
	"context"
	"log/slog"
	"net/url"

	"surfcast/internal/providers/httpclient"
	"surfcast/internal/types"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=38.68&longitude=-9.33&hourly=temperature_2m,windspeed_10m,winddirection_10m,windgusts_10m&daily=temperature_2m_max,temperature_2m_min&windspeed_unit=kn&timezone=auto&forecast_days=7
const (
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"
)

var weatherHourlyVars = []string{
	"temperature_2m",
	"windspeed_10m",
	"winddirection_10m",
	"windgusts_10m",
}

var weatherDailyVars = []string{
	"temperature_2m_max",
	"temperature_2m_min",
	"windspeed_10m_max",
	"winddirection_10m_dominant",
	"windgusts_10m_max",
}

type ForecastClient struct {
	httpClient *httpclient.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(baseURL string, httpClient *httpclient.Client, logger *slog.Logger) *ForecastClient {
	if baseURL == "" {
		baseURL = DefaultForecastURL
	}
	return &ForecastClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "forecast-client"),
	}
}

// GetForecast fetches air temperature and wind (in knots) for the coordinates
func (c *ForecastClient) GetForecast(ctx context.Context, coords types.Coords, timezone string, forecastDays int) (*ForecastAPIResponse, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	extra := url.Values{"windspeed_unit": {"kn"}}
	rawURL, err := buildURL(c.baseURL, coords, timezone, forecastDays, weatherHourlyVars, weatherDailyVars, extra)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetching weather forecast", "coords", coords.String(), "url", rawURL)

	var apiResp ForecastAPIResponse
	if err := fetch(ctx, c.httpClient, "weather", rawURL, &apiResp); err != nil {
		c.logger.Error("failed to fetch weather forecast", "coords", coords.String(), "error", err)
		return nil, err
	}

	if err := apiResp.Validate(); err != nil {
		c.logger.Error("weather forecast failed validation", "coords", coords.String(), "error", err)
		return nil, err
	}

	c.logger.Debug("successfully fetched weather forecast",
		"coords", coords.String(),
		"hourly_points", len(apiResp.Hourly.Time),
		"daily_points", len(apiResp.Daily.Time),
	)

	return &apiResp, nil
}
