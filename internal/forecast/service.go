package forecast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"surfcast/internal/config"
	"surfcast/internal/location"
	"surfcast/internal/providers/httpclient"
	"surfcast/internal/providers/openmeteo"
	"surfcast/internal/timezone"
	"surfcast/internal/types"
)

type MarineProvider interface {
	// GetMarineForecast fetches hourly and daily wave series for the coordinates
	GetMarineForecast(ctx context.Context, coords types.Coords, timezone string, forecastDays int) (*openmeteo.MarineAPIResponse, error)
}

type WeatherProvider interface {
	// GetForecast fetches hourly and daily wind and temperature series for the coordinates
	GetForecast(ctx context.Context, coords types.Coords, timezone string, forecastDays int) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	// GetForecast resolves a place name and builds its surf forecast
	GetForecast(ctx context.Context, query string) (*SurfForecast, error)
	// GetForecastAt builds the surf forecast for a coordinate pair
	GetForecastAt(ctx context.Context, latitude, longitude float64) (*SurfForecast, error)
	// GetForecastForPoint builds the surf forecast for an already resolved point
	GetForecastForPoint(ctx context.Context, point types.ForecastPoint) (*SurfForecast, error)
}

type forecastService struct {
	locationService location.Service
	marineProvider  MarineProvider
	weatherProvider WeatherProvider
	timezoneService timezone.Service
	cfg             *config.Config
	logger          *slog.Logger
}

// NewForecastService wires the Open-Meteo clients on the shared HTTP client
func NewForecastService(cfg *config.Config, httpClient *httpclient.Client, locationService location.Service, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewForecastServiceWithProviders(
		locationService,
		openmeteo.NewMarineClient(cfg.OpenMeteo.MarineURL, httpClient, logger),
		openmeteo.NewForecastClient(cfg.OpenMeteo.ForecastURL, httpClient, logger),
		tzSvc,
		cfg,
		logger,
	), nil
}

// NewForecastServiceWithProviders creates a forecast service with custom providers.
// timezoneService may be nil, in which case Open-Meteo picks the zone.
func NewForecastServiceWithProviders(
	locationService location.Service,
	marineProvider MarineProvider,
	weatherProvider WeatherProvider,
	timezoneService timezone.Service,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &forecastService{
		locationService: locationService,
		marineProvider:  marineProvider,
		weatherProvider: weatherProvider,
		timezoneService: timezoneService,
		cfg:             cfg,
		logger:          logger.With("component", "forecast-service"),
	}
}

func (s *forecastService) GetForecast(ctx context.Context, query string) (*SurfForecast, error) {
	point, err := s.locationService.Resolve(ctx, query)
	if err != nil {
		s.logger.Error("failed to resolve location", "query", query, "error", err)
		return nil, err
	}
	return s.GetForecastForPoint(ctx, *point)
}

func (s *forecastService) GetForecastAt(ctx context.Context, latitude, longitude float64) (*SurfForecast, error) {
	point, err := s.locationService.Describe(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}
	return s.GetForecastForPoint(ctx, *point)
}

func (s *forecastService) GetForecastForPoint(ctx context.Context, point types.ForecastPoint) (*SurfForecast, error) {
	if err := point.Coordinates.Validate(); err != nil {
		return nil, err
	}

	tz := s.lookupTimezone(point.Coordinates)
	forecastDays := s.forecastDays()

	var (
		wg         sync.WaitGroup
		marineResp *openmeteo.MarineAPIResponse
		weatherRes *openmeteo.ForecastAPIResponse
		marineErr  error
		weatherErr error
	)

	// Launch both API calls in parallel
	wg.Add(2)

	go func() {
		defer wg.Done()
		marineResp, marineErr = s.marineProvider.GetMarineForecast(ctx, point.Coordinates, tz, forecastDays)
		if marineErr != nil {
			marineErr = fmt.Errorf("failed to get marine forecast: %w", marineErr)
		}
	}()

	go func() {
		defer wg.Done()
		weatherRes, weatherErr = s.weatherProvider.GetForecast(ctx, point.Coordinates, tz, forecastDays)
		if weatherErr != nil {
			weatherErr = fmt.Errorf("failed to get weather forecast: %w", weatherErr)
		}
	}()

	wg.Wait()

	// Both datasets are required
	if err := errors.Join(marineErr, weatherErr); err != nil {
		s.logger.Error("failed to get forecast from providers",
			"location", point.Location.DisplayName,
			"coords", point.Coordinates.String(),
			"error", err,
		)
		return nil, err
	}

	forecast, err := Assemble(point, marineResp, weatherRes)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble forecast: %w", err)
	}

	if err := forecast.Validate(); err != nil {
		s.logger.Error("assembled forecast is invalid", "location", forecast.Location, "error", err)
		return nil, err
	}

	s.logger.Debug("built surf forecast",
		"location", forecast.Location,
		"timezone", forecast.Timezone,
		"hourly_points", len(forecast.HourlyForecast),
		"days", len(forecast.Forecast5Day),
	)

	return forecast, nil
}

// lookupTimezone returns the IANA zone for the coordinates, or "auto"
// when it cannot be determined locally.
func (s *forecastService) lookupTimezone(coords types.Coords) string {
	if s.timezoneService == nil {
		return openmeteo.DefaultTimezone
	}

	tz, err := s.timezoneService.GetTimezone(coords)
	if err != nil {
		s.logger.Warn("failed to determine timezone, letting upstream decide",
			"coords", coords.String(),
			"error", err,
		)
		return openmeteo.DefaultTimezone
	}

	s.logger.Debug("determined timezone for location", "coords", coords.String(), "timezone", tz)
	return tz
}

func (s *forecastService) forecastDays() int {
	if s.cfg == nil || s.cfg.App.ForecastDays <= 0 {
		return 7
	}
	return s.cfg.App.ForecastDays
}
