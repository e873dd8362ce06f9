package openmeteo

import "fmt"

// Every numeric series is a slice of pointers: Open-Meteo returns null for
// any hour or day it has no value for.

// MarineAPIResponse is the body returned by the marine endpoint
type MarineAPIResponse struct {
	Latitude             float64      `json:"latitude"`
	Longitude            float64      `json:"longitude"`
	GenerationtimeMs     float64      `json:"generationtime_ms"`
	UtcOffsetSeconds     int          `json:"utc_offset_seconds"`
	Timezone             string       `json:"timezone"`
	TimezoneAbbreviation string       `json:"timezone_abbreviation"`
	HourlyUnits          Units        `json:"hourly_units"`
	Hourly               MarineHourly `json:"hourly"`
	DailyUnits           Units        `json:"daily_units"`
	Daily                MarineDaily  `json:"daily"`
}

type MarineHourly struct {
	Time               []string   `json:"time"`
	WaveHeight         []*float64 `json:"wave_height"`
	WaveDirection      []*float64 `json:"wave_direction"`
	WavePeriod         []*float64 `json:"wave_period"`
	WindWaveHeight     []*float64 `json:"wind_wave_height"`
	WindWaveDirection  []*float64 `json:"wind_wave_direction"`
	WindWavePeriod     []*float64 `json:"wind_wave_period"`
	SwellWaveHeight    []*float64 `json:"swell_wave_height"`
	SwellWaveDirection []*float64 `json:"swell_wave_direction"`
	SwellWavePeriod    []*float64 `json:"swell_wave_period"`
}

type MarineDaily struct {
	Time                       []string   `json:"time"`
	WaveHeightMax              []*float64 `json:"wave_height_max"`
	WaveDirectionDominant      []*float64 `json:"wave_direction_dominant"`
	WavePeriodMax              []*float64 `json:"wave_period_max"`
	WindWaveHeightMax          []*float64 `json:"wind_wave_height_max"`
	WindWaveDirectionDominant  []*float64 `json:"wind_wave_direction_dominant"`
	WindWavePeriodMax          []*float64 `json:"wind_wave_period_max"`
	SwellWaveHeightMax         []*float64 `json:"swell_wave_height_max"`
	SwellWaveDirectionDominant []*float64 `json:"swell_wave_direction_dominant"`
	SwellWavePeriodMax         []*float64 `json:"swell_wave_period_max"`
}

// ForecastAPIResponse is the body returned by the weather forecast endpoint
type ForecastAPIResponse struct {
	Latitude             float64       `json:"latitude"`
	Longitude            float64       `json:"longitude"`
	GenerationtimeMs     float64       `json:"generationtime_ms"`
	UtcOffsetSeconds     int           `json:"utc_offset_seconds"`
	Timezone             string        `json:"timezone"`
	TimezoneAbbreviation string        `json:"timezone_abbreviation"`
	Elevation            float64       `json:"elevation"`
	HourlyUnits          Units         `json:"hourly_units"`
	Hourly               WeatherHourly `json:"hourly"`
	DailyUnits           Units         `json:"daily_units"`
	Daily                WeatherDaily  `json:"daily"`
}

type WeatherHourly struct {
	Time             []string   `json:"time"`
	Temperature2M    []*float64 `json:"temperature_2m"`
	Windspeed10M     []*float64 `json:"windspeed_10m"`
	Winddirection10M []*float64 `json:"winddirection_10m"`
	Windgusts10M     []*float64 `json:"windgusts_10m"`
}

type WeatherDaily struct {
	Time                     []string   `json:"time"`
	Temperature2MMax         []*float64 `json:"temperature_2m_max"`
	Temperature2MMin         []*float64 `json:"temperature_2m_min"`
	Windspeed10MMax          []*float64 `json:"windspeed_10m_max"`
	Winddirection10MDominant []*float64 `json:"winddirection_10m_dominant"`
	Windgusts10MMax          []*float64 `json:"windgusts_10m_max"`
}

// Units maps a series name to its unit label
type Units map[string]string

type series struct {
	name   string
	values []*float64
}

// Validate checks that both time axes are populated and every series is
// aligned with its axis.
func (r *MarineAPIResponse) Validate() error {
	h := r.Hourly
	if err := validateAxis("marine", "hourly", h.Time, []series{
		{"wave_height", h.WaveHeight},
		{"wave_direction", h.WaveDirection},
		{"wave_period", h.WavePeriod},
		{"wind_wave_height", h.WindWaveHeight},
		{"wind_wave_direction", h.WindWaveDirection},
		{"wind_wave_period", h.WindWavePeriod},
		{"swell_wave_height", h.SwellWaveHeight},
		{"swell_wave_direction", h.SwellWaveDirection},
		{"swell_wave_period", h.SwellWavePeriod},
	}); err != nil {
		return err
	}

	d := r.Daily
	return validateAxis("marine", "daily", d.Time, []series{
		{"wave_height_max", d.WaveHeightMax},
		{"wave_direction_dominant", d.WaveDirectionDominant},
		{"wave_period_max", d.WavePeriodMax},
		{"wind_wave_height_max", d.WindWaveHeightMax},
		{"wind_wave_direction_dominant", d.WindWaveDirectionDominant},
		{"wind_wave_period_max", d.WindWavePeriodMax},
		{"swell_wave_height_max", d.SwellWaveHeightMax},
		{"swell_wave_direction_dominant", d.SwellWaveDirectionDominant},
		{"swell_wave_period_max", d.SwellWavePeriodMax},
	})
}

// Validate checks that both time axes are populated and every series is
// aligned with its axis.
func (r *ForecastAPIResponse) Validate() error {
	h := r.Hourly
	if err := validateAxis("weather", "hourly", h.Time, []series{
		{"temperature_2m", h.Temperature2M},
		{"windspeed_10m", h.Windspeed10M},
		{"winddirection_10m", h.Winddirection10M},
		{"windgusts_10m", h.Windgusts10M},
	}); err != nil {
		return err
	}

	d := r.Daily
	return validateAxis("weather", "daily", d.Time, []series{
		{"temperature_2m_max", d.Temperature2MMax},
		{"temperature_2m_min", d.Temperature2MMin},
		{"windspeed_10m_max", d.Windspeed10MMax},
		{"winddirection_10m_dominant", d.Winddirection10MDominant},
		{"windgusts_10m_max", d.Windgusts10MMax},
	})
}

func validateAxis(dataset, block string, axis []string, all []series) error {
	if len(axis) == 0 {
		return &SchemaError{Dataset: dataset, Field: block + ".time", Reason: "missing or empty"}
	}
	for _, s := range all {
		if s.values == nil {
			return &SchemaError{Dataset: dataset, Field: block + "." + s.name, Reason: "missing"}
		}
		if len(s.values) != len(axis) {
			return &SchemaError{
				Dataset: dataset,
				Field:   block + "." + s.name,
				Reason:  fmt.Sprintf("has %d values, expected %d", len(s.values), len(axis)),
			}
		}
	}
	return nil
}
