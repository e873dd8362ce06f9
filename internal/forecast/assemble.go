package forecast

import (
	"errors"

	"surfcast/internal/providers/openmeteo"
	"surfcast/internal/types"
)

const (
	currentIndex = 0
	maxDays      = 5
)

// lookaheadHours are offsets into the hourly axis, starting from now
var lookaheadHours = []int{3, 6, 9, 12}

var errMissingResponse = errors.New("forecast response is nil")

// Assemble maps the raw marine and weather series onto a SurfForecast.
// Timestamps and dates come from the marine axes; weather values are
// read at the same index and stay nil when the weather series is shorter.
func Assemble(point types.ForecastPoint, marine *openmeteo.MarineAPIResponse, weather *openmeteo.ForecastAPIResponse) (*SurfForecast, error) {
	if marine == nil || weather == nil {
		return nil, errMissingResponse
	}
	if len(marine.Hourly.Time) == 0 {
		return nil, &openmeteo.SchemaError{Dataset: "marine", Field: "hourly.time", Reason: "missing or empty"}
	}

	current := hourAt(marine, weather, currentIndex)

	hourly := make([]CurrentConditions, 0, len(lookaheadHours))
	for _, idx := range lookaheadHours {
		if idx < len(marine.Hourly.Time) {
			hourly = append(hourly, hourAt(marine, weather, idx))
		}
	}

	days := min(maxDays, len(marine.Daily.Time))
	daily := make([]DailyForecast, 0, days)
	for i := 0; i < days; i++ {
		daily = append(daily, dayAt(marine, weather, i))
	}

	timezone := marine.Timezone
	if timezone == "" {
		timezone = weather.Timezone
	}

	return &SurfForecast{
		Location:          point.Location.DisplayName,
		Latitude:          point.Coordinates.Latitude,
		Longitude:         point.Coordinates.Longitude,
		Timezone:          timezone,
		CurrentConditions: current,
		HourlyForecast:    hourly,
		Forecast5Day:      daily,
		SurfQualityNotes:  AssessQuality(current),
	}, nil
}

func hourAt(marine *openmeteo.MarineAPIResponse, weather *openmeteo.ForecastAPIResponse, i int) CurrentConditions {
	m, w := marine.Hourly, weather.Hourly
	return CurrentConditions{
		Timestamp:             m.Time[i],
		WaveHeightM:           valueAt(m.WaveHeight, i),
		SwellWaveHeightM:      valueAt(m.SwellWaveHeight, i),
		WindWaveHeightM:       valueAt(m.WindWaveHeight, i),
		WaveDirectionDeg:      valueAt(m.WaveDirection, i),
		SwellWaveDirectionDeg: valueAt(m.SwellWaveDirection, i),
		WavePeriodS:           valueAt(m.WavePeriod, i),
		SwellWavePeriodS:      valueAt(m.SwellWavePeriod, i),
		WindSpeedKnots:        valueAt(w.Windspeed10M, i),
		WindDirectionDeg:      valueAt(w.Winddirection10M, i),
		WindGustsKnots:        valueAt(w.Windgusts10M, i),
		TemperatureC:          valueAt(w.Temperature2M, i),
	}
}

func dayAt(marine *openmeteo.MarineAPIResponse, weather *openmeteo.ForecastAPIResponse, i int) DailyForecast {
	m, w := marine.Daily, weather.Daily
	return DailyForecast{
		Date:                          m.Time[i],
		WaveHeightMaxM:                valueAt(m.WaveHeightMax, i),
		SwellWaveHeightMaxM:           valueAt(m.SwellWaveHeightMax, i),
		WindWaveHeightMaxM:            valueAt(m.WindWaveHeightMax, i),
		WaveDirectionDominantDeg:      valueAt(m.WaveDirectionDominant, i),
		SwellWaveDirectionDominantDeg: valueAt(m.SwellWaveDirectionDominant, i),
		WavePeriodMaxS:                valueAt(m.WavePeriodMax, i),
		SwellWavePeriodMaxS:           valueAt(m.SwellWavePeriodMax, i),
		WindSpeedMaxKnots:             valueAt(w.Windspeed10MMax, i),
		WindDirectionDominantDeg:      valueAt(w.Winddirection10MDominant, i),
		WindGustsMaxKnots:             valueAt(w.Windgusts10MMax, i),
		TemperatureMaxC:               valueAt(w.Temperature2MMax, i),
		TemperatureMinC:               valueAt(w.Temperature2MMin, i),
	}
}

// valueAt returns a copy of series[i], or nil when the index is out of
// range or the upstream value was null.
func valueAt(series []*float64, i int) *float64 {
	if i < 0 || i >= len(series) || series[i] == nil {
		return nil
	}
	v := *series[i]
	return &v
}
