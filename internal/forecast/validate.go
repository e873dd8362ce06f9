package forecast

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ErrDaysNotChronological is returned when daily forecasts are not strictly ascending
var ErrDaysNotChronological = errors.New("daily forecasts must be in strictly ascending date order")

// ValidationError reports which element of a SurfForecast is invalid
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid forecast: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the invariants of an assembled forecast
func (f *SurfForecast) Validate() error {
	return validateDays(f.Forecast5Day)
}

func validateDays(days []DailyForecast) error {
	var prev time.Time
	for i, day := range days {
		field := fmt.Sprintf("forecast_5day[%d].date", i)

		date, err := time.Parse(dateLayout, day.Date)
		if err != nil {
			return &ValidationError{
				Field: field,
				Err:   fmt.Errorf("%w: unparsable date %q", ErrDaysNotChronological, day.Date),
			}
		}

		if i > 0 && !date.After(prev) {
			return &ValidationError{
				Field: field,
				Err:   fmt.Errorf("%w: %s follows %s", ErrDaysNotChronological, day.Date, days[i-1].Date),
			}
		}
		prev = date
	}
	return nil
}
