package forecast

import (
	"errors"
	"testing"
)

func TestSurfForecast_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dates   []string
		wantErr bool
	}{
		{name: "empty", dates: nil},
		{name: "single day", dates: []string{"2026-02-10"}},
		{name: "ascending", dates: []string{"2026-02-10", "2026-02-11", "2026-02-15"}},
		{name: "descending", dates: []string{"2026-02-11", "2026-02-10"}, wantErr: true},
		{name: "repeated", dates: []string{"2026-02-10", "2026-02-10"}, wantErr: true},
		{name: "out of order later", dates: []string{"2026-02-10", "2026-02-12", "2026-02-11"}, wantErr: true},
		{name: "unparsable", dates: []string{"10/02/2026"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast := &SurfForecast{}
			for _, d := range tt.dates {
				forecast.Forecast5Day = append(forecast.Forecast5Day, DailyForecast{Date: d})
			}

			err := forecast.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() unexpected error = %v", err)
				}
				return
			}

			if !errors.Is(err, ErrDaysNotChronological) {
				t.Fatalf("Validate() error = %v, want ErrDaysNotChronological", err)
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Validate() error type = %T, want *ValidationError", err)
			}
		})
	}
}

func TestValidationError_Field(t *testing.T) {
	forecast := &SurfForecast{Forecast5Day: []DailyForecast{{Date: "2026-02-10"}, {Date: "2026-02-09"}}}

	var validationErr *ValidationError
	if !errors.As(forecast.Validate(), &validationErr) {
		t.Fatal("expected ValidationError")
	}
	if validationErr.Field != "forecast_5day[1].date" {
		t.Errorf("Field = %q", validationErr.Field)
	}
}
