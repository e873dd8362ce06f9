package types

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate reports whether the coordinates are inside the WGS84 range.
func (c Coords) Validate() error {
	return ValidateCoords(c.Latitude, c.Longitude)
}

// ValidateCoords fails with ErrInvalidLatitude or ErrInvalidLongitude when a
// value is outside its range or NaN.
func ValidateCoords(latitude, longitude float64) error {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return fmt.Errorf("%w: got %v", ErrInvalidLatitude, latitude)
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return fmt.Errorf("%w: got %v", ErrInvalidLongitude, longitude)
	}
	return nil
}

// String formats the coordinates as "lat, lon" with four decimals.
func (c Coords) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}
