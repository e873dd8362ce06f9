package openmeteo

import (
	"errors"
	"fmt"
)

// ErrUpstream classifies every failure caused by the Open-Meteo APIs
// (transport, status or response shape) as opposed to bad input.
var ErrUpstream = errors.New("open-meteo upstream error")

// StatusError is returned when Open-Meteo answers with a non-200 status
// after retries are exhausted.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUpstream
}

// SchemaError describes a response that decoded but does not have the
// expected shape.
type SchemaError struct {
	Dataset string // marine or weather
	Field   string
	Reason  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid %s api response: %s: %s", e.Dataset, e.Field, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return ErrUpstream
}
