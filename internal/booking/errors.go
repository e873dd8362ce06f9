package booking

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")

	// ErrInvalidReference means a referenced school, instructor or lesson does not exist
	ErrInvalidReference = errors.New("invalid reference")
	ErrInvalidTimeRange = errors.New("end_time must be after start_time")

	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrScheduleUnavailable   = errors.New("schedule is not available")
	ErrLessonMismatch        = errors.New("schedule does not belong to the given lesson")
	ErrScheduleAlreadyBooked = errors.New("schedule already has an active booking")
)

// NotFoundError names the missing record
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IsRuleViolation reports whether err is a client-side mistake: bad input,
// a dangling reference or a booking rule.
func IsRuleViolation(err error) bool {
	for _, target := range []error{
		ErrValidation,
		ErrInvalidReference,
		ErrInvalidTimeRange,
		ErrScheduleNotFound,
		ErrScheduleUnavailable,
		ErrLessonMismatch,
		ErrScheduleAlreadyBooked,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(parts, "; "))
}

// jsonFieldName reports fields by their JSON name in validation messages
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
