package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutType is returned when a package carries a type code outside the known set
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrInvalidArgumentCount is returned when the number of raw fields does not match the workout type
	ErrInvalidArgumentCount = errors.New("invalid argument count")
	// ErrNumericDomain is returned when a value would make a formula divide by zero or leave the finite range
	ErrNumericDomain = errors.New("numeric domain error")
	// ErrInvalidReading is returned for readings that are finite but physically meaningless
	ErrInvalidReading = errors.New("invalid reading")
	// ErrMalformedPackage is returned when a package line cannot be parsed
	ErrMalformedPackage = errors.New("malformed package")
)

// PackageError describes a single package that was skipped during processing
type PackageError struct {
	Line        int
	WorkoutType string
	RawLine     string
	Err         error
}

func (e *PackageError) Error() string {
	if e.WorkoutType == "" {
		return fmt.Sprintf("package at line %d: %v", e.Line, e.Err)
	}
	if e.RawLine == "" {
		return fmt.Sprintf("package %s at line %d: %v", e.WorkoutType, e.Line, e.Err)
	}
	return fmt.Sprintf("package %s at line %d ('%s'): %v", e.WorkoutType, e.Line, e.RawLine, e.Err)
}

func (e *PackageError) Unwrap() error {
	return e.Err
}

// Reason returns a short label for the error category, suitable for metric labels
func (e *PackageError) Reason() string {
	return ErrorReason(e.Err)
}

// ErrorReason maps an error onto one of the known categories
func ErrorReason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownWorkoutType):
		return "unknown_workout_type"
	case errors.Is(err, ErrInvalidArgumentCount):
		return "invalid_argument_count"
	case errors.Is(err, ErrNumericDomain):
		return "numeric_domain"
	case errors.Is(err, ErrInvalidReading):
		return "invalid_reading"
	case errors.Is(err, ErrMalformedPackage):
		return "malformed_package"
	default:
		return "other"
	}
}
