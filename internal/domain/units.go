package domain

import (
	"fmt"
	"math"
)

const (
	// MInKm is the number of metres in a kilometre
	MInKm = 1000
	// MinInH is the number of minutes in an hour
	MinInH = 60
)

// checkFinite returns ErrNumericDomain if the value is NaN or infinite
func checkFinite(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s is not a finite number (%v): %w", name, value, ErrNumericDomain)
	}
	return nil
}

// checkPositiveDivisor rejects values that are later used as a divisor
func checkPositiveDivisor(name string, value float64) error {
	if err := checkFinite(name, value); err != nil {
		return err
	}
	if value <= 0 {
		return fmt.Errorf("%s must be greater than 0, got %v: %w", name, value, ErrNumericDomain)
	}
	return nil
}

// distanceKm converts a number of actions of the given length into kilometres
func distanceKm(action int, lenStep float64) float64 {
	return float64(action) * lenStep / MInKm
}

// meanSpeed calculates the speed (km/h)
func meanSpeed(distance float64, durationHours float64) float64 {
	return distance / durationHours
}
