package units

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidCoordinate reports a latitude or angle outside its domain.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidType reports a value that is not a real number (NaN or ±Inf).
	ErrInvalidType = errors.New("invalid type: value must be a real number")
)

// CheckFinite returns ErrInvalidType when v is NaN or infinite.
func CheckFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s=%v: %w", name, v, ErrInvalidType)
	}
	return nil
}

// CheckLatitude is the guard every latitude-accepting entry point runs.
func CheckLatitude(lat Degrees) error {
	if err := CheckFinite("latitude", float64(lat)); err != nil {
		return err
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90 degrees, got %v: %w", float64(lat), ErrInvalidCoordinate)
	}
	return nil
}

// CheckLongitude only rejects non-real values; longitudes are not range checked.
func CheckLongitude(lon Degrees) error {
	return CheckFinite("longitude", float64(lon))
}

// CheckDirection rejects non-real and negative directions.
func CheckDirection(direction Radians) error {
	if err := CheckFinite("direction", float64(direction)); err != nil {
		return err
	}
	if direction < 0 {
		return fmt.Errorf("direction must be >= 0, got %v: %w", float64(direction), ErrInvalidCoordinate)
	}
	return nil
}
