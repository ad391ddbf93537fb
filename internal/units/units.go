// Package units provides shared constants, angle types and validation for
// coordinate and speed units.
package units

import "strings"

// Speed unit constants
const (
	MPS  = "mps"
	MPH  = "mph"
	KMPH = "kmph"
	KPH  = "kph"
	// MinPerKM reports pace rather than speed.
	MinPerKM = "min/km"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{MPS, MPH, KMPH, KPH, MinPerKM}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return strings.Join(ValidUnits, ", ")
}

// ConvertSpeed converts a speed from meters per second to the target units.
// Location fixes report speed in m/s; negative values mean the receiver had no
// valid speed and are returned unchanged.
func ConvertSpeed(speedMPS float64, targetUnits string) float64 {
	if speedMPS < 0 {
		return speedMPS
	}
	switch targetUnits {
	case MPS:
		return speedMPS
	case MPH:
		return speedMPS * 2.2369362920544
	case KMPH, KPH:
		return speedMPS * 3.6
	case MinPerKM:
		if speedMPS == 0 {
			return 0
		}
		return 1000 / speedMPS / 60
	default:
		return speedMPS
	}
}

// Label returns the axis label for a speed unit.
func Label(unit string) string {
	switch unit {
	case MPH:
		return "Speed (mph)"
	case KMPH, KPH:
		return "Speed (km/h)"
	case MinPerKM:
		return "Pace (min/km)"
	default:
		return "Speed (m/s)"
	}
}
