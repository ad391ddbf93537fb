// Package heartrate decodes Bluetooth GATT Heart Rate Measurement
// characteristic payloads.
/*
PAYLOAD LAYOUT (little-endian):

	byte 0      flags
	            bit 0    heart rate format: 0 = uint8, 1 = uint16
	            bits 1-2 sensor contact status
	            bit 3    energy expended present
	            bit 4    R-R intervals present
	            bits 5-7 reserved
	1..1|2      heart rate
	+2          energy expended (kJ), when bit 3 is set
	+2*n        R-R intervals in 1/1024 s, to the end of the payload, when bit 4 is set
*/
package heartrate

// Flag bits of byte 0.
const (
	FlagHeartRate16Bit Flags = 0x01
	FlagContactMask    Flags = 0x06
	FlagEnergyExpended Flags = 0x08
	FlagRRIntervals    Flags = 0x10
)

// Field sizes in bytes.
const (
	flagsSize          = 1
	energyExpendedSize = 2
	rrIntervalSize     = 2
)

// Flags is byte 0 of a Heart Rate Measurement payload.
type Flags uint8

// HeartRateIs16Bit reports whether the heart rate field is a uint16.
func (f Flags) HeartRateIs16Bit() bool { return f&FlagHeartRate16Bit != 0 }

// EnergyExpendedPresent reports whether the energy expended field is present.
func (f Flags) EnergyExpendedPresent() bool { return f&FlagEnergyExpended != 0 }

// RRIntervalsPresent reports whether R-R intervals follow the fixed fields.
func (f Flags) RRIntervalsPresent() bool { return f&FlagRRIntervals != 0 }

// Contact decodes the sensor contact bits.
func (f Flags) Contact() ContactStatus {
	return ContactStatus((f & FlagContactMask) >> 1)
}

// HeartRateSize is the width in bytes of the heart rate field.
func (f Flags) HeartRateSize() int {
	if f.HeartRateIs16Bit() {
		return 2
	}
	return 1
}

// RRIntervalOffset is the byte offset at which R-R interval data begins:
// flags, heart rate and, when present, energy expended. Both decoders use it.
func RRIntervalOffset(f Flags) int {
	offset := flagsSize + f.HeartRateSize()
	if f.EnergyExpendedPresent() {
		offset += energyExpendedSize
	}
	return offset
}

// ContactStatus is the sensor contact state reported in bits 1-2.
type ContactStatus uint8

const (
	// ContactNotSupported covers both 0b00 and 0b01.
	ContactNotSupported ContactStatus = iota
	_
	ContactNotDetected
	ContactDetected
)

// Supported reports whether the sensor reports contact at all.
func (c ContactStatus) Supported() bool {
	return c == ContactNotDetected || c == ContactDetected
}

func (c ContactStatus) String() string {
	switch c {
	case ContactDetected:
		return "detected"
	case ContactNotDetected:
		return "not detected"
	default:
		return "not supported"
	}
}
