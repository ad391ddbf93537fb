package heartrate

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// ErrMalformedPayload is returned when a payload is too short for the layout
// its flags describe, or leaves a dangling half R-R interval.
var ErrMalformedPayload = errors.New("malformed heart rate measurement payload")

// RRInterval is the time between two beats in 1/1024 s.
type RRInterval uint16

// RRResolution is the number of R-R interval units per second.
const RRResolution = 1024

// Seconds returns the interval in seconds.
func (r RRInterval) Seconds() float64 {
	return float64(r) / RRResolution
}

// Duration returns the interval as a time.Duration.
func (r RRInterval) Duration() time.Duration {
	return time.Duration(r) * time.Second / RRResolution
}

// Measurement is one decoded Heart Rate Measurement.
type Measurement struct {
	Flags     Flags
	HeartRate uint16
	// EnergyExpended is nil when the flags do not carry the field.
	EnergyExpended *uint16
	// RRIntervals is nil when the flags do not carry the field.
	RRIntervals []RRInterval
}

// Contact returns the sensor contact state.
func (m Measurement) Contact() ContactStatus {
	return m.Flags.Contact()
}

// Decode parses a raw Heart Rate Measurement payload.
func Decode(payload []byte) (Measurement, error) {
	if len(payload) < flagsSize {
		return Measurement{}, fmt.Errorf("empty payload: %w", ErrMalformedPayload)
	}
	m := Measurement{Flags: Flags(payload[0])}

	offset := flagsSize
	hrSize := m.Flags.HeartRateSize()
	if len(payload) < offset+hrSize {
		return Measurement{}, fmt.Errorf("heart rate needs %d bytes, have %d: %w", offset+hrSize, len(payload), ErrMalformedPayload)
	}
	if hrSize == 2 {
		m.HeartRate = binary.LittleEndian.Uint16(payload[offset:])
	} else {
		m.HeartRate = uint16(payload[offset])
	}
	offset += hrSize

	if m.Flags.EnergyExpendedPresent() {
		if len(payload) < offset+energyExpendedSize {
			return Measurement{}, fmt.Errorf("energy expended needs %d bytes, have %d: %w", offset+energyExpendedSize, len(payload), ErrMalformedPayload)
		}
		energy := binary.LittleEndian.Uint16(payload[offset:])
		m.EnergyExpended = &energy
	}

	if m.Flags.RRIntervalsPresent() {
		rr, err := readRRIntervals(payload, RRIntervalOffset(m.Flags))
		if err != nil {
			return Measurement{}, err
		}
		m.RRIntervals = rr
	}
	return m, nil
}

// DecodeBase64 decodes a standard base64 string and parses the payload.
func DecodeBase64(encoded string) (Measurement, error) {
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Measurement{}, fmt.Errorf("decode base64: %w", err)
	}
	return Decode(payload)
}

// DecodeRRIntervals extracts only the R-R intervals from a payload. It returns
// an empty slice when the flags carry none, whatever else the payload holds.
func DecodeRRIntervals(payload []byte) ([]RRInterval, error) {
	if len(payload) < flagsSize {
		return nil, fmt.Errorf("empty payload: %w", ErrMalformedPayload)
	}
	flags := Flags(payload[0])
	if !flags.RRIntervalsPresent() {
		return []RRInterval{}, nil
	}
	return readRRIntervals(payload, RRIntervalOffset(flags))
}

func readRRIntervals(payload []byte, start int) ([]RRInterval, error) {
	if len(payload) < start {
		return nil, fmt.Errorf("R-R intervals start at byte %d, payload has %d: %w", start, len(payload), ErrMalformedPayload)
	}
	data := payload[start:]
	if len(data)%rrIntervalSize != 0 {
		return nil, fmt.Errorf("%d trailing R-R bytes is not a whole number of intervals: %w", len(data), ErrMalformedPayload)
	}
	rr := make([]RRInterval, 0, len(data)/rrIntervalSize)
	for i := 0; i < len(data); i += rrIntervalSize {
		rr = append(rr, RRInterval(binary.LittleEndian.Uint16(data[i:])))
	}
	return rr, nil
}
