// Package testutil provides shared test utilities and fixtures.
//
// Fixtures build raw Heart Rate Measurement payloads and recording JSON
// without importing the packages under test, so any package may use them.
package testutil

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"math"
	"testing"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// HRMPayload assembles a Heart Rate Measurement payload. The first field is
// the heart rate, written as one or two bytes depending on bit 0 of flags.
// Every following field (energy expended, R-R intervals) is a little-endian
// uint16.
func HRMPayload(flags byte, heartRate uint16, fields ...uint16) []byte {
	payload := []byte{flags}
	if flags&0x01 != 0 {
		payload = binary.LittleEndian.AppendUint16(payload, heartRate)
	} else {
		payload = append(payload, byte(heartRate))
	}
	for _, f := range fields {
		payload = binary.LittleEndian.AppendUint16(payload, f)
	}
	return payload
}

// HRMBase64 is HRMPayload encoded the way recordings store it.
func HRMBase64(flags byte, heartRate uint16, fields ...uint16) string {
	return base64.StdEncoding.EncodeToString(HRMPayload(flags, heartRate, fields...))
}

// Location mirrors one entry of a recording's "locations" array.
type Location struct {
	TimeInterval       float64 `json:"timeInterval"`
	Longitude          float64 `json:"longitude"`
	Latitude           float64 `json:"latitude"`
	Altitude           float64 `json:"altitude"`
	HorizontalAccuracy float64 `json:"horizontalAccuracy"`
	VerticalAccuracy   float64 `json:"verticalAccuracy"`
	Speed              float64 `json:"speed"`
	SpeedAccuracy      float64 `json:"speedAccuracy"`
	Course             float64 `json:"course"`
	CourseAccuracy     float64 `json:"courseAccuracy"`
}

// BluetoothValue mirrors one entry of a recording's "bluetoothValues" array.
type BluetoothValue struct {
	TimeInterval float64 `json:"timeInterval"`
	Value        string  `json:"value"`
}

// Split is one recording segment.
type Split struct {
	Locations       []Location       `json:"locations"`
	BluetoothValues []BluetoothValue `json:"bluetoothValues"`
}

// RecordingJSON marshals splits into recording file contents.
func RecordingJSON(t testing.TB, splits ...Split) []byte {
	t.Helper()
	data, err := json.Marshal(splits)
	if err != nil {
		t.Fatalf("marshal recording: %v", err)
	}
	return data
}

// metersPerDegree is one degree of arc on the WGS84 mean sphere.
const metersPerDegree = 6371008.771415 * math.Pi / 180

// NorthboundRun returns n fixes one second apart, starting at start seconds
// and moving due north from lat/lon at speed m/s.
func NorthboundRun(start float64, n int, lat, lon, speed float64) []Location {
	locs := make([]Location, n)
	for i := range locs {
		locs[i] = Location{
			TimeInterval:       start + float64(i),
			Longitude:          lon,
			Latitude:           lat + float64(i)*speed/metersPerDegree,
			Altitude:           10 + float64(i),
			HorizontalAccuracy: 5,
			VerticalAccuracy:   3,
			Speed:              speed,
			SpeedAccuracy:      0.5,
			Course:             0,
			CourseAccuracy:     10,
		}
	}
	return locs
}

// HeartRateSeries returns n bluetooth values one second apart carrying the
// given heart rate and a single R-R interval.
func HeartRateSeries(start float64, n int, heartRate uint8, rr uint16) []BluetoothValue {
	values := make([]BluetoothValue, n)
	for i := range values {
		values[i] = BluetoothValue{
			TimeInterval: start + float64(i),
			Value:        HRMBase64(0x10, uint16(heartRate), rr),
		}
	}
	return values
}
