package recording

import (
	"encoding/json"
	"fmt"

	"github.com/banshee-data/runlog/internal/fsutil"
)

// Acceleration is one accelerometer sample in G. Timestamp is seconds since
// the first sample once loaded.
type Acceleration struct {
	Timestamp float64 `json:"timestamp"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
}

// Axis selects one accelerometer component.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAcceleration decodes an accelerometer JSON array and rebases the
// timestamps onto the earliest sample.
func ParseAcceleration(data []byte) ([]Acceleration, error) {
	var samples []Acceleration
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("failed to parse acceleration: %w", err)
	}
	if len(samples) == 0 {
		return samples, nil
	}
	start := samples[0].Timestamp
	for _, s := range samples[1:] {
		if s.Timestamp < start {
			start = s.Timestamp
		}
	}
	for i := range samples {
		samples[i].Timestamp -= start
	}
	return samples, nil
}

// LoadAcceleration reads and parses the accelerometer file at path.
func LoadAcceleration(fsys fsutil.FileSystem, path string) ([]Acceleration, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read acceleration %s: %w", path, err)
	}
	samples, err := ParseAcceleration(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// Component extracts one axis from samples.
func Component(samples []Acceleration, axis Axis) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		switch axis {
		case AxisX:
			out[i] = s.X
		case AxisY:
			out[i] = s.Y
		case AxisZ:
			out[i] = s.Z
		}
	}
	return out
}

// Timestamps extracts the sample times.
func Timestamps(samples []Acceleration) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Timestamp
	}
	return out
}
