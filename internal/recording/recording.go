// Package recording loads run recordings: JSON arrays of splits, each holding
// GPS fixes and base64-encoded Bluetooth Heart Rate Measurement values.
package recording

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/banshee-data/runlog/internal/fsutil"
	"github.com/banshee-data/runlog/internal/geodesy"
	"github.com/banshee-data/runlog/internal/units"
)

// ErrSplitOutOfRange is returned when a split index does not exist.
var ErrSplitOutOfRange = errors.New("split index out of range")

// Location is one GPS fix. Times are seconds; distances meters; speed m/s.
// Speed and Course are negative when the receiver had no valid reading.
type Location struct {
	TimeInterval       float64       `json:"timeInterval"`
	Longitude          units.Degrees `json:"longitude"`
	Latitude           units.Degrees `json:"latitude"`
	Altitude           float64       `json:"altitude"`
	HorizontalAccuracy float64       `json:"horizontalAccuracy"`
	VerticalAccuracy   float64       `json:"verticalAccuracy"`
	Speed              float64       `json:"speed"`
	SpeedAccuracy      float64       `json:"speedAccuracy"`
	Course             units.Degrees `json:"course"`
	CourseAccuracy     float64       `json:"courseAccuracy"`
}

// GNSS returns the fix as a geodesy coordinate.
func (l Location) GNSS() geodesy.GNSS {
	return geodesy.GNSS{Lat: l.Latitude, Lon: l.Longitude, Alt: l.Altitude}
}

// BluetoothValue is one notification from the heart rate sensor.
type BluetoothValue struct {
	TimeInterval float64 `json:"timeInterval"`
	Value        string  `json:"value"`
}

// Split is one continuous segment of a recording.
type Split struct {
	Locations       []Location       `json:"locations"`
	BluetoothValues []BluetoothValue `json:"bluetoothValues"`
}

// SortedLocations returns a copy of the locations ordered by time.
func (s Split) SortedLocations() []Location {
	locs := make([]Location, len(s.Locations))
	copy(locs, s.Locations)
	sort.SliceStable(locs, func(i, j int) bool {
		return locs[i].TimeInterval < locs[j].TimeInterval
	})
	return locs
}

// Recording is a parsed recording file.
type Recording struct {
	// Name is the file name without directory or extension. Output files
	// are named after it.
	Name   string
	Splits []Split
}

// Parse decodes recording JSON.
func Parse(data []byte) (*Recording, error) {
	var splits []Split
	if err := json.Unmarshal(data, &splits); err != nil {
		return nil, fmt.Errorf("failed to parse recording: %w", err)
	}
	for i, s := range splits {
		for j, loc := range s.Locations {
			if err := loc.GNSS().Validate(); err != nil {
				return nil, fmt.Errorf("split %d location %d: %w", i, j, err)
			}
		}
	}
	return &Recording{Splits: splits}, nil
}

// Load reads and parses the recording at path.
func Load(fsys fsutil.FileSystem, path string) (*Recording, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording %s: %w", path, err)
	}
	rec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rec.Name = BaseName(path)
	return rec, nil
}

// BaseName strips the directory and extension from path.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Split returns split i.
func (r *Recording) Split(i int) (Split, error) {
	if i < 0 || i >= len(r.Splits) {
		return Split{}, fmt.Errorf("split %d of %d: %w", i, len(r.Splits), ErrSplitOutOfRange)
	}
	return r.Splits[i], nil
}

// Merged concatenates every split in file order.
func (r *Recording) Merged() Split {
	var merged Split
	for _, s := range r.Splits {
		merged.Locations = append(merged.Locations, s.Locations...)
		merged.BluetoothValues = append(merged.BluetoothValues, s.BluetoothValues...)
	}
	return merged
}

// SortSplits returns copies of splits with their locations in time order,
// ordered by the time of each split's first location. Splits without
// locations sort last.
func SortSplits(splits []Split) []Split {
	sorted := make([]Split, len(splits))
	for i, s := range splits {
		sorted[i] = Split{Locations: s.SortedLocations(), BluetoothValues: s.BluetoothValues}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Locations, sorted[j].Locations
		if len(a) == 0 || len(b) == 0 {
			return len(b) == 0 && len(a) != 0
		}
		return a[0].TimeInterval < b[0].TimeInterval
	})
	return sorted
}
