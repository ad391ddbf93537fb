package recording

import (
	"encoding/base64"
	"sort"

	"github.com/banshee-data/runlog/internal/heartrate"
	"github.com/banshee-data/runlog/internal/monitoring"
)

// HeartRateSample is a decoded measurement and the time it arrived.
type HeartRateSample struct {
	TimeInterval float64
	heartrate.Measurement
}

// HeartRate decodes every Bluetooth value in time order. Values that fail to
// decode are logged and skipped.
func (s Split) HeartRate() []HeartRateSample {
	values := s.sortedValues()
	samples := make([]HeartRateSample, 0, len(values))
	for _, v := range values {
		m, err := heartrate.DecodeBase64(v.Value)
		if err != nil {
			monitoring.Logf("skipping heart rate value at t=%.3f: %v", v.TimeInterval, err)
			continue
		}
		samples = append(samples, HeartRateSample{TimeInterval: v.TimeInterval, Measurement: m})
	}
	return samples
}

// RRIntervals decodes only the R-R intervals of every Bluetooth value, in
// time order. Values without the R-R flag contribute nothing; values that fail
// to decode are logged and skipped.
func (s Split) RRIntervals() []heartrate.RRInterval {
	var rr []heartrate.RRInterval
	for _, v := range s.sortedValues() {
		payload, err := base64.StdEncoding.DecodeString(v.Value)
		if err == nil {
			var intervals []heartrate.RRInterval
			if intervals, err = heartrate.DecodeRRIntervals(payload); err == nil {
				rr = append(rr, intervals...)
				continue
			}
		}
		monitoring.Logf("skipping R-R intervals at t=%.3f: %v", v.TimeInterval, err)
	}
	return rr
}

func (s Split) sortedValues() []BluetoothValue {
	values := make([]BluetoothValue, len(s.BluetoothValues))
	copy(values, s.BluetoothValues)
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].TimeInterval < values[j].TimeInterval
	})
	return values
}

// RRIntervals flattens the R-R intervals of samples in order.
func RRIntervals(samples []HeartRateSample) []heartrate.RRInterval {
	var rr []heartrate.RRInterval
	for _, s := range samples {
		rr = append(rr, s.RRIntervals...)
	}
	return rr
}

// EnergyExpended collects the energy readings of samples that carry one.
func EnergyExpended(samples []HeartRateSample) []uint16 {
	var energy []uint16
	for _, s := range samples {
		if s.EnergyExpended != nil {
			energy = append(energy, *s.EnergyExpended)
		}
	}
	return energy
}
