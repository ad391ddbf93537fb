package recording

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/runlog/internal/fsutil"
	"github.com/banshee-data/runlog/internal/monitoring"
	"github.com/banshee-data/runlog/internal/testutil"
	"github.com/banshee-data/runlog/internal/units"
)

func twoSplitRecording(t *testing.T) []byte {
	t.Helper()
	return testutil.RecordingJSON(t,
		testutil.Split{
			Locations:       testutil.NorthboundRun(200, 3, 51.5, -0.1, 3),
			BluetoothValues: testutil.HeartRateSeries(200, 3, 140, 440),
		},
		testutil.Split{
			Locations:       testutil.NorthboundRun(100, 2, 51.4, -0.1, 3),
			BluetoothValues: testutil.HeartRateSeries(100, 2, 120, 512),
		},
	)
}

func TestLoad(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	require.NoError(t, fs.WriteFile("data/2022-06-05-16-09-27.json", twoSplitRecording(t), 0644))

	rec, err := Load(fs, "data/2022-06-05-16-09-27.json")
	require.NoError(t, err)
	assert.Equal(t, "2022-06-05-16-09-27", rec.Name)
	require.Len(t, rec.Splits, 2)
	assert.Len(t, rec.Splits[0].Locations, 3)
	assert.Equal(t, units.Degrees(51.5), rec.Splits[0].Locations[0].Latitude)
	assert.Equal(t, 3.0, rec.Splits[0].Locations[0].Speed)
}

func TestLoadErrors(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	_, err := Load(fs, "missing.json")
	assert.Error(t, err)

	require.NoError(t, fs.WriteFile("bad.json", []byte(`{"locations": []}`), 0644))
	_, err = Load(fs, "bad.json")
	assert.Error(t, err)
}

func TestParseRejectsInvalidLatitude(t *testing.T) {
	locs := testutil.NorthboundRun(0, 1, 0, 0, 1)
	locs[0].Latitude = 91
	_, err := Parse(testutil.RecordingJSON(t, testutil.Split{Locations: locs}))
	assert.ErrorIs(t, err, units.ErrInvalidCoordinate)
}

func TestSplit(t *testing.T) {
	rec, err := Parse(twoSplitRecording(t))
	require.NoError(t, err)

	s, err := rec.Split(1)
	require.NoError(t, err)
	assert.Len(t, s.Locations, 2)

	for _, i := range []int{-1, 2} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := rec.Split(i)
			assert.ErrorIs(t, err, ErrSplitOutOfRange)
		})
	}
}

func TestMerged(t *testing.T) {
	rec, err := Parse(twoSplitRecording(t))
	require.NoError(t, err)

	merged := rec.Merged()
	require.Len(t, merged.Locations, 5)
	assert.Len(t, merged.BluetoothValues, 5)
	// file order is kept
	assert.Equal(t, 200.0, merged.Locations[0].TimeInterval)
	assert.Equal(t, 100.0, merged.Locations[3].TimeInterval)
}

func TestSortedLocations(t *testing.T) {
	s := Split{Locations: []Location{{TimeInterval: 3}, {TimeInterval: 1}, {TimeInterval: 2}}}
	sorted := s.SortedLocations()
	assert.Equal(t, []float64{1, 2, 3}, []float64{sorted[0].TimeInterval, sorted[1].TimeInterval, sorted[2].TimeInterval})
	assert.Equal(t, 3.0, s.Locations[0].TimeInterval, "input must not be reordered")
}

func TestSortSplits(t *testing.T) {
	splits := []Split{
		{},
		{Locations: []Location{{TimeInterval: 50}, {TimeInterval: 20}}},
		{Locations: []Location{{TimeInterval: 10}}},
	}
	sorted := SortSplits(splits)
	require.Len(t, sorted, 3)
	assert.Equal(t, 10.0, sorted[0].Locations[0].TimeInterval)
	assert.Equal(t, 20.0, sorted[1].Locations[0].TimeInterval)
	assert.Empty(t, sorted[2].Locations)
}

func TestHeartRate(t *testing.T) {
	var logged []string
	orig := monitoring.Logf
	t.Cleanup(func() { monitoring.Logf = orig })
	monitoring.SetLogger(func(format string, v ...interface{}) {
		logged = append(logged, fmt.Sprintf(format, v...))
	})

	s := Split{BluetoothValues: []BluetoothValue{
		{TimeInterval: 2, Value: testutil.HRMBase64(0x10, 150, 400, 410)},
		{TimeInterval: 1, Value: testutil.HRMBase64(0x08, 140, 77)},
		{TimeInterval: 3, Value: "AA=="}, // flags only
		{TimeInterval: 4, Value: "%%%"},
	}}

	samples := s.HeartRate()
	require.Len(t, samples, 2)
	assert.Equal(t, 1.0, samples[0].TimeInterval)
	assert.Equal(t, uint16(140), samples[0].HeartRate)
	assert.Equal(t, uint16(150), samples[1].HeartRate)
	assert.Len(t, logged, 2)

	assert.Equal(t, []uint16{77}, EnergyExpended(samples))
	rr := RRIntervals(samples)
	require.Len(t, rr, 2)
	assert.EqualValues(t, 400, rr[0])
	assert.EqualValues(t, 410, rr[1])
}

func TestSplitRRIntervals(t *testing.T) {
	var logged []string
	orig := monitoring.Logf
	t.Cleanup(func() { monitoring.Logf = orig })
	monitoring.SetLogger(func(format string, v ...interface{}) {
		logged = append(logged, fmt.Sprintf(format, v...))
	})

	s := Split{BluetoothValues: []BluetoothValue{
		{TimeInterval: 3, Value: testutil.HRMBase64(0x11, 300, 1024)},
		{TimeInterval: 1, Value: testutil.HRMBase64(0x18, 140, 77, 400, 410)},
		{TimeInterval: 2, Value: testutil.HRMBase64(0x00, 150)},
		{TimeInterval: 4, Value: "EUg="}, // 16-bit heart rate cut short
		{TimeInterval: 5, Value: "%%%"},
	}}

	rr := s.RRIntervals()
	require.Len(t, rr, 3)
	assert.EqualValues(t, 400, rr[0])
	assert.EqualValues(t, 410, rr[1])
	assert.EqualValues(t, 1024, rr[2])
	assert.Len(t, logged, 2)

	// both decoding paths agree on well-formed values
	s.BluetoothValues = s.BluetoothValues[:3]
	assert.Equal(t, RRIntervals(s.HeartRate()), s.RRIntervals())
}
