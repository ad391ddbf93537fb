package recording

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/runlog/internal/fsutil"
)

const accelerationJSON = `[
	{"timestamp": 1654445400.52, "x": 0.1, "y": -0.2, "z": 0.98},
	{"timestamp": 1654445400.50, "x": 0.0, "y": -0.1, "z": 1.01},
	{"timestamp": 1654445400.51, "x": -0.1, "y": 0.0, "z": 0.99}
]`

func TestLoadAcceleration(t *testing.T) {
	fs := fsutil.NewMemoryFileSystem()
	require.NoError(t, fs.WriteFile("walk.json", []byte(accelerationJSON), 0644))

	samples, err := LoadAcceleration(fs, "walk.json")
	require.NoError(t, err)
	require.Len(t, samples, 3)

	ts := Timestamps(samples)
	assert.InDelta(t, 0.02, ts[0], 1e-6)
	assert.Equal(t, 0.0, ts[1])
	assert.InDelta(t, 0.01, ts[2], 1e-6)

	assert.Equal(t, []float64{0.1, 0.0, -0.1}, Component(samples, AxisX))
	assert.Equal(t, []float64{-0.2, -0.1, 0.0}, Component(samples, AxisY))
	assert.Equal(t, []float64{0.98, 1.01, 0.99}, Component(samples, AxisZ))
}

func TestParseAccelerationEmpty(t *testing.T) {
	samples, err := ParseAcceleration([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, samples)

	_, err = ParseAcceleration([]byte(`{`))
	assert.Error(t, err)
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "x", AxisX.String())
	assert.Equal(t, "z", AxisZ.String())
	assert.Equal(t, "Axis(7)", Axis(7).String())
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "run", BaseName("/tmp/data/run.json"))
	assert.Equal(t, "run.backup", BaseName("run.backup.json"))
}
