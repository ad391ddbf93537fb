package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/runlog/internal/recording"
)

func TestDeadReckon(t *testing.T) {
	locs := []recording.Location{
		{TimeInterval: 0, Speed: 2, Course: 0},   // north for 1 s
		{TimeInterval: 1, Speed: 3, Course: 90},  // east for 2 s
		{TimeInterval: 3, Speed: -1, Course: 45}, // invalid speed
		{TimeInterval: 4, Speed: 1, Course: -1},  // invalid course
		{TimeInterval: 5, Speed: 1, Course: 180},
	}
	path := DeadReckon(locs)
	require.Len(t, path, 5)

	want := []Offset{{0, 0}, {0, 2}, {6, 2}, {6, 2}, {6, 2}}
	for i, w := range want {
		assert.InDelta(t, w.X, path[i].X, 1e-9, "x[%d]", i)
		assert.InDelta(t, w.Y, path[i].Y, 1e-9, "y[%d]", i)
	}
	assert.Nil(t, DeadReckon(nil))
}

func TestReckonFromFixes(t *testing.T) {
	path := ReckonFromFixes(northbound(4))
	require.Len(t, path, 4)
	assert.InDelta(t, 0, path[3].X, 1e-9)
	assert.InDelta(t, 30, path[3].Y, 1e-6)
	assert.Nil(t, ReckonFromFixes(nil))
}

func TestDeadReckonAgreesWithFixes(t *testing.T) {
	locs := northbound(6)
	reckoned := DeadReckon(locs)
	fixed := ReckonFromFixes(locs)
	for i := range locs {
		assert.InDelta(t, fixed[i].Y, reckoned[i].Y, 1e-6)
	}
}
