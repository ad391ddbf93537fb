package wgs84

import "testing"

func TestMeanRadius(t *testing.T) {
	const want = 6371008.771415
	if d := MeanRadius - want; d > 1e-6 || d < -1e-6 {
		t.Errorf("MeanRadius = %f, want %f", MeanRadius, want)
	}
	if MeanRadius <= SemiMinorAxis || MeanRadius >= SemiMajorAxis {
		t.Errorf("MeanRadius %f should lie between the axes", MeanRadius)
	}
}
