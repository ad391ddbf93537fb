package units

import (
	"errors"
	"math"
	"testing"
)

func TestCheckLatitude(t *testing.T) {
	tests := []struct {
		name    string
		lat     Degrees
		wantErr error
	}{
		{"equator", 0, nil},
		{"north pole", 90, nil},
		{"south pole", -90, nil},
		{"above range", 135, ErrInvalidCoordinate},
		{"below range", -90.0001, ErrInvalidCoordinate},
		{"nan", Degrees(math.NaN()), ErrInvalidType},
		{"inf", Degrees(math.Inf(1)), ErrInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLatitude(tt.lat)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("CheckLatitude(%v) unexpected error: %v", tt.lat, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckLatitude(%v) = %v, want %v", tt.lat, err, tt.wantErr)
			}
		})
	}
}

func TestCheckLongitude(t *testing.T) {
	if err := CheckLongitude(540); err != nil {
		t.Errorf("longitudes are not range checked, got %v", err)
	}
	if err := CheckLongitude(Degrees(math.NaN())); !errors.Is(err, ErrInvalidType) {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
}

func TestCheckDirection(t *testing.T) {
	if err := CheckDirection(0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckDirection(-0.1); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("expected ErrInvalidCoordinate, got %v", err)
	}
	if err := CheckDirection(Radians(math.Inf(-1))); !errors.Is(err, ErrInvalidType) {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
}
