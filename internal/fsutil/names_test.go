package fsutil

import (
	"strings"
	"testing"
)

func TestSafeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"recording timestamp", "2022-06-05-16-09-27", "2022-06-05-16-09-27"},
		{"spaces collapse", "Sunday  long run", "Sunday_long_run"},
		{"path separators", "../../etc/passwd", "etc_passwd"},
		{"unicode", "Lauf über 10km", "Lauf_ber_10km"},
		{"existing underscores", "a__b", "a__b"},
		{"trimmed", "._name_.", "name"},
		{"empty", "", "unnamed"},
		{"nothing usable", "!!!", "unnamed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeName(tt.in); got != tt.want {
				t.Errorf("SafeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSafeNameLength(t *testing.T) {
	got := SafeName(strings.Repeat("a", 500))
	if len(got) != maxNameLen {
		t.Errorf("len(SafeName) = %d, want %d", len(got), maxNameLen)
	}
}
