package config

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"

	"github.com/banshee-data/runlog/internal/fsutil"
	"github.com/banshee-data/runlog/internal/units"
)

// DefaultConfigPath is the path to the canonical report defaults file.
const DefaultConfigPath = "config/report.defaults.json"

// ReportConfig controls chart output and the motion analysis windows.
// Every field is optional; the Get* methods supply the defaults.
type ReportConfig struct {
	// Output
	OutputDir    *string  `json:"output_dir,omitempty"`
	WidthInches  *float64 `json:"width_inches,omitempty"`
	HeightInches *float64 `json:"height_inches,omitempty"`
	DPI          *int     `json:"dpi,omitempty"`
	HTML         *bool    `json:"html,omitempty"`

	// Position charts
	TrackOverlay      *bool     `json:"track_overlay,omitempty"`
	TrackDirectionDeg *float64  `json:"track_direction_deg,omitempty"`
	CourseArrowsFrom  *int      `json:"course_arrows_from,omitempty"`
	CourseArrowsTo    *int      `json:"course_arrows_to,omitempty"`
	SpeedUnit         *string   `json:"speed_unit,omitempty"`
	HeartRateTicks    []float64 `json:"heart_rate_ticks,omitempty"`

	// R-R interval histograms
	RRHistogramBins *int     `json:"rr_histogram_bins,omitempty"`
	RRStatsBins     *int     `json:"rr_stats_bins,omitempty"`
	RRBandSigma     *float64 `json:"rr_band_sigma,omitempty"`

	// Motion
	SamplePeriod    *float64 `json:"sample_period,omitempty"`
	WindowPeriod    *float64 `json:"window_period,omitempty"`
	PeakFraction    *float64 `json:"peak_fraction,omitempty"`
	PeriodicityHead *int     `json:"periodicity_head,omitempty"`
	ExcerptFrom     *int     `json:"excerpt_from,omitempty"`
	ExcerptTo       *int     `json:"excerpt_to,omitempty"`
	OverviewSamples *int     `json:"overview_samples,omitempty"`
}

// EmptyReportConfig returns a ReportConfig with all fields set to nil.
func EmptyReportConfig() *ReportConfig {
	return &ReportConfig{}
}

// LoadReportConfig loads a ReportConfig from a JSON file read through fsys.
// The file must have a .json extension and be under 1MB. Omitted fields keep
// their defaults, so partial configs are safe.
func LoadReportConfig(fsys fsutil.FileSystem, path string) (*ReportConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := fsys.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyReportConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads DefaultConfigPath from the current directory or
// one of its parents. Panics if the file cannot be loaded, intended for test
// setup.
func MustLoadDefaultConfig() *ReportConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadReportConfig(fsutil.OSFileSystem{}, path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *ReportConfig) Validate() error {
	for name, v := range map[string]*float64{
		"width_inches":  c.WidthInches,
		"height_inches": c.HeightInches,
		"sample_period": c.SamplePeriod,
		"window_period": c.WindowPeriod,
	} {
		if v != nil && !(*v > 0) {
			return fmt.Errorf("%s must be positive, got %v", name, *v)
		}
	}

	if c.DPI != nil && *c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", *c.DPI)
	}

	if c.TrackDirectionDeg != nil {
		if math.IsNaN(*c.TrackDirectionDeg) || math.IsInf(*c.TrackDirectionDeg, 0) {
			return fmt.Errorf("track_direction_deg must be a real number, got %v", *c.TrackDirectionDeg)
		}
	}

	if c.SpeedUnit != nil && !units.IsValid(*c.SpeedUnit) {
		return fmt.Errorf("speed_unit must be one of %s, got %q", units.GetValidUnitsString(), *c.SpeedUnit)
	}

	if c.PeakFraction != nil {
		if *c.PeakFraction <= 0 || *c.PeakFraction > 1 {
			return fmt.Errorf("peak_fraction must be in (0, 1], got %f", *c.PeakFraction)
		}
	}

	for name, v := range map[string]*int{
		"rr_histogram_bins": c.RRHistogramBins,
		"rr_stats_bins":     c.RRStatsBins,
		"periodicity_head":  c.PeriodicityHead,
		"overview_samples":  c.OverviewSamples,
	} {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, *v)
		}
	}

	if c.RRBandSigma != nil && *c.RRBandSigma <= 0 {
		return fmt.Errorf("rr_band_sigma must be positive, got %f", *c.RRBandSigma)
	}

	if from, to := c.GetCourseArrows(); from < 0 || to < from {
		return fmt.Errorf("course arrows must satisfy 0 <= from <= to, got %d..%d", from, to)
	}
	if from, to := c.GetExcerpt(); from < 0 || to <= from {
		return fmt.Errorf("excerpt must satisfy 0 <= from < to, got %d..%d", from, to)
	}

	return nil
}

// GetOutputDir returns the output_dir value or the default.
func (c *ReportConfig) GetOutputDir() string {
	if c.OutputDir == nil || *c.OutputDir == "" {
		return "output"
	}
	return *c.OutputDir
}

// GetWidthInches returns the width_inches value or the default.
func (c *ReportConfig) GetWidthInches() float64 {
	if c.WidthInches == nil {
		return 8
	}
	return *c.WidthInches
}

// GetHeightInches returns the height_inches value or the default.
func (c *ReportConfig) GetHeightInches() float64 {
	if c.HeightInches == nil {
		return 6
	}
	return *c.HeightInches
}

// GetDPI returns the dpi value or the default.
func (c *ReportConfig) GetDPI() int {
	if c.DPI == nil {
		return 200
	}
	return *c.DPI
}

// GetHTML reports whether interactive HTML pages are written alongside PNGs.
func (c *ReportConfig) GetHTML() bool {
	if c.HTML == nil {
		return true
	}
	return *c.HTML
}

// GetTrackOverlay returns the track_overlay value or the default.
func (c *ReportConfig) GetTrackOverlay() bool {
	if c.TrackOverlay == nil {
		return false
	}
	return *c.TrackOverlay
}

// GetTrackDirection returns the overlay rotation, default a quarter of π.
func (c *ReportConfig) GetTrackDirection() units.Radians {
	if c.TrackDirectionDeg == nil {
		return math.Pi / 4
	}
	return units.Degrees(*c.TrackDirectionDeg).Radians()
}

// GetCourseArrows returns the half-open index range of fixes drawn as course
// arrows.
func (c *ReportConfig) GetCourseArrows() (from, to int) {
	from, to = 20, 70
	if c.CourseArrowsFrom != nil {
		from = *c.CourseArrowsFrom
	}
	if c.CourseArrowsTo != nil {
		to = *c.CourseArrowsTo
	}
	return from, to
}

// GetSpeedUnit returns the speed_unit value or the default.
func (c *ReportConfig) GetSpeedUnit() string {
	if c.SpeedUnit == nil {
		return units.MPS
	}
	return *c.SpeedUnit
}

// GetHeartRateTicks returns the heart rate zone boundaries marked on charts.
func (c *ReportConfig) GetHeartRateTicks() []float64 {
	if len(c.HeartRateTicks) == 0 {
		return []float64{95, 114, 133, 152, 171, 190}
	}
	return c.HeartRateTicks
}

// GetRRHistogramBins returns the rr_histogram_bins value or the default.
func (c *ReportConfig) GetRRHistogramBins() int {
	if c.RRHistogramBins == nil {
		return 40
	}
	return *c.RRHistogramBins
}

// GetRRStatsBins returns the rr_stats_bins value or the default.
func (c *ReportConfig) GetRRStatsBins() int {
	if c.RRStatsBins == nil {
		return 50
	}
	return *c.RRStatsBins
}

// GetRRBandSigma returns the rr_band_sigma value or the default.
func (c *ReportConfig) GetRRBandSigma() float64 {
	if c.RRBandSigma == nil {
		return 2
	}
	return *c.RRBandSigma
}

// GetSamplePeriod returns the sample_period value or the default.
func (c *ReportConfig) GetSamplePeriod() float64 {
	if c.SamplePeriod == nil {
		return 0.01
	}
	return *c.SamplePeriod
}

// GetWindowPeriod returns the window_period value or the default.
func (c *ReportConfig) GetWindowPeriod() float64 {
	if c.WindowPeriod == nil {
		return 3.0
	}
	return *c.WindowPeriod
}

// GetPeakFraction returns the peak_fraction value or the default.
func (c *ReportConfig) GetPeakFraction() float64 {
	if c.PeakFraction == nil {
		return 0.9
	}
	return *c.PeakFraction
}

// GetPeriodicityHead returns the periodicity_head value or the default.
func (c *ReportConfig) GetPeriodicityHead() int {
	if c.PeriodicityHead == nil {
		return 500
	}
	return *c.PeriodicityHead
}

// GetExcerpt returns the half-open sample range of the close-up motion chart.
func (c *ReportConfig) GetExcerpt() (from, to int) {
	from, to = 1200, 2400
	if c.ExcerptFrom != nil {
		from = *c.ExcerptFrom
	}
	if c.ExcerptTo != nil {
		to = *c.ExcerptTo
	}
	return from, to
}

// GetOverviewSamples returns the overview_samples value or the default.
func (c *ReportConfig) GetOverviewSamples() int {
	if c.OverviewSamples == nil {
		return 1500
	}
	return *c.OverviewSamples
}
