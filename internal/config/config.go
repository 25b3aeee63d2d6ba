// Package config provides YAML-based game configuration loading and
// difficulty management for Descent.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/descent/internal/viewport"
)

// DescentConfig contains all tuning for the game.
type DescentConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Level      LevelConfig      `yaml:"level"`
	Speed      SpeedConfig      `yaml:"speed"`
	Player     PlayerConfig     `yaml:"player"`
	Platform   PlatformConfig   `yaml:"platform"`
	Background BackgroundConfig `yaml:"background"`
	Controls   ControlsConfig   `yaml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewportConfig defines design resolutions and the preferred orientation.
type ViewportConfig struct {
	Orientation viewport.Orientation `yaml:"orientation"`
	Portrait    AreaConfig           `yaml:"portrait"`
	Landscape   AreaConfig           `yaml:"landscape"`
	Cell        viewport.CellMetrics `yaml:"cell"`
}

// AreaConfig is a design resolution in world units.
type AreaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LevelConfig defines platform row generation.
type LevelConfig struct {
	StartY        float64 `yaml:"start_y"`     // world Y the first row is generated below
	RowSpacing    float64 `yaml:"row_spacing"` // vertical distance between rows
	Lookahead     float64 `yaml:"lookahead"`   // rows exist this far below the view
	EdgeMargin    int     `yaml:"edge_margin"`
	GapHalf       float64 `yaml:"gap_half"`
	RightOffset   float64 `yaml:"right_offset"`
	GapStepMin    int     `yaml:"gap_step_min"`
	GapStepMax    int     `yaml:"gap_step_max"`
	GapStep       float64 `yaml:"gap_step"`
	ScaleX        float64 `yaml:"scale_x"`
	CeilingMargin float64 `yaml:"ceiling_margin"`
}

// SpeedConfig defines the platform scroll speed ramp.
type SpeedConfig struct {
	Initial          float64 `yaml:"initial"`
	Increment        float64 `yaml:"increment"`          // added per reference frame
	ReferenceFrameMs float64 `yaml:"reference_frame_ms"` // frame length the increment is tuned for
	Max              float64 `yaml:"max"`
}

// PlayerConfig defines the falling body.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	StartY       float64 `yaml:"start_y"`
	Gravity      float64 `yaml:"gravity"`   // units per second squared
	RunSpeed     float64 `yaml:"run_speed"` // horizontal units per second
	Bounce       float64 `yaml:"bounce"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	FollowOffset float64 `yaml:"follow_offset"` // camera keeps the player this far below its top
}

// PlatformConfig defines the unscaled platform texture size.
type PlatformConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BackgroundConfig defines the parallax sky.
type BackgroundConfig struct {
	Parallax float64 `yaml:"parallax"` // fraction of platform speed applied to the sky
	Stars    int     `yaml:"stars"`    // stars per 1000x1000 world units
}

// ControlsConfig defines terminal steering.
type ControlsConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // ticks a single key press keeps steering
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// Presets lists every preset in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset parses a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return DifficultyNormal, nil
	}
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return DifficultyNormal, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
