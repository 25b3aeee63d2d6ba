package config

import (
	_ "embed"

	"github.com/vovakirdan/descent/internal/viewport"
)

//go:embed defaults/descent.yaml
var defaultDescentYAML []byte

// DefaultDescentConfig returns the default configuration.
func DefaultDescentConfig() DescentConfig {
	return DescentConfig{
		Viewport: ViewportConfig{
			Orientation: viewport.Auto,
			Portrait:    AreaConfig{Width: 720, Height: 1280},
			Landscape:   AreaConfig{Width: 1280, Height: 720},
			Cell:        viewport.DefaultCellMetrics(),
		},
		Level: LevelConfig{
			StartY:        120,
			RowSpacing:    120,
			Lookahead:     600,
			EdgeMargin:    100,
			GapHalf:       50,
			RightOffset:   150,
			GapStepMin:    11,
			GapStepMax:    16,
			GapStep:       10,
			ScaleX:        0.66,
			CeilingMargin: 50,
		},
		Speed: SpeedConfig{
			Initial:          50,
			Increment:        0.005,
			ReferenceFrameMs: 1000.0 / 60.0,
			Max:              200,
		},
		Player: PlayerConfig{
			Width:        32,
			Height:       48,
			StartY:       100,
			Gravity:      300,
			RunSpeed:     200,
			Bounce:       0.2,
			MaxFallSpeed: 600,
			FollowOffset: 300,
		},
		Platform: PlatformConfig{
			Width:  400,
			Height: 32,
		},
		Background: BackgroundConfig{
			Parallax: 0.5,
			Stars:    40,
		},
		Controls: ControlsConfig{
			HoldTicks: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDescentYAML
}
