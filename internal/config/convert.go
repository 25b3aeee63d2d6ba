package config

import (
	"github.com/vovakirdan/descent/internal/level"
	"github.com/vovakirdan/descent/internal/viewport"
)

// Params converts the level and speed sections to generator tuning.
func (c DescentConfig) Params() level.Params {
	return level.Params{
		RowSpacing:       c.Level.RowSpacing,
		Lookahead:        c.Level.Lookahead,
		EdgeMargin:       c.Level.EdgeMargin,
		GapHalf:          c.Level.GapHalf,
		RightOffset:      c.Level.RightOffset,
		GapStepMin:       c.Level.GapStepMin,
		GapStepMax:       c.Level.GapStepMax,
		GapStep:          c.Level.GapStep,
		ScaleX:           c.Level.ScaleX,
		CeilingMargin:    c.Level.CeilingMargin,
		SpeedIncrement:   c.Speed.Increment,
		ReferenceFrameMs: c.Speed.ReferenceFrameMs,
		MaxSpeed:         c.Speed.Max,
	}
}

// Sizer builds a viewport sizer from the configured design resolutions.
func (c DescentConfig) Sizer() viewport.Sizer {
	return viewport.NewSizer(
		viewport.NewGameArea(c.Viewport.Portrait.Width, c.Viewport.Portrait.Height),
		viewport.NewGameArea(c.Viewport.Landscape.Width, c.Viewport.Landscape.Height),
	)
}

// InitialSpeed is the scroll speed a fresh run starts at, raised by the
// initial difficulty level.
func (c DescentConfig) InitialSpeed() float64 {
	return NewRamp(c.Difficulty).StartSpeed(c.Speed)
}
