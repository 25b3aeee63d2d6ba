package config

// Ramp places a run on the difficulty curve. The level starts at the
// preset's initial level and climbs to 1 as the run gets deeper, or longer
// with time progression. It sets the speed a run starts at and is shown on
// the HUD; the per-tick speed increase belongs to the level generator.
type Ramp struct {
	cfg   DifficultyConfig
	start float64
}

// NewRamp creates a ramp for cfg. The initial level is clamped to [0, 1].
func NewRamp(cfg DifficultyConfig) Ramp {
	return Ramp{cfg: cfg, start: unit(cfg.InitialLevel)}
}

// Active reports whether the level moves during a run.
func (r Ramp) Active() bool {
	return r.cfg.Enabled && r.cfg.Progression.Type != "none"
}

// Level returns the level for a run that has reached depth after ticks.
func (r Ramp) Level(depth, ticks int) float64 {
	if !r.Active() {
		return r.start
	}

	var reached int
	switch r.cfg.Progression.Type {
	case "score", "":
		reached = depth
	case "time":
		reached = ticks
	default:
		return r.start
	}

	maxAt := max(r.cfg.Progression.MaxAt, 1)
	progress := unit(float64(reached) / float64(maxAt))
	return r.start + progress*(1-r.start)
}

// StartSpeed is the scroll speed at depth zero: the configured initial
// speed raised by the starting level, never above the speed cap.
func (r Ramp) StartSpeed(speed SpeedConfig) float64 {
	boosted := speed.Initial * (1 + r.start*r.cfg.Scaling.SpeedMultiplier)
	return min(speed.Max, boosted)
}

func unit(v float64) float64 {
	return max(0, min(1, v))
}
