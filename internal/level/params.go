package level

// Params holds the generator's tuning. The defaults decide how playable
// the gaps are.
type Params struct {
	RowSpacing float64 // vertical distance between rows
	Lookahead  float64 // how far below the view rows must exist
	EdgeMargin int     // keeps row centres away from the side walls

	GapHalf     float64 // left piece sits this far plus the gap distance left of x
	RightOffset float64 // right piece sits this far right of x
	GapStepMin  int     // gap distance is GapStep * Between(GapStepMin, GapStepMax)
	GapStepMax  int
	GapStep     float64
	ScaleX      float64 // horizontal scale of every piece

	CeilingMargin float64 // segments this far above the ceiling are pruned

	SpeedIncrement   float64 // added once per reference frame
	ReferenceFrameMs float64
	MaxSpeed         float64
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		RowSpacing:       120,
		Lookahead:        600,
		EdgeMargin:       100,
		GapHalf:          50,
		RightOffset:      150,
		GapStepMin:       11,
		GapStepMax:       16,
		GapStep:          10,
		ScaleX:           0.66,
		CeilingMargin:    50,
		SpeedIncrement:   0.005,
		ReferenceFrameMs: 1000.0 / 60.0,
		MaxSpeed:         200,
	}
}

// normalized replaces values that would stall or break the generator.
func (p Params) normalized() Params {
	d := DefaultParams()
	if p.RowSpacing <= 0 {
		p.RowSpacing = d.RowSpacing
	}
	if p.ReferenceFrameMs <= 0 {
		p.ReferenceFrameMs = d.ReferenceFrameMs
	}
	if p.GapStepMax < p.GapStepMin {
		p.GapStepMax = p.GapStepMin
	}
	return p
}
