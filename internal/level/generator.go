package level

import "math"

// State is the only mutable state the generator owns.
type State struct {
	LastGeneratedY float64 // world Y of the lowest row generated so far
	Speed          float64 // platform scroll speed, units per second
}

// Generator produces rows of platform segments.
type Generator struct {
	params Params
	src    Source
}

// NewGenerator creates a generator drawing from src.
func NewGenerator(p Params, src Source) *Generator {
	return &Generator{params: p.normalized(), src: src}
}

// Params returns the generator's tuning after normalization.
func (g *Generator) Params() Params {
	return g.params
}

// Bound returns the world Y rows must reach for the given camera.
func (g *Generator) Bound(cam Camera) float64 {
	return cam.Y + cam.Height + g.params.Lookahead
}

// GenerateAhead emits rows until the lowest row reaches Bound(cam).
// Rows are spaced RowSpacing apart, starting one spacing below
// s.LastGeneratedY. Segment IDs are left zero for the host to assign.
func (g *Generator) GenerateAhead(s State, cam Camera) (State, []Segment) {
	bound := g.Bound(cam)
	var out []Segment

	lo := g.params.EdgeMargin
	hi := int(math.Floor(cam.Width)) - g.params.EdgeMargin
	if hi < lo {
		hi = lo
	}

	for s.LastGeneratedY < bound {
		s.LastGeneratedY += g.params.RowSpacing
		x := float64(g.src.Between(lo, hi))
		out = append(out, g.Row(x, s.LastGeneratedY, s.Speed)...)
	}
	return s, out
}

// Row builds one row at (x, y). A fair coin decides whether the row has a
// hole: with a hole the row is a left and a right piece around it, without
// one it is a single centred piece.
func (g *Generator) Row(x, y, speed float64) []Segment {
	p := g.params
	piece := func(px float64) Segment {
		return Segment{X: px, Y: y, VelocityY: -speed, ScaleX: p.ScaleX}
	}

	if g.src.Between(0, 1) == 0 {
		distance := p.GapStep * float64(g.src.Between(p.GapStepMin, p.GapStepMax))
		return []Segment{
			piece(x - p.GapHalf - distance),
			piece(x + p.RightOffset),
		}
	}
	return []Segment{piece(x)}
}

// PruneAndAdvance drops segments more than CeilingMargin above ceilingY and
// advances the speed ramp by dt milliseconds. The input slice is not
// modified.
func (g *Generator) PruneAndAdvance(s State, segments []Segment, ceilingY, dt float64) ([]Segment, State) {
	return PruneAndAdvance(g.params, s, segments, ceilingY, dt)
}

// PruneAndAdvance is the stateless form of Generator.PruneAndAdvance.
func PruneAndAdvance(p Params, s State, segments []Segment, ceilingY, dt float64) ([]Segment, State) {
	p = p.normalized()
	limit := ceilingY - p.CeilingMargin

	surviving := make([]Segment, 0, len(segments))
	for _, seg := range segments {
		if seg.Y < limit {
			continue
		}
		surviving = append(surviving, seg)
	}

	if dt > 0 {
		s.Speed += p.SpeedIncrement * (dt / p.ReferenceFrameMs)
	}
	if s.Speed > p.MaxSpeed {
		s.Speed = p.MaxSpeed
	}
	return surviving, s
}
