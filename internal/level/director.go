package level

// Host is the engine side of the generator: it owns the live platforms and
// the camera. The game world implements it; tests use a fake.
type Host interface {
	ReadCamera() Camera
	Segments() []Segment
	SpawnSegment(seg Segment)
	DestroySegment(id SegmentID)
}

// TickReport summarizes what one Director tick changed.
type TickReport struct {
	Spawned   int
	Destroyed int
	Speed     float64
}

// Director runs the generator against a Host once per tick.
//
// Rows never move in the generator's frame, while hosts scroll them upward.
// The director measures that lift from the deepest live row and shifts the
// camera into the generator's frame and fresh rows back out of it, so
// State.LastGeneratedY keeps growing and no gap opens under the host's rows.
type Director struct {
	gen    *Generator
	state  State
	nextID SegmentID
	lift   float64
}

// NewDirector creates a director starting from the given state.
func NewDirector(gen *Generator, start State) *Director {
	return &Director{gen: gen, state: start}
}

// State returns the generator state after the last tick.
func (d *Director) State() State {
	return d.state
}

// Fill generates ahead without advancing time. Used to populate the level
// before the first tick.
func (d *Director) Fill(h Host) int {
	d.lift = d.measureLift(h.Segments())

	cam := h.ReadCamera()
	cam.Y += d.lift
	cam.CeilingY += d.lift
	state, fresh := d.gen.GenerateAhead(d.state, cam)
	d.state = state

	for i := range fresh {
		fresh[i].Y -= d.lift
	}
	d.spawn(h, fresh)
	return len(fresh)
}

// Lift returns how far the host's rows have risen since they were generated.
func (d *Director) Lift() float64 {
	return d.lift
}

// measureLift compares the deepest live row with the last generated one.
// With nothing live the previous lift stands.
func (d *Director) measureLift(live []Segment) float64 {
	if len(live) == 0 {
		return d.lift
	}
	deepest := live[0].Y
	for _, seg := range live[1:] {
		deepest = max(deepest, seg.Y)
	}
	return d.state.LastGeneratedY - deepest
}

// Tick generates rows ahead of the camera, removes stale segments and
// advances the speed ramp by dt milliseconds.
func (d *Director) Tick(h Host, dt float64) TickReport {
	spawned := d.Fill(h)

	cam := h.ReadCamera()
	current := h.Segments()
	surviving, state := d.gen.PruneAndAdvance(d.state, current, cam.CeilingY, dt)
	d.state = state

	destroyed := 0
	if len(surviving) != len(current) {
		keep := make(map[SegmentID]struct{}, len(surviving))
		for _, seg := range surviving {
			keep[seg.ID] = struct{}{}
		}
		for _, seg := range current {
			if _, ok := keep[seg.ID]; !ok {
				h.DestroySegment(seg.ID)
				destroyed++
			}
		}
	}

	return TickReport{Spawned: spawned, Destroyed: destroyed, Speed: d.state.Speed}
}

func (d *Director) spawn(h Host, segs []Segment) {
	for _, seg := range segs {
		d.nextID++
		seg.ID = d.nextID
		h.SpawnSegment(seg)
	}
}
