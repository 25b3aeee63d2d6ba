// Package level generates the endless column of platforms the player falls
// through. It owns no entities: it produces plain Segment values ahead of the
// camera, filters out the ones that scrolled past the ceiling, and ramps the
// scroll speed. Hosts (the game world, tests) receive the results through the
// Host interface.
package level

// SegmentID identifies a spawned segment for the lifetime of a run.
type SegmentID uint64

// Segment is one rectangular platform piece.
// X and Y name its centre in world units; Y grows downward.
type Segment struct {
	ID        SegmentID
	X         float64
	Y         float64
	VelocityY float64 // negative: moving up, toward the ceiling
	ScaleX    float64 // horizontal scale applied to the base platform width
}

// Camera is the part of the view the generator needs.
type Camera struct {
	Y        float64 // scroll offset; world Y of the top edge of the view
	Width    float64 // logical canvas width
	Height   float64 // logical canvas height
	CeilingY float64 // world Y of the ceiling boundary
}
