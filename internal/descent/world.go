package descent

import (
	"github.com/vovakirdan/descent/internal/core"
	"github.com/vovakirdan/descent/internal/level"
)

// World owns the live platforms and the camera. It is the level.Host the
// director spawns into and prunes from.
type World struct {
	platforms []level.Segment // in spawn order
	index     map[level.SegmentID]int
	cam       level.Camera
	baseW     float64 // unscaled platform width
	baseH     float64
}

// NewWorld creates an empty world with a camera at the top of the shaft.
func NewWorld(viewW, viewH, platformW, platformH float64) *World {
	return &World{
		index: make(map[level.SegmentID]int),
		cam:   level.Camera{Width: viewW, Height: viewH},
		baseW: platformW,
		baseH: platformH,
	}
}

// ReadCamera implements level.Host.
func (w *World) ReadCamera() level.Camera {
	return w.cam
}

// Segments implements level.Host. The returned slice is a copy.
func (w *World) Segments() []level.Segment {
	out := make([]level.Segment, len(w.platforms))
	copy(out, w.platforms)
	return out
}

// SpawnSegment implements level.Host.
func (w *World) SpawnSegment(seg level.Segment) {
	w.index[seg.ID] = len(w.platforms)
	w.platforms = append(w.platforms, seg)
}

// DestroySegment implements level.Host. Unknown IDs are ignored.
func (w *World) DestroySegment(id level.SegmentID) {
	i, ok := w.index[id]
	if !ok {
		return
	}
	w.platforms = append(w.platforms[:i], w.platforms[i+1:]...)
	delete(w.index, id)
	for j := i; j < len(w.platforms); j++ {
		w.index[w.platforms[j].ID] = j
	}
}

// Len returns the number of live platforms.
func (w *World) Len() int {
	return len(w.platforms)
}

// ApplySpeed sets every platform's velocity to the current scroll speed.
func (w *World) ApplySpeed(speed float64) {
	for i := range w.platforms {
		w.platforms[i].VelocityY = -speed
	}
}

// Move integrates platform velocities over dt seconds.
func (w *World) Move(dt float64) {
	for i := range w.platforms {
		w.platforms[i].Y += w.platforms[i].VelocityY * dt
	}
}

// Box returns the collision box of a segment.
func (w *World) Box(seg level.Segment) core.Box {
	return core.Box{X: seg.X, Y: seg.Y, W: w.baseW * seg.ScaleX, H: w.baseH}
}

// Boxes returns collision boxes for every live platform.
func (w *World) Boxes() []core.Box {
	out := make([]core.Box, len(w.platforms))
	for i, seg := range w.platforms {
		out[i] = w.Box(seg)
	}
	return out
}

// Follow scrolls the camera down so the target stays offset below its top.
// The camera never scrolls back up. The ceiling rides the top edge.
func (w *World) Follow(targetY, offset float64) {
	w.cam.Y = max(w.cam.Y, targetY-offset)
	w.cam.CeilingY = w.cam.Y
}

// SetView changes the visible area without moving the camera.
func (w *World) SetView(viewW, viewH float64) {
	w.cam.Width = viewW
	w.cam.Height = viewH
}
