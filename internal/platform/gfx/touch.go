package gfx

import (
	"math"

	"github.com/vovakirdan/descent/internal/core"
)

// Zone is a touch region of the canvas.
type Zone int

const (
	ZoneNone  Zone = iota
	ZoneLeft       // left half steers left
	ZoneRight      // right half steers right
	ZonePause      // square button in the top-right corner
)

// pauseButtonShare is the pause button side as a share of the shorter
// canvas edge.
const pauseButtonShare = 0.12

// Pointer is one active touch or mouse press in canvas coordinates.
type Pointer struct {
	X, Y float64
	Just bool // pressed this tick
}

// ZoneAt returns the zone under (x, y) on a w x h canvas.
func ZoneAt(x, y, w, h float64) Zone {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x >= w || y >= h {
		return ZoneNone
	}
	side := PauseButtonSide(w, h)
	if x >= w-side && y < side {
		return ZonePause
	}
	if x < w/2 {
		return ZoneLeft
	}
	return ZoneRight
}

// PauseButtonSide returns the side of the pause button on a w x h canvas.
func PauseButtonSide(w, h float64) float64 {
	return math.Min(w, h) * pauseButtonShare
}

// ApplyPointers folds pointers into frame. A held pointer keeps steering,
// pause needs a fresh press. After game over any fresh press restarts.
func ApplyPointers(frame *core.InputFrame, pointers []Pointer, w, h float64, gameOver bool) {
	for _, p := range pointers {
		zone := ZoneAt(p.X, p.Y, w, h)
		if zone == ZoneNone {
			continue
		}
		if gameOver {
			if p.Just {
				frame.Set(core.ActionRestart)
			}
			continue
		}

		switch zone {
		case ZoneLeft:
			frame.Set(core.ActionLeft)
		case ZoneRight:
			frame.Set(core.ActionRight)
		case ZonePause:
			if p.Just {
				frame.Set(core.ActionPause)
			}
		}
	}
}
