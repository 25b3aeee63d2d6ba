package viewport

import (
	"errors"
	"fmt"
)

// ErrInvalidWindow is returned for non-positive window dimensions.
// Callers skip the resize when they see it.
var ErrInvalidWindow = errors.New("viewport: window dimensions must be positive")

// Size is the logical canvas chosen for a window.
type Size struct {
	Width  float64
	Height float64
	Area   GameArea
}

// Sizer computes canvas sizes against a pair of presets.
// The zero value is not usable; use NewSizer or DefaultSizer.
type Sizer struct {
	portrait  GameArea
	landscape GameArea
}

// NewSizer creates a sizer for custom presets.
func NewSizer(portrait, landscape GameArea) Sizer {
	return Sizer{portrait: portrait, landscape: landscape}
}

// DefaultSizer uses the 720x1280 / 1280x720 design resolutions.
func DefaultSizer() Sizer {
	return NewSizer(PortraitArea, LandscapeArea)
}

// ComputeSize is DefaultSizer().ComputeSize.
func ComputeSize(o Orientation, windowW, windowH float64) (Size, error) {
	return DefaultSizer().ComputeSize(o, windowW, windowH)
}

// ComputeSize maps a window to the logical canvas for the orientation.
//
// Portrait keeps the design width and grows the height on windows narrower
// than the design ratio. Landscape keeps the design height and grows the
// width on windows wider than the design ratio. Auto is resolved from the
// window shape first.
func (s Sizer) ComputeSize(o Orientation, windowW, windowH float64) (Size, error) {
	if windowW <= 0 || windowH <= 0 {
		return Size{}, fmt.Errorf("%w: %vx%v", ErrInvalidWindow, windowW, windowH)
	}

	o = o.Resolve(windowW, windowH)
	ratio := windowW / windowH

	if o == Portrait {
		area := s.portrait
		height := area.W / ratio
		if ratio > area.Factor {
			height = area.H
		}
		return Size{Width: area.W, Height: height, Area: area}, nil
	}

	area := s.landscape
	width := area.W
	if ratio > area.Factor {
		width = area.H * ratio
	}
	return Size{Width: width, Height: area.H, Area: area}, nil
}
