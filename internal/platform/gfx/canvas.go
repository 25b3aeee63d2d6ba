package gfx

import (
	"fmt"
	"math"

	"github.com/vovakirdan/descent/internal/viewport"
)

// canvas tracks the logical canvas chosen for the current window.
type canvas struct {
	sizer       viewport.Sizer
	orientation viewport.Orientation // requested, may be Auto

	outsideW, outsideH int
	size               viewport.Size
	resolved           viewport.Orientation
	valid              bool
}

func newCanvas(sizer viewport.Sizer, o viewport.Orientation) canvas {
	return canvas{sizer: sizer, orientation: o}
}

// fit sizes the canvas for a window of outsideW x outsideH and reports
// whether the canvas changed. An invalid window keeps the previous canvas.
func (c *canvas) fit(outsideW, outsideH int) (bool, error) {
	if c.valid && outsideW == c.outsideW && outsideH == c.outsideH {
		return false, nil
	}

	w, h := float64(outsideW), float64(outsideH)
	o := c.orientation.Resolve(w, h)
	size, err := c.sizer.ComputeSize(o, w, h)
	if err != nil {
		return false, fmt.Errorf("gfx: window %dx%d: %w", outsideW, outsideH, err)
	}

	changed := !c.valid || size != c.size
	c.outsideW, c.outsideH = outsideW, outsideH
	c.size = size
	c.resolved = o
	c.valid = true
	return changed, nil
}

// screen returns the canvas size in whole pixels. Before the first fit it
// falls back to the landscape design size.
func (c *canvas) screen() (int, int) {
	if !c.valid {
		return 1280, 720
	}
	return int(math.Ceil(c.size.Width)), int(math.Ceil(c.size.Height))
}
