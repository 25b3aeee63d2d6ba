package tui

import (
	"fmt"

	"github.com/vovakirdan/descent/internal/core"
	"github.com/vovakirdan/descent/internal/viewport"
)

// fitCanvas sizes the logical canvas for a terminal of cols x rows cells.
// The terminal is measured in pixels through the configured cell metrics so
// the design aspect ratio survives the non-square cells. It returns the
// updated runtime config and the resolved orientation.
func fitCanvas(cfg core.RuntimeConfig, opts Options, cols, rows int) (core.RuntimeConfig, viewport.Orientation, error) {
	winW, winH := opts.Config.Viewport.Cell.Window(cols, rows)
	o := opts.Orientation.Resolve(winW, winH)

	size, err := opts.Config.Sizer().ComputeSize(o, winW, winH)
	if err != nil {
		return cfg, o, fmt.Errorf("tui: terminal %dx%d: %w", cols, rows, err)
	}

	cfg.ScreenW = cols
	cfg.ScreenH = rows
	cfg.ViewW = size.Width
	cfg.ViewH = size.Height
	return cfg, o, nil
}
