package viewport

// CellMetrics describes the pixel footprint of one terminal cell.
// Terminal fonts are roughly twice as tall as they are wide, so a window of
// 80x24 cells is closer to 640x384 pixels than to a square grid.
type CellMetrics struct {
	W float64 `yaml:"width"`
	H float64 `yaml:"height"`
}

// DefaultCellMetrics matches a typical 8x16 monospace font.
func DefaultCellMetrics() CellMetrics {
	return CellMetrics{W: 8, H: 16}
}

// Window converts a terminal size in cells to pixel dimensions.
// Unset metrics fall back to the default font.
func (m CellMetrics) Window(cols, rows int) (float64, float64) {
	if m.W <= 0 || m.H <= 0 {
		m = DefaultCellMetrics()
	}
	return float64(cols) * m.W, float64(rows) * m.H
}
