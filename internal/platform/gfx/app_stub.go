//go:build !ebiten && !mobile

package gfx

// Run reports that the window frontend is not compiled in.
func Run(Options) error {
	return ErrNoWindow
}
