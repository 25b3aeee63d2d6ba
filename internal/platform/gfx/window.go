//go:build ebiten

package gfx

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens a resizable window and plays until it is closed.
func Run(opts Options) error {
	app := New(opts)
	opts = app.opts

	w, h := app.canvas.screen()
	ebiten.SetWindowSize(w/2, h/2)
	ebiten.SetWindowTitle("Descent")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)
	if opts.Settings != nil {
		ebiten.SetFullscreen(opts.Settings.Get().Fullscreen)
	}

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
