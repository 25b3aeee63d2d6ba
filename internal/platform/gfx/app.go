//go:build ebiten || mobile

package gfx

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/descent/internal/core"
	"github.com/vovakirdan/descent/internal/descent"
	"github.com/vovakirdan/descent/internal/shell"
	"github.com/vovakirdan/descent/internal/storage"
)

// App adapts a Descent game to the ebiten.Game interface.
type App struct {
	opts     Options
	game     *descent.Game
	canvas   canvas
	runtime  core.RuntimeConfig
	launcher *shell.Launcher

	started bool // game reset and orientation lock requested
	frame   core.InputFrame
	state   core.GameState
	saved   bool

	touchIDs []ebiten.TouchID
	pointers []Pointer
}

// New constructs an App. The run starts after the first Layout call with a
// usable window and the shell's answer to the orientation lock.
func New(opts Options) *App {
	opts = opts.withDefaults()

	runtime := core.DefaultConfig()
	runtime.TickRate = opts.TickRate
	runtime.Seed = opts.Seed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	return &App{
		opts:     opts,
		game:     descent.NewWithPreset(opts.Config, opts.Preset),
		canvas:   newCanvas(opts.Config.Sizer(), opts.Orientation),
		runtime:  runtime,
		launcher: shell.NewLauncher(opts.Shell, opts.Logger),
		frame:    core.NewInputFrame(),
	}
}

// Update handles per-frame input and advances the simulation.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.toggleFullscreen()
	}

	if !a.started || !a.launcher.Ready() {
		return nil
	}

	a.frame.Clear()
	a.readKeys()
	a.readPointers()
	ApplyPointers(&a.frame, a.pointers, a.runtime.ViewW, a.runtime.ViewH, a.state.GameOver)

	if a.state.GameOver {
		if a.frame.Has(core.ActionRestart) {
			a.restart()
		}
		return nil
	}

	result := a.game.Step(a.frame)
	a.state = result.State

	if a.state.GameOver && !a.saved {
		a.saveRun()
		a.saved = true
	}
	return nil
}

func (a *App) readKeys() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		a.frame.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		a.frame.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.frame.Set(core.ActionRestart)
	}
}

// readPointers collects touches first, then the left mouse button.
func (a *App) readPointers() {
	a.pointers = a.pointers[:0]

	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	for _, id := range a.touchIDs {
		x, y := ebiten.TouchPosition(id)
		a.pointers = append(a.pointers, Pointer{
			X:    float64(x),
			Y:    float64(y),
			Just: inpututil.TouchPressDuration(id) == 1,
		})
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.pointers = append(a.pointers, Pointer{
			X:    float64(x),
			Y:    float64(y),
			Just: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		})
	}
}

func (a *App) restart() {
	a.runtime.Seed = time.Now().UnixNano()
	a.game.Reset(a.runtime)
	a.state = a.game.State()
	a.saved = false
}

func (a *App) toggleFullscreen() {
	on := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(on)
	if a.opts.Settings == nil {
		return
	}
	a.opts.Settings.SetFullscreen(on)
	if err := a.opts.Settings.Save(); err != nil {
		a.opts.Logger.Warn("could not save settings", "err", err)
	}
}

// saveRun records the finished run in the store and the device settings.
func (a *App) saveRun() {
	if a.state.Score <= 0 {
		return
	}

	if a.opts.Store != nil {
		_, err := a.opts.Store.SaveRun(storage.Run{
			Difficulty:  string(a.opts.Preset),
			Orientation: a.canvas.resolved.String(),
			Seed:        a.runtime.Seed,
			Score:       a.state.Score,
			Ticks:       a.state.Ticks,
		})
		if err != nil {
			a.opts.Logger.Warn("could not save run", "err", err)
		}
	}

	if a.opts.Settings != nil && a.opts.Settings.RecordScore(a.state.Score) {
		if err := a.opts.Settings.Save(); err != nil {
			a.opts.Logger.Warn("could not save best score", "err", err)
		}
	}
}

// Layout fits the canvas to the window. The first usable size starts the
// run; later sizes resize it in place.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	changed, err := a.canvas.fit(outsideWidth, outsideHeight)
	if err != nil {
		a.opts.Logger.Debug("resize skipped", "err", err)
		return a.canvas.screen()
	}

	if changed {
		a.runtime.ViewW = a.canvas.size.Width
		a.runtime.ViewH = a.canvas.size.Height
		a.runtime.ScreenW, a.runtime.ScreenH = a.canvas.screen()

		if a.started {
			a.game.Resize(a.runtime)
		} else {
			a.game.Reset(a.runtime)
			a.state = a.game.State()
			a.started = true
			a.launcher.Start(a.canvas.resolved, nil)
		}
	}
	return a.canvas.screen()
}

// Draw renders the current game snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(Background)
	if !a.started || !a.launcher.Ready() {
		ebitenutil.DebugPrint(screen, "Starting...")
		return
	}

	snap := a.game.Snapshot()
	top := snap.Camera.Y

	sky := Palette(core.ColorSky)
	for _, s := range snap.Stars {
		vector.DrawFilledRect(screen, float32(s[0]), float32(s[1]), 3, 3, sky, false)
	}

	platform := Palette(core.ColorPlatform)
	for _, b := range snap.Platforms {
		drawBox(screen, b, top, platform)
	}
	drawBox(screen, snap.Player, top, Palette(core.ColorPlayer))

	// Ceiling sits on the top edge of the camera.
	vector.DrawFilledRect(screen, 0, float32(snap.Camera.CeilingY-top), float32(snap.Camera.Width), 8, Palette(core.ColorCeiling), false)

	a.drawHUD(screen, snap)
}

func drawBox(dst *ebiten.Image, b core.Box, top float64, clr color.Color) {
	vector.DrawFilledRect(dst,
		float32(b.Left()), float32(b.Top()-top),
		float32(b.W), float32(b.H),
		clr, false)
}

func (a *App) drawHUD(screen *ebiten.Image, snap descent.Snapshot) {
	w, h := snap.Camera.Width, snap.Camera.Height

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 12, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lv %.0f%%  Spd %.1f", snap.Level*100, snap.Speed), 12, 32)

	side := PauseButtonSide(w, h)
	vector.StrokeRect(screen, float32(w-side+8), 16, float32(side-24), float32(side-24), 2, Palette(core.ColorHUD), false)
	ebitenutil.DebugPrintAt(screen, "II", int(w-side/2)-10, int(side/2)-4)

	switch {
	case snap.GameOver:
		lines := fmt.Sprintf("GAME OVER\n\nDepth: %d\nTap or press R to restart", snap.Score)
		ebitenutil.DebugPrintAt(screen, lines, int(w/2)-72, int(h/2)-24)
	case snap.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(w/2)-18, int(h/2))
	}
}
