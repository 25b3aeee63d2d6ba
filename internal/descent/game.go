// Package descent implements the endless faller. The player drops through
// rows of rising platforms and must find the holes before the ceiling, which
// rides the top of the camera, catches them.
package descent

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/descent/internal/config"
	"github.com/vovakirdan/descent/internal/core"
	"github.com/vovakirdan/descent/internal/level"
)

// Game implements the Descent game logic.
type Game struct {
	cfg        config.DescentConfig
	runtime    core.RuntimeConfig
	difficulty config.Ramp

	world    *World
	gen      *level.Generator
	director *level.Director
	player   Player

	score     int     // deepest floor(player.Y) reached
	skyOffset float64 // parallax scroll of the background
	stars     []star

	steerDir  int // direction held from the last left/right press
	steerLeft int // ticks of steering left before the press expires

	gameOver  bool
	paused    bool
	tickCount int
}

type star struct {
	x, y float64 // position inside one view-sized tile
}

// New creates a game with the given configuration.
// Call Reset before the first Step.
func New(cfg config.DescentConfig) *Game {
	return &Game{cfg: cfg}
}

// NewWithPreset creates a game with a difficulty preset applied to cfg.
func NewWithPreset(cfg config.DescentConfig, preset config.DifficultyPreset) *Game {
	config.ApplyPreset(&cfg, preset)
	return New(cfg)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "descent"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Descent"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.DescentConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	viewW, viewH := g.view()

	g.difficulty = config.NewRamp(g.cfg.Difficulty)
	g.world = NewWorld(viewW, viewH, g.cfg.Platform.Width, g.cfg.Platform.Height)
	g.gen = level.NewGenerator(g.cfg.Params(), level.NewRandSource(runtime.Seed))
	g.director = level.NewDirector(g.gen, level.State{
		LastGeneratedY: g.cfg.Level.StartY,
		Speed:          g.cfg.InitialSpeed(),
	})

	g.player = Player{
		X: viewW / 2,
		Y: g.cfg.Player.StartY,
		W: g.cfg.Player.Width,
		H: g.cfg.Player.Height,
	}

	g.score = 0
	g.skyOffset = 0
	g.steerDir = 0
	g.steerLeft = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	g.seedStars(runtime.Seed, viewW, viewH)
	g.director.Fill(g.world)
}

// Resize applies new screen and canvas dimensions without restarting.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.world == nil {
		g.Reset(runtime)
		return
	}
	g.runtime = runtime
	viewW, viewH := g.view()
	g.world.SetView(viewW, viewH)
	g.player.wrap(viewW)
	g.seedStars(runtime.Seed, viewW, viewH)
	if !g.gameOver {
		g.director.Fill(g.world)
	}
}

// view returns the logical canvas size, falling back to landscape.
func (g *Game) view() (float64, float64) {
	w, h := g.runtime.ViewW, g.runtime.ViewH
	if w <= 0 || h <= 0 {
		return g.cfg.Viewport.Landscape.Width, g.cfg.Viewport.Landscape.Height
	}
	return w, h
}

func (g *Game) seedStars(seed int64, viewW, viewH float64) {
	n := int(float64(g.cfg.Background.Stars) * viewW * viewH / 1e6)
	rng := rand.New(rand.NewSource(seed ^ 0x5eed))
	g.stars = make([]star, n)
	for i := range g.stars {
		g.stars[i] = star{x: rng.Float64() * viewW, y: rng.Float64() * viewH}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	ms := g.runtime.TickMillis()
	dt := ms / 1000

	steer := g.steer(in)

	// Level first, then the resulting speed drives platforms and sky.
	report := g.director.Tick(g.world, ms)
	g.world.ApplySpeed(report.Speed)
	g.world.Move(dt)
	g.skyOffset += report.Speed * dt * g.cfg.Background.Parallax

	g.player.integrate(g.cfg.Player, steer, dt)
	g.player.collide(g.world.Boxes(), -report.Speed, g.cfg.Player.Bounce)

	viewW, _ := g.view()
	g.player.wrap(viewW)
	g.world.Follow(g.player.Y, g.cfg.Player.FollowOffset)

	if depth := int(math.Floor(g.player.Y)); depth > g.score {
		g.score = depth
	}

	// Follow keeps the player within FollowOffset of the camera top, so the
	// ceiling is the only way out.
	if g.player.Y < g.world.ReadCamera().CeilingY {
		g.gameOver = true
	}

	return core.StepResult{
		State:     g.State(),
		Spawned:   report.Spawned,
		Destroyed: report.Destroyed,
	}
}

// steer turns key presses into a direction. A press keeps steering for
// HoldTicks ticks since terminals report no key releases.
func (g *Game) steer(in core.InputFrame) int {
	if in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		g.steerDir = in.Steer()
		g.steerLeft = max(g.cfg.Controls.HoldTicks, 1)
	}
	if g.steerLeft == 0 {
		return 0
	}
	g.steerLeft--
	return g.steerDir
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	speed := 0.0
	if g.director != nil {
		speed = g.director.State().Speed
	}
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Speed:    speed,
		Ticks:    g.tickCount,
	}
}
