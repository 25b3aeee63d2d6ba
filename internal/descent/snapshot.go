package descent

import (
	"math"

	"github.com/vovakirdan/descent/internal/core"
	"github.com/vovakirdan/descent/internal/level"
)

// Snapshot is a world-space view of the game for renderers that draw in
// pixels rather than cells, and for determinism checks.
type Snapshot struct {
	Tick      int
	Score     int
	Speed     float64
	Level     float64 // difficulty level, 0 to 1
	GameOver  bool
	Paused    bool
	Camera    level.Camera
	Player    core.Box
	Platforms []core.Box
	Stars     [][2]float64 // view-relative star positions after parallax
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	viewW, viewH := g.view()
	return Snapshot{
		Tick:      g.tickCount,
		Score:     g.score,
		Speed:     g.director.State().Speed,
		Level:     g.difficulty.Level(g.score, g.tickCount),
		GameOver:  g.gameOver,
		Paused:    g.paused,
		Camera:    g.world.ReadCamera(),
		Player:    g.player.Box(),
		Platforms: g.world.Boxes(),
		Stars:     g.skyPositions(viewW, viewH),
	}
}

// skyPositions scrolls the star tile upward by the parallax offset.
func (g *Game) skyPositions(viewW, viewH float64) [][2]float64 {
	out := make([][2]float64, len(g.stars))
	for i, s := range g.stars {
		y := math.Mod(s.y-g.skyOffset, viewH)
		if y < 0 {
			y += viewH
		}
		out[i] = [2]float64{math.Min(s.x, viewW), y}
	}
	return out
}
