package descent

import (
	"github.com/vovakirdan/descent/internal/config"
	"github.com/vovakirdan/descent/internal/core"
)

// Player is the falling body. X and Y are its centre in world units.
type Player struct {
	X, Y     float64
	VX, VY   float64
	W, H     float64
	OnGround bool
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// integrate applies gravity and steering, then moves the player over dt seconds.
func (p *Player) integrate(cfg config.PlayerConfig, steer int, dt float64) {
	p.VX = float64(steer) * cfg.RunSpeed
	p.VY += cfg.Gravity * dt
	if cfg.MaxFallSpeed > 0 && p.VY > cfg.MaxFallSpeed {
		p.VY = cfg.MaxFallSpeed
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// collide separates the player from every platform it overlaps.
// Platforms are immovable: only the player is pushed. platformVY is the
// shared platform velocity, so a resting player rides upward with them.
func (p *Player) collide(platforms []core.Box, platformVY, bounce float64) {
	p.OnGround = false
	for _, plat := range platforms {
		dx, dy := p.Box().Overlap(plat)
		if dx <= 0 || dy <= 0 {
			continue
		}

		if dy <= dx {
			if p.Y < plat.Y {
				// Landed on top.
				p.Y -= dy
				if rel := p.VY - platformVY; rel > 0 {
					p.VY = platformVY - rel*bounce
				}
				p.OnGround = true
			} else {
				// Hit the underside.
				p.Y += dy
				if p.VY < platformVY {
					p.VY = platformVY
				}
			}
			continue
		}

		if p.X < plat.X {
			p.X -= dx
		} else {
			p.X += dx
		}
		p.VX = 0
	}
}

// wrap moves the player to the opposite edge once its centre leaves the view.
func (p *Player) wrap(width float64) {
	if width <= 0 {
		return
	}
	switch {
	case p.X < 0:
		p.X += width
	case p.X > width:
		p.X -= width
	}
}
