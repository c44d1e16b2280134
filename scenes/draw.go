package scenes

import (
	"fmt"
	"image/color"

	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/shared/physics"
	"github.com/grumpus/jam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

var (
	colorPlatform = colornames.Slategray
	colorTimed    = colornames.Darkkhaki
	colorPlayer   = colornames.Skyblue
	colorAiming   = colornames.Lightcyan
	colorSkull    = colornames.Crimson
	colorArrow    = colornames.Gold
	colorStuck    = colornames.Orange
	colorEffect   = colornames.White
	colorOutline  = colornames.Lime
)

// screenRect flips a y-up body into screen space.
func (as *ArenaScene) screenRect(b *physics.Body) (x, y, w, h float32) {
	height := float64(as.sim.Config().World.Height)
	return float32(b.X), float32(height - b.Top()), float32(b.W), float32(b.H)
}

func (as *ArenaScene) fillBody(screen *ebiten.Image, b *physics.Body, c color.Color) {
	x, y, w, h := as.screenRect(b)
	vector.FillRect(screen, x, y, w, h, c, false)
}

func (as *ArenaScene) drawPlatforms(_ *ecs.ECS, screen *ebiten.Image) {
	tags.Platform.Each(as.sim.World(), func(e *donburi.Entry) {
		c := colorPlatform
		if !components.Platform.Get(e).Permanent {
			c = colorTimed
		}
		as.fillBody(screen, components.Body.Get(e), c)
	})
}

func (as *ArenaScene) drawBodies(_ *ecs.ECS, screen *ebiten.Image) {
	world := as.sim.World()
	tags.Enemy.Each(world, func(e *donburi.Entry) {
		as.fillBody(screen, components.Body.Get(e), colorSkull)
	})
	tags.Arrow.Each(world, func(e *donburi.Entry) {
		c := colorArrow
		if components.Arrow.Get(e).Dead {
			c = colorStuck
		}
		as.fillBody(screen, components.Body.Get(e), c)
	})
	tags.Player.Each(world, func(e *donburi.Entry) {
		c := colorPlayer
		if components.Player.Get(e).State == config.StateAim {
			c = colorAiming
		}
		as.fillBody(screen, components.Body.Get(e), c)
	})
}

func (as *ArenaScene) drawEffects(_ *ecs.ECS, screen *ebiten.Image) {
	cfg := as.sim.Config()
	height := float64(cfg.World.Height)
	tags.Effect.Each(as.sim.World(), func(e *donburi.Entry) {
		effect := components.Effect.Get(e)
		anim := components.Animation.Get(e)
		radius := float32(6 + 3*anim.Frame(cfg.Animation(effect.Key)))
		vector.DrawFilledCircle(screen,
			float32(effect.X), float32(height-effect.Y),
			radius, fade(colorEffect, effect.Alpha), true)
	})
}

// fade scales c by alpha, returning a premultiplied color.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func (as *ArenaScene) drawDebug(_ *ecs.ECS, screen *ebiten.Image) {
	if !as.sim.Config().Debug.DrawBodies {
		return
	}
	tags.Physics.Each(as.sim.World(), func(e *donburi.Entry) {
		x, y, w, h := as.screenRect(components.Body.Get(e))
		vector.StrokeRect(screen, x, y, w, h, 1, colorOutline, false)
	})
}

func (as *ArenaScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	text := fmt.Sprintf("SCORE %d  BEST %d", as.sim.Score(), as.best.Best)
	if e, ok := as.sim.Player(); ok {
		p := components.Player.Get(e)
		text += fmt.Sprintf("  ARROWS %d  %s", p.Ammo, p.State)
		if p.State == config.StateAim {
			aimTime := as.sim.Config().Player.AimTime
			text += fmt.Sprintf("  CHARGE %3.0f%%", 100*(aimTime-p.AimClock)/aimTime)
		}
	}
	ebitenutil.DebugPrintAt(screen, text, 8, 8)

	if as.sim.Over() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to restart", 8, 24)
	}
	if as.sim.Config().Debug.DrawBodies {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  tick %d", ebiten.ActualTPS(), as.sim.Ticks()), 8, 40)
	}
}
