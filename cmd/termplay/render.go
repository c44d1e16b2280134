package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/game"
	"github.com/grumpus/jam/shared/physics"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

var (
	stylePlatform = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleTimed    = tcell.StyleDefault.Foreground(tcell.ColorDarkKhaki)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorSkyblue).Bold(true)
	styleSkull    = tcell.StyleDefault.Foreground(tcell.ColorCrimson).Bold(true)
	styleArrow    = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleEffect   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// grid maps arena pixels onto terminal cells. Row 0 is reserved for the HUD.
type grid struct {
	cols, rows   int
	cellW, cellH float64
	height       float64
}

func newGrid(cols, rows int, arenaW, arenaH int) grid {
	if cols < 1 {
		cols = 1
	}
	rows-- // HUD line
	if rows < 1 {
		rows = 1
	}
	return grid{
		cols:   cols,
		rows:   rows,
		cellW:  float64(arenaW) / float64(cols),
		cellH:  float64(arenaH) / float64(rows),
		height: float64(arenaH),
	}
}

// cells returns the inclusive cell span covered by b, clipped to the grid.
// ok is false when b is entirely off-screen.
func (g grid) cells(b *physics.Body) (c0, r0, c1, r1 int, ok bool) {
	c0 = int(math.Floor(b.X / g.cellW))
	c1 = int(math.Ceil(b.Right()/g.cellW)) - 1
	r0 = int(math.Floor((g.height - b.Top()) / g.cellH))
	r1 = int(math.Ceil((g.height-b.Y)/g.cellH)) - 1
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	if c1 < 0 || r1 < 0 || c0 >= g.cols || r0 >= g.rows {
		return 0, 0, 0, 0, false
	}
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, g.cols-1), min(r1, g.rows-1)
	return c0, r0, c1, r1, true
}

func (g grid) point(x, y float64) (col, row int, ok bool) {
	col = int(x / g.cellW)
	row = int((g.height - y) / g.cellH)
	return col, row, col >= 0 && row >= 0 && col < g.cols && row < g.rows
}

type renderer struct {
	screen tcell.Screen
}

func (r *renderer) fill(g grid, b *physics.Body, ch rune, style tcell.Style) {
	c0, r0, c1, r1, ok := g.cells(b)
	if !ok {
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(col, row+1, ch, nil, style)
		}
	}
}

func (r *renderer) draw(sim *game.Simulation, best int) {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	cfg := sim.Config()
	g := newGrid(cols, rows, cfg.World.Width, cfg.World.Height)
	world := sim.World()

	tags.Platform.Each(world, func(e *donburi.Entry) {
		style := stylePlatform
		if !components.Platform.Get(e).Permanent {
			style = styleTimed
		}
		r.fill(g, components.Body.Get(e), '█', style)
	})
	tags.Enemy.Each(world, func(e *donburi.Entry) {
		r.fill(g, components.Body.Get(e), '☠', styleSkull)
	})
	tags.Arrow.Each(world, func(e *donburi.Entry) {
		ch := '-'
		if components.Arrow.Get(e).Dir.Vertical() {
			ch = '|'
		}
		if components.Arrow.Get(e).Dead {
			ch = '+'
		}
		r.fill(g, components.Body.Get(e), ch, styleArrow)
	})
	tags.Player.Each(world, func(e *donburi.Entry) {
		r.fill(g, components.Body.Get(e), '@', stylePlayer)
	})
	tags.Effect.Each(world, func(e *donburi.Entry) {
		effect := components.Effect.Get(e)
		if col, row, ok := g.point(effect.X, effect.Y); ok && effect.Alpha > 0.2 {
			r.screen.SetContent(col, row+1, '*', nil, styleEffect)
		}
	})

	r.text(0, 0, hud(sim, best), styleHUD)
	r.screen.Show()
}

func (r *renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func hud(sim *game.Simulation, best int) string {
	line := fmt.Sprintf(" score %d  best %d ", sim.Score(), best)
	if e, ok := sim.Player(); ok {
		p := components.Player.Get(e)
		line += fmt.Sprintf(" arrows %d  %s ", p.Ammo, p.State)
		if p.State == config.StateAim {
			line += fmt.Sprintf(" aim %s ", p.AimDir)
		}
	} else {
		line += " GAME OVER  r restart  esc quit "
	}
	return line
}
