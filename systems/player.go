package systems

import (
	"log"

	"github.com/grumpus/jam/components"
	cfg "github.com/grumpus/jam/config"
	"github.com/grumpus/jam/input"
	"github.com/grumpus/jam/shared/physics"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

func UpdatePlayer(ctx *Context) {
	tags.Player.Each(ctx.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ctx, playerEntry)
	})
}

// playerCtx bundles the components one player update works on.
type playerCtx struct {
	*Context
	entry  *donburi.Entry
	player *components.PlayerData
	body   *physics.Body
	anim   *components.AnimationData
}

func updateSinglePlayer(ctx *Context, playerEntry *donburi.Entry) {
	p := &playerCtx{
		Context: ctx,
		entry:   playerEntry,
		player:  components.Player.Get(playerEntry),
		body:    components.Body.Get(playerEntry),
		anim:    components.Animation.Get(playerEntry),
	}

	if p.player.State == cfg.StateDead {
		return
	}

	if p.shouldDie() {
		p.die()
		return
	}

	p.clampToWorld()
	p.updateTimers()

	previous := p.player.State
	switch p.player.State {
	case cfg.StateGround:
		p.groundState()
	case cfg.StateAir:
		p.airState()
	case cfg.StateLedge:
		p.ledgeState()
	case cfg.StateAim:
		p.aimState()
	default:
		log.Printf("Warning: player %v in unrecognized state %d, skipping tick", playerEntry.Entity(), int(p.player.State))
		return
	}

	if ctx.Config.Debug.LogTransitions && previous != p.player.State {
		log.Printf("player: %s -> %s (x=%.1f y=%.1f dx=%.1f dy=%.1f ammo=%d)",
			previous, p.player.State, p.body.X, p.body.Y, p.body.DX, p.body.DY, p.player.Ammo)
	}
}

func (p *playerCtx) shouldDie() bool {
	return p.Room.Overlaps(p.body, tags.TypeEnemy) || p.body.CenterY() <= 0
}

func (p *playerCtx) die() {
	if p.body.CenterY() < 0 {
		p.body.Y = -float64(p.body.H) / 2
	}
	p.player.State = cfg.StateDead
	p.body.DX, p.body.DY, p.body.DDX, p.body.DDY = 0, 0, 0, 0
	p.Sink.SpawnEffect(p.body.CenterX(), p.body.CenterY(), cfg.EffectPlayerDie)
	p.Sink.Destroy(p.entry.Entity())
}

// clampToWorld keeps the body inside the side walls and below the ceiling.
// Falling out the bottom is the death condition, so it is not clamped.
func (p *playerCtx) clampToWorld() {
	w, h := p.worldSize()
	b := p.body
	b.X = physics.Clamp(b.X, 0, w-float64(b.W))
	if top := h - float64(b.H); b.Y > top {
		b.Y = top
	}
}

func (p *playerCtx) updateTimers() {
	pl := p.player
	if onGround(p.Room, p.body) {
		pl.GroundClock = p.Config.Player.GroundGrace
	}
	if pl.GroundClock > 0 {
		pl.GroundClock -= p.Dt
	}
	if pl.ShortHopClock > 0 {
		pl.ShortHopClock -= p.Dt
	}
	if pl.PreAimClock > 0 {
		pl.PreAimClock -= p.Dt
	}
}

func (p *playerCtx) reload() {
	p.player.Ammo = p.Config.Player.MaxAmmo
}

func (p *playerCtx) face(f components.Facing) {
	p.player.Facing = f
}

func (p *playerCtx) setState(s cfg.PlayerState) {
	p.player.State = s
}

func (p *playerCtx) groundState() {
	conf := p.Config.Player
	b := p.body
	b.FX = conf.GroundFriction
	p.reload()

	switch {
	case p.Input.Pressed(input.ActionLeft):
		// Holding against the current motion slides before turning.
		if b.DX > 0 {
			p.face(components.FacingRight)
			p.anim.SetAnimation(cfg.AnimSlide)
		} else {
			p.face(components.FacingLeft)
			p.anim.SetAnimation(cfg.AnimRun)
		}
		b.DDX = -conf.GroundAccel
	case p.Input.Pressed(input.ActionRight):
		if b.DX < 0 {
			p.face(components.FacingLeft)
			p.anim.SetAnimation(cfg.AnimSlide)
		} else {
			p.face(components.FacingRight)
			p.anim.SetAnimation(cfg.AnimRun)
		}
		b.DDX = conf.GroundAccel
	default:
		b.DDX = 0
		if b.DX != 0 {
			p.anim.SetAnimation(cfg.AnimSlide)
		} else {
			p.anim.SetAnimation(cfg.AnimStand)
		}
	}

	if p.Input.JustPressed(input.ActionJump) {
		b.DY = conf.JumpSpeed
		p.player.ShortHopClock = conf.ShortHopTime
		p.player.PreAimClock = conf.PreAimTime
		p.setState(cfg.StateAir)
	} else if p.player.GroundClock <= 0 {
		// Walked off an edge and the grace period ran out.
		p.player.ShortHopClock = 0
		p.player.PreAimClock = conf.PreAimTime
		p.setState(cfg.StateAir)
	}
}

func (p *playerCtx) airState() {
	conf := p.Config.Player
	b := p.body
	b.FX = conf.AirFriction
	p.anim.SetAnimation(cfg.AnimJump)

	if p.player.ShortHopClock > 0 && p.Input.JustReleased(input.ActionJump) {
		p.player.ShortHopClock = 0
		b.DY /= 2
	}

	switch {
	case p.Input.Pressed(input.ActionLeft):
		p.face(components.FacingLeft)
		b.DDX = -conf.AirAccel
	case p.Input.Pressed(input.ActionRight):
		p.face(components.FacingRight)
		b.DDX = conf.AirAccel
	default:
		b.DDX = 0
	}

	if onGround(p.Room, b) {
		b.DY = 0
		p.setState(cfg.StateGround)
		return
	}

	if side, ok := p.grabLedge(); ok {
		b.DDX, b.DDY = 0, 0
		b.DX, b.DY = 0, 0
		p.face(side)
		p.setState(cfg.StateLedge)
		return
	}

	if p.player.PreAimClock <= 0 && p.Input.JustPressed(input.ActionJump) && p.player.Ammo > 0 {
		p.player.PrevDX = b.DX
		b.DX, b.DY = 0, 0
		p.player.AimClock = conf.AimTime
		p.player.AimDir = p.player.Facing.Direction()
		p.setState(cfg.StateAim)
	}
}

func (p *playerCtx) sensor(right bool) *ledgeSensor {
	conf := p.Config.Player
	return newLedgeSensor(p.Room, p.body, right, conf.SensorWidth, conf.SensorHeight)
}

// grabLedge tries the right side first, then the left.
func (p *playerCtx) grabLedge() (components.Facing, bool) {
	if p.sensor(true).grab() {
		return components.FacingRight, true
	}
	if p.sensor(false).grab() {
		return components.FacingLeft, true
	}
	return 0, false
}

func (p *playerCtx) ledgeState() {
	conf := p.Config.Player
	b := p.body
	p.reload()
	p.anim.SetAnimation(cfg.AnimLedge)

	if !p.sensor(true).holding() && !p.sensor(false).holding() {
		b.DDY = conf.Gravity
		p.setState(cfg.StateAir)
		return
	}

	if !p.Input.JustPressed(input.ActionJump) {
		return
	}

	p.player.PreAimClock = conf.PreAimTime
	b.DDY = conf.Gravity
	if p.Input.Pressed(input.ActionDown) {
		b.Y--
	} else {
		b.Y++
		b.DY = conf.JumpSpeed
		p.player.ShortHopClock = conf.ShortHopTime
	}
	p.setState(cfg.StateAir)
}

func (p *playerCtx) aimState() {
	conf := p.Config.Player
	b := p.body
	pl := p.player

	switch {
	case p.Input.Pressed(input.ActionUp):
		pl.AimDir = components.DirUp
	case p.Input.Pressed(input.ActionDown):
		pl.AimDir = components.DirDown
	case p.Input.Pressed(input.ActionLeft):
		p.face(components.FacingLeft)
		pl.AimDir = components.DirLeft
	case p.Input.Pressed(input.ActionRight):
		p.face(components.FacingRight)
		pl.AimDir = components.DirRight
	}
	p.anim.SetAnimation(aimAnimation(pl.AimDir))

	// Hang in place while charging.
	b.DDX = 0
	b.DDY = conf.AimDrift
	pl.AimClock -= p.Dt

	if onGround(p.Room, b) {
		b.DDY = conf.Gravity
		pl.AimClock = conf.AimTime
		p.setState(cfg.StateGround)
		return
	}

	expired := pl.AimClock <= 0
	if !expired && !p.Input.JustReleased(input.ActionJump) {
		return
	}

	if expired {
		p.Sink.SpawnEffect(b.CenterX(), b.CenterY(), cfg.EffectArrowPop)
	}
	// The aim clock only limits the hover; every shot leaves at full speed.
	p.Sink.SpawnArrow(b.CenterX(), b.CenterY(), pl.AimDir, 1)
	if pl.Ammo > 0 {
		pl.Ammo--
	}

	b.DDY = conf.Gravity
	b.DX = pl.PrevDX
	b.DY = conf.PostShotSpeed()
	p.setState(cfg.StateAir)
}

func aimAnimation(d components.Direction) string {
	switch d {
	case components.DirUp:
		return cfg.AnimAimUp
	case components.DirDown:
		return cfg.AnimAimDown
	}
	return cfg.AnimAimSide
}
