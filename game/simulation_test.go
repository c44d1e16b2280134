package game

import (
	"bytes"
	"log"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/input"
	"github.com/grumpus/jam/shared/leveldata"
	"github.com/grumpus/jam/shared/physics"
	"github.com/grumpus/jam/systems/factory"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 60

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// arenaWith builds a 1024x576 level with the given platforms and spawn.
func arenaWith(spawn leveldata.Point, platforms ...leveldata.Rect) *leveldata.Level {
	return &leveldata.Level{
		Name:      "test",
		Width:     1024,
		Height:    576,
		Platforms: platforms,
		Spawn:     spawn,
	}
}

var floor = leveldata.Rect{X: 0, Y: 0, W: 1024, H: 32}

type driver struct {
	t    *testing.T
	sim  *Simulation
	snap input.Snapshot
}

func newDriver(t *testing.T, level *leveldata.Level) *driver {
	t.Helper()
	cfg := config.Default()
	cfg.Spawner.Enabled = false
	return &driver{t: t, sim: New(cfg, level)}
}

func (d *driver) tick(held ...input.ActionID) {
	d.snap.Push(input.Held(held...))
	d.sim.Tick(dt, &d.snap)
}

func (d *driver) player() (*components.PlayerData, *physics.Body, *components.AnimationData) {
	d.t.Helper()
	e, ok := d.sim.Player()
	if !ok {
		d.t.Fatalf("player missing at tick %d", d.sim.Ticks())
	}
	return components.Player.Get(e), components.Body.Get(e), components.Animation.Get(e)
}

func count(world donburi.World, tag interface {
	Each(donburi.World, func(*donburi.Entry))
}) int {
	n := 0
	tag.Each(world, func(*donburi.Entry) { n++ })
	return n
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	d := newDriver(t, arenaWith(leveldata.Point{X: 100, Y: 32}, floor))
	d.tick()
	d.tick()

	p, b, anim := d.player()
	if p.State != config.StateGround {
		t.Fatalf("state = %v, want ground", p.State)
	}
	if b.Y != 32 || b.DY != 0 {
		t.Fatalf("body at y=%v dy=%v, want resting at 32", b.Y, b.DY)
	}
	if anim.Key != config.AnimStand {
		t.Fatalf("animation = %q, want %q", anim.Key, config.AnimStand)
	}
	if p.Ammo != d.sim.Config().Player.MaxAmmo {
		t.Fatalf("ammo = %d, want full", p.Ammo)
	}
}

func TestShortHopHalvesRise(t *testing.T) {
	level := arenaWith(leveldata.Point{X: 100, Y: 32}, floor)
	full := newDriver(t, level)
	short := newDriver(t, level)

	for _, d := range []*driver{full, short} {
		d.tick()
		d.tick()
		d.tick(input.ActionJump)
	}
	full.tick(input.ActionJump)
	short.tick()

	_, fb, _ := full.player()
	sp, sb, _ := short.player()
	if !near(sb.DY, fb.DY/2) {
		t.Fatalf("short hop dy = %v, want half of %v", sb.DY, fb.DY)
	}
	if sp.ShortHopClock != 0 || sp.State != config.StateAir {
		t.Fatalf("short hop left clock=%v state=%v", sp.ShortHopClock, sp.State)
	}
}

func TestAimExpiryFiresFullCharge(t *testing.T) {
	d := newDriver(t, arenaWith(leveldata.Point{X: 500, Y: 400}, floor))
	cfg := d.sim.Config()

	d.tick()
	d.tick(input.ActionJump)
	if p, _, _ := d.player(); p.State != config.StateAim {
		t.Fatalf("state = %v, want aim", p.State)
	}

	var fired *Event
	popped := false
	for i := 0; i < 90 && fired == nil; i++ {
		d.tick(input.ActionJump)
		for _, ev := range d.sim.Events() {
			ev := ev
			switch {
			case ev.Kind == EventArrowFired:
				fired = &ev
			case ev.Kind == EventEffect && ev.Key == config.EffectArrowPop:
				popped = true
			}
		}
	}
	if fired == nil {
		t.Fatalf("no arrow fired while holding past the aim time")
	}
	if fired.Charge != 1 || fired.Dir != components.DirRight {
		t.Fatalf("fired %+v, want full charge to the right", *fired)
	}
	if !popped {
		t.Fatalf("expiry effect not spawned")
	}

	p, b, _ := d.player()
	if p.State != config.StateAir {
		t.Fatalf("state = %v, want air", p.State)
	}
	if p.Ammo != cfg.Player.MaxAmmo-1 {
		t.Fatalf("ammo = %d, want %d", p.Ammo, cfg.Player.MaxAmmo-1)
	}
	if !near(b.DY, cfg.Player.PostShotSpeed()) {
		t.Fatalf("dy = %v, want %v", b.DY, cfg.Player.PostShotSpeed())
	}

	arrows := 0
	tags.Arrow.Each(d.sim.World(), func(e *donburi.Entry) {
		arrows++
		if ab := components.Body.Get(e); !near(ab.DX, cfg.Arrow.MaxSpeedX) {
			t.Errorf("arrow dx = %v, want %v", ab.DX, cfg.Arrow.MaxSpeedX)
		}
	})
	if arrows != 1 {
		t.Fatalf("got %d arrows, want 1", arrows)
	}
}

func TestEarlyReleaseFiresFullSpeed(t *testing.T) {
	d := newDriver(t, arenaWith(leveldata.Point{X: 500, Y: 400}, floor))
	d.tick()
	d.tick(input.ActionJump)
	d.tick()

	var fired *Event
	for _, ev := range d.sim.Events() {
		ev := ev
		switch {
		case ev.Kind == EventArrowFired:
			fired = &ev
		case ev.Kind == EventEffect && ev.Key == config.EffectArrowPop:
			t.Fatalf("expiry effect spawned on an early release")
		}
	}
	if fired == nil {
		t.Fatalf("releasing jump while aiming fired nothing")
	}
	if fired.Charge != 1 {
		t.Fatalf("charge = %v, want 1", fired.Charge)
	}

	maxX := d.sim.Config().Arrow.MaxSpeedX
	tags.Arrow.Each(d.sim.World(), func(e *donburi.Entry) {
		if b := components.Body.Get(e); b.DX != maxX {
			t.Errorf("arrow dx = %v, want %v", b.DX, maxX)
		}
	})
}

func TestEventsSurviveNextTick(t *testing.T) {
	d := newDriver(t, arenaWith(leveldata.Point{X: 500, Y: 400}, floor))
	d.tick()
	d.tick(input.ActionJump)
	d.tick()

	kept := d.sim.Events()
	if len(kept) == 0 || kept[0].Kind != EventArrowFired {
		t.Fatalf("events = %+v, want the shot first", kept)
	}
	_, b, _ := d.player()
	factory.CreateSkull(d.sim.Room(), d.sim.Config(), b.X-10, b.Y)
	d.tick()
	if len(d.sim.Events()) == 0 {
		t.Fatalf("touching the skull produced no events")
	}
	if kept[0].Kind != EventArrowFired {
		t.Fatalf("kept event overwritten by a later tick: %+v", kept[0])
	}
}

func TestLateJumpReleaseKeepsRise(t *testing.T) {
	level := arenaWith(leveldata.Point{X: 100, Y: 32}, floor)
	held := newDriver(t, level)
	released := newDriver(t, level)

	for _, d := range []*driver{held, released} {
		d.tick()
		d.tick()
		d.tick(input.ActionJump)
		for i := 0; i < 10; i++ {
			d.tick(input.ActionJump)
		}
	}
	held.tick(input.ActionJump)
	released.tick()

	_, hb, _ := held.player()
	rp, rb, _ := released.player()
	if rp.State != config.StateAir || rb.DY <= 0 {
		t.Fatalf("released player state %v dy %v, want still rising", rp.State, rb.DY)
	}
	if rb.DY != hb.DY {
		t.Fatalf("late release dy = %v, want %v as if still held", rb.DY, hb.DY)
	}
}

func TestGroundGraceBeforeFalling(t *testing.T) {
	d := newDriver(t, arenaWith(leveldata.Point{X: 100, Y: 32}, floor))
	d.tick()
	d.tick()

	room := d.sim.Room()
	room.Remove(room.Group(tags.TypeSolid).Members()[0], tags.TypeSolid)

	for i := 0; i < 4; i++ {
		d.tick()
		if p, b, _ := d.player(); p.State != config.StateGround {
			t.Fatalf("tick %d off the edge: state = %v at y=%v, want ground", i+1, p.State, b.Y)
		}
	}
	_, b, _ := d.player()
	if b.Y >= 32 {
		t.Fatalf("y = %v, want falling during the grace period", b.Y)
	}

	for i := 0; i < 4; i++ {
		d.tick()
	}
	if p, _, _ := d.player(); p.State != config.StateAir {
		t.Fatalf("state = %v after the grace period, want air", p.State)
	}
}

func TestLandingCancelsAim(t *testing.T) {
	d := newDriver(t, arenaWith(leveldata.Point{X: 500, Y: 400}, floor))
	d.tick()
	d.tick(input.ActionJump)
	p, b, _ := d.player()
	if p.State != config.StateAim {
		t.Fatalf("state = %v, want aim", p.State)
	}

	// Raise the ground to the aiming player.
	factory.CreatePlatform(d.sim.Room(), b.X-24, b.Y-64, 64, 64, 0)

	landed := false
	for i := 0; i < 10 && !landed; i++ {
		d.tick(input.ActionJump)
		for _, ev := range d.sim.Events() {
			if ev.Kind == EventArrowFired {
				t.Fatalf("arrow fired on landing")
			}
		}
		p, _, _ = d.player()
		landed = p.State == config.StateGround
	}
	if !landed {
		t.Fatalf("state = %v, want ground", p.State)
	}
	if n := count(d.sim.World(), tags.Arrow); n != 0 {
		t.Fatalf("%d arrows after a cancelled aim", n)
	}
	if p.Ammo != d.sim.Config().Player.MaxAmmo {
		t.Fatalf("ammo = %d, want full", p.Ammo)
	}
}

func TestAimNeedsAmmo(t *testing.T) {
	tests := []struct {
		name string
		ammo int
		want config.PlayerState
	}{
		{"empty quiver", 0, config.StateAir},
		{"one arrow", 1, config.StateAim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDriver(t, arenaWith(leveldata.Point{X: 500, Y: 400}, floor))
			d.tick()
			p, _, _ := d.player()
			p.Ammo = tt.ammo

			d.tick(input.ActionJump)
			if p, _, _ = d.player(); p.State != tt.want {
				t.Fatalf("state = %v, want %v", p.State, tt.want)
			}
		})
	}
}

func TestLedgeGrab(t *testing.T) {
	tests := []struct {
		name  string
		block leveldata.Rect
		grab  bool
	}{
		{"ledge", leveldata.Rect{X: 200, Y: 0, W: 64, H: 300}, true},
		{"uniform wall", leveldata.Rect{X: 200, Y: 0, W: 64, H: 576}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDriver(t, arenaWith(leveldata.Point{X: 184, Y: 260}, tt.block))

			grabbed := false
			for i := 0; i < 30 && !grabbed; i++ {
				d.tick()
				p, _, _ := d.player()
				grabbed = p.State == config.StateLedge
			}
			if grabbed != tt.grab {
				t.Fatalf("grabbed = %v, want %v", grabbed, tt.grab)
			}
			if !tt.grab {
				return
			}

			// The ledge holds the player in place.
			for i := 0; i < 10; i++ {
				d.tick()
			}
			p, b, _ := d.player()
			if p.State != config.StateLedge || p.Facing != components.FacingRight {
				t.Fatalf("state = %v facing %v after hanging", p.State, p.Facing)
			}
			if b.Top() < 300 || b.Top() >= 301 {
				t.Fatalf("top = %v, want just above the corner at 300", b.Top())
			}

			d.tick(input.ActionJump)
			p, b, _ = d.player()
			if p.State != config.StateAir || b.DY != d.sim.Config().Player.JumpSpeed {
				t.Fatalf("ledge jump: state %v dy %v", p.State, b.DY)
			}
		})
	}
}

// hangFromLedge drops the player beside a 300px pillar until it grabs the top.
func hangFromLedge(t *testing.T) *driver {
	t.Helper()
	d := newDriver(t, arenaWith(leveldata.Point{X: 184, Y: 260}, leveldata.Rect{X: 200, Y: 0, W: 64, H: 300}))
	for i := 0; i < 30; i++ {
		d.tick()
		if p, _, _ := d.player(); p.State == config.StateLedge {
			return d
		}
	}
	t.Fatalf("player never grabbed the ledge")
	return nil
}

func TestLedgeRelease(t *testing.T) {
	tests := []struct {
		name    string
		release func(d *driver)
		dropped float64
	}{
		{"ledge removed", func(d *driver) {
			room := d.sim.Room()
			room.Remove(room.Group(tags.TypeSolid).Members()[0], tags.TypeSolid)
			d.tick()
		}, 0},
		{"down and jump", func(d *driver) {
			d.tick(input.ActionDown, input.ActionJump)
		}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := hangFromLedge(t)
			_, b, _ := d.player()
			top := b.Top()

			tt.release(d)
			p, b, _ := d.player()
			if p.State != config.StateAir {
				t.Fatalf("state = %v, want air", p.State)
			}
			if b.DY != 0 {
				t.Fatalf("dy = %v, want a drop with no jump", b.DY)
			}
			if b.Top() != top-tt.dropped {
				t.Fatalf("top = %v, want %v", b.Top(), top-tt.dropped)
			}
		})
	}
}

func TestSkullTouchKillsPlayer(t *testing.T) {
	d := newDriver(t, arenaWith(leveldata.Point{X: 100, Y: 32}, floor))
	d.tick()
	d.tick()
	factory.CreateSkull(d.sim.Room(), d.sim.Config(), 90, 32)

	d.tick()
	died := false
	for _, ev := range d.sim.Events() {
		if ev.Kind == EventEffect && ev.Key == config.EffectPlayerDie {
			died = true
		}
	}
	if !died || !d.sim.Over() {
		t.Fatalf("died = %v over = %v after touching a skull", died, d.sim.Over())
	}
}

func TestWorldClamps(t *testing.T) {
	tests := []struct {
		name  string
		spawn leveldata.Point
		check func(b *physics.Body) bool
	}{
		{"left wall", leveldata.Point{X: -20, Y: 300}, func(b *physics.Body) bool { return b.X == 0 }},
		{"right wall", leveldata.Point{X: 1100, Y: 300}, func(b *physics.Body) bool { return b.Right() == 1024 }},
		{"ceiling", leveldata.Point{X: 500, Y: 600}, func(b *physics.Body) bool { return b.Top() == 576 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDriver(t, arenaWith(tt.spawn))
			d.tick()
			if _, b, _ := d.player(); !tt.check(b) {
				t.Fatalf("body at (%v, %v) not clamped into the arena", b.X, b.Y)
			}
		})
	}
}

func TestUnknownStateSkipsTick(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	d := newDriver(t, arenaWith(leveldata.Point{X: 100, Y: 32}, floor))
	d.tick()
	d.tick()
	p, _, _ := d.player()
	p.State = config.PlayerState(99)

	d.tick(input.ActionRight, input.ActionJump)
	p, b, _ := d.player()
	if p.State != config.PlayerState(99) {
		t.Fatalf("state = %v, want it left alone", p.State)
	}
	if b.DDX != 0 || b.DY > 0 {
		t.Fatalf("unknown state still moved the player: ddx %v dy %v", b.DDX, b.DY)
	}
	if !strings.Contains(buf.String(), "unrecognized state") {
		t.Fatalf("no diagnostic logged, got %q", buf.String())
	}
}

func TestFallingOutKillsPlayer(t *testing.T) {
	d := newDriver(t, arenaWith(leveldata.Point{X: 500, Y: 100}))

	died := false
	for i := 0; i < 120 && !d.sim.Over(); i++ {
		d.tick()
		for _, ev := range d.sim.Events() {
			if ev.Kind == EventEffect && ev.Key == config.EffectPlayerDie {
				died = true
			}
		}
	}
	if !d.sim.Over() || !died {
		t.Fatalf("over = %v died = %v", d.sim.Over(), died)
	}
	if n := d.sim.Room().Group(tags.TypePlayer).Len(); n != 0 {
		t.Fatalf("player group still has %d members", n)
	}
}

func TestVerticalArrowLeavesArena(t *testing.T) {
	d := newDriver(t, arenaWith(leveldata.Point{X: 100, Y: 32}, floor))
	cfg := d.sim.Config()
	arrow := factory.CreateArrow(d.sim.Room(), cfg, 500, 300, components.DirUp, 1)

	b := components.Body.Get(arrow)
	if b.DX != 0 || b.DY != cfg.Arrow.MaxSpeedY {
		t.Fatalf("launch velocity (%v, %v), want (0, %v)", b.DX, b.DY, cfg.Arrow.MaxSpeedY)
	}
	d.tick()
	b = components.Body.Get(arrow)
	if want := cfg.Arrow.MaxSpeedY + cfg.Arrow.Gravity*dt; !near(b.DY, want) {
		t.Fatalf("dy after one tick = %v, want %v", b.DY, want)
	}

	for i := 0; i < 59; i++ {
		d.tick()
	}
	if n := count(d.sim.World(), tags.Arrow); n != 0 {
		t.Fatalf("%d arrows left after flying out of the top", n)
	}
	if n := d.sim.Room().Group(tags.TypeArrow).Len(); n != 0 {
		t.Fatalf("arrow group still has %d members", n)
	}
}

func TestArrowKillsSkull(t *testing.T) {
	d := newDriver(t, arenaWith(leveldata.Point{X: 100, Y: 32}, floor))
	room, cfg := d.sim.Room(), d.sim.Config()
	factory.CreateSkull(room, cfg, 600, 300)
	arrow := factory.CreateArrow(room, cfg, 610, 320, components.DirRight, 0)
	platforms := count(d.sim.World(), tags.Platform)

	d.tick()

	if n := count(d.sim.World(), tags.Enemy); n != 0 {
		t.Fatalf("%d skulls left after the hit", n)
	}
	if d.sim.Score() != 1 {
		t.Fatalf("score = %d, want 1", d.sim.Score())
	}
	if n := count(d.sim.World(), tags.Platform); n != platforms+1 {
		t.Fatalf("platforms = %d, want %d", n, platforms+1)
	}
	if !components.Arrow.Get(arrow).Dead {
		t.Fatalf("arrow not stuck")
	}
	if room.Group(tags.TypeArrow).Contains(arrow.Entity()) {
		t.Fatalf("stuck arrow still in the arrow group")
	}

	// The impact animation plays out, then the arrow goes away.
	for i := 0; i < 30; i++ {
		d.tick()
	}
	if d.sim.World().Valid(arrow.Entity()) {
		t.Fatalf("stuck arrow never destroyed")
	}
}

func TestTimedPlatformExpires(t *testing.T) {
	d := newDriver(t, arenaWith(leveldata.Point{X: 100, Y: 32}, floor))
	p := factory.CreateTimedPlatform(d.sim.Room(), d.sim.Config(), 600, 300)

	ticks := int(d.sim.Config().Platform.Lifetime/dt) + 3
	for i := 0; i < ticks; i++ {
		d.tick()
	}
	if d.sim.World().Valid(p.Entity()) {
		t.Fatalf("platform outlived its lifetime")
	}
	if d.sim.Room().Group(tags.TypeSolid).Contains(p.Entity()) {
		t.Fatalf("expired platform still solid")
	}
}

func TestSpawnerReleasesSkulls(t *testing.T) {
	cfg := config.Default()
	level := arenaWith(leveldata.Point{X: 100, Y: 32}, floor)
	level.Spawner = true
	sim := New(cfg, level)

	// One and a half intervals hold exactly one release.
	ticks := int(1.5 * cfg.Spawner.Interval / dt)
	spawned := 0
	for i := 0; i < ticks; i++ {
		sim.Tick(dt, nil)
		for _, ev := range sim.Events() {
			if ev.Kind == EventSkullSpawned {
				spawned++
			}
		}
	}
	if spawned != 1 {
		t.Fatalf("spawned %d skulls in one interval, want 1", spawned)
	}
}

func TestResetRestoresLevel(t *testing.T) {
	d := newDriver(t, arenaWith(leveldata.Point{X: 500, Y: 100}))
	for i := 0; i < 120 && !d.sim.Over(); i++ {
		d.tick()
	}
	if !d.sim.Over() {
		t.Fatalf("player never died")
	}

	d.sim.Reset()
	if d.sim.Over() || d.sim.Ticks() != 0 {
		t.Fatalf("reset left over=%v ticks=%d", d.sim.Over(), d.sim.Ticks())
	}
	_, b, _ := d.player()
	if b.X != 500 || b.Y != 100 {
		t.Fatalf("player respawned at (%v, %v)", b.X, b.Y)
	}
}

func TestSetConfigKeepsLevelSize(t *testing.T) {
	sim := New(nil, arenaWith(leveldata.Point{X: 100, Y: 32}, floor))
	cfg := config.Default()
	cfg.World.Width = 10
	cfg.Player.JumpSpeed = 500
	sim.SetConfig(cfg)

	if sim.Config().World.Width != 1024 {
		t.Fatalf("world width = %d, want level width", sim.Config().World.Width)
	}
	if sim.Config().Player.JumpSpeed != 500 {
		t.Fatalf("tuning not applied")
	}
	if cfg.World.Width != 10 {
		t.Fatalf("caller's config modified")
	}
}
