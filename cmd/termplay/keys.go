package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/grumpus/jam/input"
)

// Terminals report key presses and auto-repeats but never releases, so an
// action counts as held until no event for it arrived within the timeout.
type keyHold struct {
	timeout time.Duration
	last    [input.ActionCount]time.Time
}

func newKeyHold(timeout time.Duration) *keyHold {
	return &keyHold{timeout: timeout}
}

func (k *keyHold) press(id input.ActionID, now time.Time) {
	if id > input.ActionNone && id < input.ActionCount {
		k.last[id] = now
	}
}

func (k *keyHold) held(now time.Time) [input.ActionCount]bool {
	var held [input.ActionCount]bool
	for id := input.ActionNone + 1; id < input.ActionCount; id++ {
		t := k.last[id]
		held[id] = !t.IsZero() && now.Sub(t) < k.timeout
	}
	return held
}

func (k *keyHold) reset() {
	k.last = [input.ActionCount]time.Time{}
}

// actionFor maps a key event to a game action.
func actionFor(ev *tcell.EventKey) input.ActionID {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.ActionUp
	case tcell.KeyDown:
		return input.ActionDown
	case tcell.KeyLeft:
		return input.ActionLeft
	case tcell.KeyRight:
		return input.ActionRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.ActionUp
		case 's', 'S':
			return input.ActionDown
		case 'a', 'A':
			return input.ActionLeft
		case 'd', 'D':
			return input.ActionRight
		case ' ', 'x', 'X':
			return input.ActionJump
		}
	}
	return input.ActionNone
}
