package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/grumpus/jam/input"
)

func TestKeyHoldExpires(t *testing.T) {
	k := newKeyHold(300 * time.Millisecond)
	start := time.Unix(100, 0)

	k.press(input.ActionJump, start)
	if !k.held(start.Add(100 * time.Millisecond))[input.ActionJump] {
		t.Fatalf("jump not held inside the timeout")
	}

	// An auto-repeat extends the hold.
	k.press(input.ActionJump, start.Add(250*time.Millisecond))
	if !k.held(start.Add(500 * time.Millisecond))[input.ActionJump] {
		t.Fatalf("repeat did not extend the hold")
	}
	if k.held(start.Add(600 * time.Millisecond))[input.ActionJump] {
		t.Fatalf("jump still held after the timeout")
	}

	k.press(input.ActionLeft, start)
	k.reset()
	if k.held(start)[input.ActionLeft] {
		t.Fatalf("reset kept a held key")
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want input.ActionID
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.ActionLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), input.ActionRight},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.ActionJump},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), input.ActionUp},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), input.ActionNone},
	}
	for _, tt := range tests {
		if got := actionFor(tt.ev); got != tt.want {
			t.Errorf("actionFor(%v) = %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}
}
