package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/game"
)

const sampleRate = beep.SampleRate(44100)

// cue is a short sine tone.
type cue struct {
	freq     float64
	duration time.Duration
}

// cueFor picks the tone for an event, if it has one.
func cueFor(ev game.Event) (cue, bool) {
	switch ev.Kind {
	case game.EventArrowFired:
		return cue{freq: 880, duration: 50 * time.Millisecond}, true
	case game.EventScore:
		return cue{freq: 660, duration: 80 * time.Millisecond}, true
	case game.EventEffect:
		if ev.Key == config.EffectPlayerDie {
			return cue{freq: 220, duration: 300 * time.Millisecond}, true
		}
	}
	return cue{}, false
}

type sound struct {
	enabled bool
}

func newSound(mute bool) *sound {
	if mute {
		return &sound{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("Audio initialization failed: %v", err)
		return &sound{}
	}
	return &sound{enabled: true}
}

func (s *sound) play(events []game.Event) {
	if !s.enabled {
		return
	}
	for _, ev := range events {
		c, ok := cueFor(ev)
		if !ok {
			continue
		}
		sine, err := generators.SineTone(sampleRate, c.freq)
		if err != nil {
			continue
		}
		speaker.Play(beep.Take(sampleRate.N(c.duration), sine))
	}
}

func (s *sound) close() {
	if s.enabled {
		speaker.Close()
	}
}
