package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grumpus/jam/input"
)

// Cue holds an action down from At for For seconds.
type Cue struct {
	Action input.ActionID
	At     float64
	For    float64
}

// Script is a timed input plan for headless runs.
type Script []Cue

// ParseScript reads a comma separated list of action@start+duration cues,
// for example "right@0+2,jump@0.5+0.1".
func ParseScript(s string) (Script, error) {
	var script Script
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, timing, ok := strings.Cut(field, "@")
		if !ok {
			return nil, fmt.Errorf("cue %q: missing @start", field)
		}
		action, ok := input.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("cue %q: unknown action %q", field, name)
		}
		start, length, ok := strings.Cut(timing, "+")
		if !ok {
			return nil, fmt.Errorf("cue %q: missing +duration", field)
		}
		at, err := strconv.ParseFloat(start, 64)
		if err != nil {
			return nil, fmt.Errorf("cue %q: start: %w", field, err)
		}
		dur, err := strconv.ParseFloat(length, 64)
		if err != nil {
			return nil, fmt.Errorf("cue %q: duration: %w", field, err)
		}
		if at < 0 || dur <= 0 {
			return nil, fmt.Errorf("cue %q: start must be >= 0 and duration > 0", field)
		}
		script = append(script, Cue{Action: action, At: at, For: dur})
	}
	return script, nil
}

// Held returns the actions held at time t.
func (s Script) Held(t float64) [input.ActionCount]bool {
	var held []input.ActionID
	for _, c := range s {
		if t >= c.At && t < c.At+c.For {
			held = append(held, c.Action)
		}
	}
	return input.Held(held...)
}

// End is the time the last cue is released.
func (s Script) End() float64 {
	end := 0.0
	for _, c := range s {
		if e := c.At + c.For; e > end {
			end = e
		}
	}
	return end
}
