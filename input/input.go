// Package input defines the per-tick input snapshot the simulation reads.
// Devices are polled by the front-ends; this package has no ebiten dependency.
package input

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionJump  // jump, grab-release, aim and fire
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionJump:
		return "jump"
	}
	return "none"
}

// ParseAction is the inverse of ActionID.String.
func ParseAction(name string) (ActionID, bool) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		if id.String() == name {
			return id, true
		}
	}
	return ActionNone, false
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// State is sampled once per tick.
type State interface {
	Pressed(id ActionID) bool
	JustPressed(id ActionID) bool
	JustReleased(id ActionID) bool
}

// Snapshot stores the current and previous tick's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing ticks.
type Snapshot struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// Push advances the snapshot by one tick.
func (s *Snapshot) Push(current [ActionCount]bool) {
	s.Previous = s.Current
	s.Current = current
}

func (s *Snapshot) Get(id ActionID) ActionState {
	if id <= ActionNone || id >= ActionCount {
		return ActionState{}
	}
	curr := s.Current[id]
	prev := s.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

func (s *Snapshot) Pressed(id ActionID) bool      { return s.Get(id).Pressed }
func (s *Snapshot) JustPressed(id ActionID) bool  { return s.Get(id).JustPressed }
func (s *Snapshot) JustReleased(id ActionID) bool { return s.Get(id).JustReleased }

// Held builds a pressed-state array from a list of held actions.
func Held(ids ...ActionID) [ActionCount]bool {
	var cur [ActionCount]bool
	for _, id := range ids {
		if id > ActionNone && id < ActionCount {
			cur[id] = true
		}
	}
	return cur
}

// None is an input state with nothing held.
var None State = &Snapshot{}

// Steady wraps s so that only held state is reported. It is used when one
// sampled snapshot drives several ticks and edges must fire only once.
func Steady(s State) State {
	return steady{s}
}

type steady struct{ State }

func (steady) JustPressed(ActionID) bool  { return false }
func (steady) JustReleased(ActionID) bool { return false }
