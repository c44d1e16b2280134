package config

// PlayerState identifies the player's movement state
type PlayerState int

const (
	StateGround PlayerState = iota
	StateAir
	StateLedge
	StateAim
	StateDead
)

func (s PlayerState) String() string {
	switch s {
	case StateGround:
		return "ground"
	case StateAir:
		return "air"
	case StateLedge:
		return "ledge"
	case StateAim:
		return "aim"
	case StateDead:
		return "dead"
	}
	return "unknown"
}
