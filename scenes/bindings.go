package scenes

import (
	"github.com/grumpus/jam/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding lists the keys and gamepad buttons that trigger one action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its devices.
type Bindings struct {
	Actions        map[input.ActionID]Binding
	AnalogDeadzone float64
}

func DefaultBindings() Bindings {
	return Bindings{
		AnalogDeadzone: 0.25,
		Actions: map[input.ActionID]Binding{
			input.ActionUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			input.ActionDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			input.ActionLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			input.ActionRight: {
				Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			input.ActionJump: {
				Keys:                   []ebiten.Key{ebiten.KeyX, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
		},
	}
}

// Poll samples the keyboard and every standard gamepad.
func (b Bindings) Poll(gamepads []ebiten.GamepadID) [input.ActionCount]bool {
	var held [input.ActionCount]bool
	for id, binding := range b.Actions {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[id] = true
			}
		}
		for _, pad := range gamepads {
			for _, button := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(pad, button) {
					held[id] = true
				}
			}
		}
	}

	// Left stick
	for _, pad := range gamepads {
		x := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickVertical)
		if x < -b.AnalogDeadzone {
			held[input.ActionLeft] = true
		}
		if x > b.AnalogDeadzone {
			held[input.ActionRight] = true
		}
		if y < -b.AnalogDeadzone {
			held[input.ActionUp] = true
		}
		if y > b.AnalogDeadzone {
			held[input.ActionDown] = true
		}
	}
	return held
}
