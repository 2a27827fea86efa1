package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/piratecove/components"
	cfg "github.com/automoto/piratecove/config"
)

// InputSource reports which actions are held this tick.
type InputSource func() [cfg.ActionCount]bool

var inputSource InputSource = pollDevices

// SetInputSource replaces device polling, for replays and tests. nil
// restores the keyboard and gamepads.
func SetInputSource(src InputSource) {
	if src == nil {
		src = pollDevices
	}
	inputSource = src
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput samples the input source into the player's input component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	playerEntry, ok := playerOf(ecs)
	if !ok {
		return
	}
	input := components.Input.Get(playerEntry)
	input.Previous = input.Current
	input.Current = inputSource()
}

func pollDevices() [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					held[actionID] = true
				}
			}
		}
	}

	left, right := analogStick(gamepadIDs)
	held[cfg.ActionMoveLeft] = held[cfg.ActionMoveLeft] || left
	held[cfg.ActionMoveRight] = held[cfg.ActionMoveRight] || right
	return held
}

// analogStick reads the left stick of every standard gamepad past the
// deadzone.
func analogStick(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return left, right
}
