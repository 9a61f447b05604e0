package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/openworld/ecs/component"
)

const stickDeadzone = 0.2

// readDevices polls keyboard, mouse and the first gamepad for one frame.
func readDevices() component.Input {
	var in component.Input

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.MoveForward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.MoveForward -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveRight += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveRight -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Turn += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Turn -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.LookUp += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.LookUp -= 1
	}

	in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.AttackPressed = inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.EquipPressed = inpututil.IsKeyJustPressed(ebiten.KeyE)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.MoveForward = -ly
			in.MoveRight = lx
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Abs(rx) > stickDeadzone {
			in.Turn = rx
		}
		if math.Abs(ry) > stickDeadzone {
			in.LookUp = -ry
		}

		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.AttackPressed = in.AttackPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.EquipPressed = in.EquipPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
	}

	return in
}
