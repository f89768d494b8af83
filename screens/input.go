package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-timecrawl/systems"
)

const stickDeadZone = 0.25

// ReadInput polls the keyboard and any standard gamepads. WASD or the left
// stick moves; the arrow keys or the face buttons shoot.
func ReadInput() systems.Input {
	var in systems.Input

	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		in.MoveY++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		in.MoveY--
	}

	in.ShootLeft = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	in.ShootRight = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	in.ShootUp = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	in.ShootDown = ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		in.MoveX += deadZone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
		// stick up is negative
		in.MoveY -= deadZone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))

		in.ShootLeft = in.ShootLeft || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.ShootRight = in.ShootRight || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
		in.ShootUp = in.ShootUp || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightTop)
		in.ShootDown = in.ShootDown || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	in.MoveX = max(-1, min(1, in.MoveX))
	in.MoveY = max(-1, min(1, in.MoveY))
	return in
}

func deadZone(v float64) float64 {
	if v > -stickDeadZone && v < stickDeadZone {
		return 0
	}
	return v
}
