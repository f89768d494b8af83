package systems

import (
	"ebiten-timecrawl/components"
)

// Input is the resolved control state for one tick. Move axes are in [-1, 1],
// with +Y pointing up.
type Input struct {
	MoveX, MoveY float64

	ShootLeft, ShootRight, ShootUp, ShootDown bool
}

// ShootDirection maps the four shoot buttons onto one of eight directions.
// Opposing or three-plus button combinations do not shoot.
func (i Input) ShootDirection() components.ShootDirection {
	switch [4]bool{i.ShootLeft, i.ShootRight, i.ShootUp, i.ShootDown} {
	case [4]bool{true, false, false, false}:
		return components.Left
	case [4]bool{false, true, false, false}:
		return components.Right
	case [4]bool{false, false, true, false}:
		return components.Up
	case [4]bool{false, false, false, true}:
		return components.Down
	case [4]bool{true, false, true, false}:
		return components.UpLeft
	case [4]bool{false, true, true, false}:
		return components.UpRight
	case [4]bool{true, false, false, true}:
		return components.DownLeft
	case [4]bool{false, true, false, true}:
		return components.DownRight
	}
	return components.NoDirection
}
