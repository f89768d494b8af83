package components

import (
	"ebiten-timecrawl/ecs"
)

// Define component IDs for our game
const (
	Position ecs.ComponentID = iota
	Collision
	Renderable
	Animation
	Name
	Player
	Enemy
	Shooter
	TimeLeft
	Bullet
	Item
)

// Entity tags
const (
	TagPlayer = "player"
	TagEnemy  = "enemy"
	TagBullet = "bullet"
	TagItem   = "item"
	TagWall   = "wall"
	TagCorpse = "corpse"
	// TagRoom marks everything that is torn down when the player leaves a room
	TagRoom = "room"
)
