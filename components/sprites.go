package components

// Sprite is an index into the sprite sheet. The core never interprets it;
// front-ends map it to an image, a color or a glyph.
type Sprite int

// Fixed sprites
const (
	SpriteEnemy        Sprite = 0
	SpriteEnemyBullet  Sprite = 10
	SpriteFloor        Sprite = 13
	SpriteTeleport     Sprite = 14
	SpritePlayerBullet Sprite = 15
	SpritePlayer       Sprite = 16
	SpriteWallSide     Sprite = 42
	SpriteWallFront    Sprite = 43
	SpriteStationary   Sprite = 45
	SpriteWallTop      Sprite = 52
)

// Animations
var (
	PlayerFrames         = []Sprite{16, 17, 18, 18}
	PlayerInvulFrames    = []Sprite{20, 21, 22, 23}
	DamagePowerFrames    = []Sprite{1, 2, 3, 4, 5, 6}
	DeadEnemyFrames      = []Sprite{7, 8, 9}
	ProjPowerFrames      = []Sprite{24, 25, 26, 27, 28, 29}
	ShootFastPowerFrames = []Sprite{30, 31, 32, 33, 34, 35}
	SpeedPowerFrames     = []Sprite{36, 37, 38, 39, 40, 41}
	WallClockFrames      = []Sprite{45, 46, 47, 48}
	MoarTimeFrames       = []Sprite{11, 11, 12}
)

// Draw layers
const (
	ZFloor  = -1.0
	ZWall   = -0.9
	ZCorpse = -0.8
	ZItem   = -0.6
	ZEnemy  = -0.5
	ZPlayer = 0.0
	ZBullet = 0.1
)
