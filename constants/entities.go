package constants

// Motion
const (
	// ScrollSpeed is how far static obstacles move left per tick
	ScrollSpeed = 1.0

	// WrapMargin: an obstacle with x+width below this wraps to the right edge
	WrapMargin = 2.0

	// BombFallSpeed is the bomb's vertical drift per tick
	BombFallSpeed = 0.7

	// BombResetY is where a bomb reappears after reaching the ground line
	BombResetY = 1.0

	// GroundClearance is the number of rows above the bottom a bomb may not enter
	GroundClearance = 3

	// ProjectileSpeed is how far a projectile moves right per tick
	ProjectileSpeed = 2.0
)

// Car ascent curve
const (
	// AscentLevelMax is the level a go-up action sets
	AscentLevelMax = 3

	// AscentPhaseScale divides the phase counter into the curve argument
	AscentPhaseScale = 5.0

	// AscentAmplitude scales the parabola t^2 - 4t
	AscentAmplitude = 1.5

	// AscentLandingArg is the curve argument at which the hop returns to baseline
	AscentLandingArg = 4.0

	// CarHeight is the car's ride height: its glyph plus clearance above the road
	CarHeight = 6

	// CarStartX, CarStartY are where the car is created before the first tick grounds it
	CarStartX = 10
	CarStartY = 10
)

// Wheel animation
const (
	WheelRow    = 2
	WheelLeft   = 1
	WheelRight  = 5
	WheelRuneA  = 'x'
	WheelRuneB  = '+'
	BlinkRuneOn = 'x'
)

// Road
const (
	RoadRows    = 3
	RoadSurface = '-'
	RoadFill    = '%'
)

// Spawn rows relative to playfield height, as offsets from the bottom
const (
	BombSpawnY        = 2
	HoleRowOffset     = 4
	ObstacleRowOffset = 6
	HouseRowOffset    = 7
	CloudMaxY         = 10
)

// Texture names
const (
	CarTexture        = "car"
	ProjectileTexture = "shoot"
)
