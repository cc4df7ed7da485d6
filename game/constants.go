package game

// Collision categories
const (
	CategoryWall uint = 1 << iota
	CategoryRacer
)

const (
	// MaxTouches is the number of simultaneous touch points that are read
	MaxTouches = 5

	// Vehicle hull size in simulation units
	VehicleWidth  = 1.2
	VehicleLength = 2.4
	VehicleCorner = 0.3

	// wheelBase is the distance between the axles used by the steering model
	wheelBase = 1.6

	// WaypointRadius is how close a racer must get to a waypoint to pass it
	WaypointRadius = 9.0

	// bonusPickupRadius is how close a racer must get to a bonus spot
	bonusPickupRadius = 2.5

	// bonusRespawnDelay is how long a bonus spot stays empty once picked up
	bonusRespawnDelay = 3.0

	// aiSteerDeadAngle is the angle (radians) under which the AI drives straight
	aiSteerDeadAngle = 0.08
)
