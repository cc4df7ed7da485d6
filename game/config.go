package game

// GamePlay holds the gameplay tunables. It is passed explicitly to every
// component that needs it.
type GamePlay struct {
	// RacerCount is the number of racers, player included
	RacerCount int `mapstructure:"racerCount"`

	// MaxDrivingForce is the traction force of an accelerating vehicle
	MaxDrivingForce float64 `mapstructure:"maxDrivingForce"`

	// MaxLateralImpulse caps the grip impulse; above it the vehicle skids
	MaxLateralImpulse float64 `mapstructure:"maxLateralImpulse"`

	// MaxSkidmarks is the size of the skidmark ring buffer of each vehicle
	MaxSkidmarks int `mapstructure:"maxSkidmarks"`

	// LowSpeedMaxSteer is the steering angle at rest, in degrees
	LowSpeedMaxSteer float64 `mapstructure:"lowSpeedMaxSteer"`

	// HighSpeedMaxSteer is the steering angle at top speed, in degrees
	HighSpeedMaxSteer float64 `mapstructure:"highSpeedMaxSteer"`

	// VehicleDensity sets the vehicle mass through its hull area
	VehicleDensity float64 `mapstructure:"vehicleDensity"`

	// VehicleRestitution is the bounciness of vehicle hulls
	VehicleRestitution float64 `mapstructure:"vehicleRestitution"`

	// VehicleFriction is the friction of vehicle hulls. Contact friction is
	// the product of both fixtures, 0 lets vehicles slide along walls.
	VehicleFriction float64 `mapstructure:"vehicleFriction"`

	// GroundDragFactor scales the drag opposing the vehicle velocity
	GroundDragFactor float64 `mapstructure:"groundDragFactor"`

	// BorderRestitution is the bounciness of the track borders
	BorderRestitution float64 `mapstructure:"borderRestitution"`

	// BorderFriction is the friction of the track borders
	BorderFriction float64 `mapstructure:"borderFriction"`

	// RotateCamera makes the camera follow the player vehicle heading
	RotateCamera bool `mapstructure:"rotateCamera"`

	// ViewportWidth is the visible width of the track, in simulation units
	ViewportWidth float64 `mapstructure:"viewportWidth"`

	// SpinSpeed is the angular speed of a spinning vehicle, in degrees per second
	SpinSpeed float64 `mapstructure:"spinSpeed"`

	// SpinDuration is how long a vehicle spins after a crash, in seconds
	SpinDuration float64 `mapstructure:"spinDuration"`

	// TurboImpulse is the forward impulse given by a turbo bonus
	TurboImpulse float64 `mapstructure:"turboImpulse"`

	// CrashThreshold is the speed change in one step above which a vehicle crashed
	CrashThreshold float64 `mapstructure:"crashThreshold"`

	// CrashDamageFactor converts the speed change above the threshold to damage
	CrashDamageFactor float64 `mapstructure:"crashDamageFactor"`

	// MaxHealth is the health of a new racer
	MaxHealth float64 `mapstructure:"maxHealth"`

	// CountdownSeconds is the length of the pre-race countdown
	CountdownSeconds float64 `mapstructure:"countdownSeconds"`

	// HudButtonSize is the size of the on-screen buttons, in stage units
	HudButtonSize float64 `mapstructure:"hudButtonSize"`
}

// DefaultGamePlay returns the default tunables
func DefaultGamePlay() GamePlay {
	return GamePlay{
		RacerCount:         6,
		MaxDrivingForce:    160,
		MaxLateralImpulse:  6,
		MaxSkidmarks:       200,
		LowSpeedMaxSteer:   30,
		HighSpeedMaxSteer:  10,
		VehicleDensity:     4,
		VehicleRestitution: 0.5,
		GroundDragFactor:   8,
		BorderRestitution:  1,
		BorderFriction:     0.5,
		RotateCamera:       true,
		ViewportWidth:      40,
		SpinSpeed:          540,
		SpinDuration:       1,
		TurboImpulse:       80,
		CrashThreshold:     12,
		CrashDamageFactor:  2,
		MaxHealth:          100,
		CountdownSeconds:   3,
		HudButtonSize:      120,
	}
}

// TopSpeed returns the speed at which drag cancels the driving force
func (gp GamePlay) TopSpeed() float64 {
	if gp.GroundDragFactor <= 0 {
		return 0
	}
	return gp.MaxDrivingForce / gp.GroundDragFactor
}
