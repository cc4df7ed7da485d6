package game

// Pilot drives a vehicle. Act is called once per tick, before the vehicle
// applies its forces, and only touches the pilot's own vehicle.
type Pilot interface {
	Act(dt float64)
}

// releasingPilot is implemented by pilots owning HUD state that must be
// reset when they stop driving
type releasingPilot interface {
	Pilot
	Release()
}

// RaceState gives pilots the race phase
type RaceState interface {
	State() GameWorldState
}
