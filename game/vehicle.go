package game

import (
	"math"

	"github.com/jakecoffman/cp"

	"tinywheels/physics"
)

// Vehicle is the physical car of a racer. Its pilot sets the control flags,
// Act turns them into forces.
type Vehicle struct {
	gp   GamePlay
	body *physics.Body

	// Control flags, written by the pilot once per tick
	direction    int
	accelerating bool
	braking      bool

	// Skidmarks ring buffer
	skidmarks    []cp.Vector
	skidmarkHead int
	skidding     bool

	// Remaining spin time after a crash, and its direction
	spinTime float64
	spinDir  float64

	// Velocity at the end of the last Act, used to detect crashes
	lastVelocity cp.Vector
}

// NewVehicle creates a vehicle at position, its front pointing along angle
// (0 faces +y)
func NewVehicle(world *physics.World, gp GamePlay, position cp.Vector, angle float64) *Vehicle {
	body := world.CreateBody(physics.BodyDef{
		Type:     physics.DynamicBody,
		Position: position,
		Angle:    angle,
	})
	hull := physics.CreateSymmetricOctogon(VehicleWidth, VehicleLength, VehicleCorner)
	body.CreateFixture(physics.PolygonShape{Vertices: physics.VerticesFromFloats(hull, 1)}, gp.VehicleDensity)
	physics.SetBodyRestitution(body, gp.VehicleRestitution)
	physics.SetBodyFriction(body, gp.VehicleFriction)
	physics.SetCollisionInfo(body, CategoryRacer, CategoryWall|CategoryRacer)

	v := &Vehicle{
		gp:        gp,
		body:      body,
		skidmarks: make([]cp.Vector, 0, max(gp.MaxSkidmarks, 0)),
	}
	body.UserData = v
	return v
}

func (v *Vehicle) Body() *physics.Body {
	return v.body
}

func (v *Vehicle) Position() cp.Vector {
	return v.body.Position()
}

func (v *Vehicle) Angle() float64 {
	return v.body.Angle()
}

func (v *Vehicle) Direction() int {
	return v.direction
}

// SetDirection sets the steering: 1 turns left, -1 right, 0 straight.
// Other values are clamped.
func (v *Vehicle) SetDirection(direction int) {
	v.direction = max(-1, min(direction, 1))
}

func (v *Vehicle) IsAccelerating() bool {
	return v.accelerating
}

func (v *Vehicle) SetAccelerating(accelerating bool) {
	v.accelerating = accelerating
}

func (v *Vehicle) IsBraking() bool {
	return v.braking
}

func (v *Vehicle) SetBraking(braking bool) {
	v.braking = braking
}

// ForwardVelocity returns the velocity along the vehicle heading
func (v *Vehicle) ForwardVelocity() cp.Vector {
	return physics.ForwardVelocity(v.body)
}

// LateralVelocity returns the sideways velocity (slip)
func (v *Vehicle) LateralVelocity() cp.Vector {
	return physics.LateralVelocity(v.body)
}

// Speed returns the signed speed along the heading, negative when reversing
func (v *Vehicle) Speed() float64 {
	return v.forward().Dot(v.body.LinearVelocity())
}

// IsSkidding returns true if the grip could not cancel the slip last tick
func (v *Vehicle) IsSkidding() bool {
	return v.skidding
}

func (v *Vehicle) IsSpinning() bool {
	return v.spinTime > 0
}

// Skidmarks returns the recorded skidmarks, oldest first
func (v *Vehicle) Skidmarks() []cp.Vector {
	if len(v.skidmarks) < cap(v.skidmarks) {
		return v.skidmarks
	}
	out := make([]cp.Vector, 0, len(v.skidmarks))
	out = append(out, v.skidmarks[v.skidmarkHead:]...)
	return append(out, v.skidmarks[:v.skidmarkHead]...)
}

// ApplyTurbo pushes the vehicle forward
func (v *Vehicle) ApplyTurbo(impulse float64) {
	v.body.ApplyLinearImpulse(v.forward().Mult(impulse), v.body.WorldCenter())
}

// Spin makes the vehicle spin out of control for GamePlay.SpinDuration
func (v *Vehicle) Spin() {
	v.spinTime = v.gp.SpinDuration
	v.spinDir = 1
	if v.body.AngularVelocity() < 0 {
		v.spinDir = -1
	}
}

// Act applies the forces for this tick
func (v *Vehicle) Act(dt float64) {
	if v.spinTime > 0 {
		v.spinTime -= dt
		v.body.SetAngularVelocity(v.spinDir * v.gp.SpinSpeed * math.Pi / 180)
		v.skidding = false
	} else {
		v.updateSteering()
		v.updateTraction()
		v.updateGrip()
	}
	physics.ApplyDrag(v.body, v.gp.GroundDragFactor)
	v.lastVelocity = v.body.LinearVelocity()
}

// CrashSpeed returns how much the velocity changed since the end of Act. It
// is meant to be called after the physics step: forces barely change the
// velocity in one step, collisions do.
func (v *Vehicle) CrashSpeed() float64 {
	return v.body.LinearVelocity().Sub(v.lastVelocity).Length()
}

func (v *Vehicle) forward() cp.Vector {
	return v.body.WorldVector(cp.Vector{X: 0, Y: 1})
}

// updateSteering uses a bicycle model: the turn rate grows with the speed,
// while the steering angle shrinks from LowSpeedMaxSteer at rest to
// HighSpeedMaxSteer at top speed
func (v *Vehicle) updateSteering() {
	speed := v.Speed()
	ratio := 0.0
	if top := v.gp.TopSpeed(); top > 0 {
		ratio = math.Min(math.Abs(speed)/top, 1)
	}
	maxSteer := v.gp.LowSpeedMaxSteer + (v.gp.HighSpeedMaxSteer-v.gp.LowSpeedMaxSteer)*ratio
	steer := float64(v.direction) * maxSteer * math.Pi / 180
	v.body.SetAngularVelocity(speed * math.Tan(steer) / wheelBase)
}

func (v *Vehicle) updateTraction() {
	var force float64
	switch {
	case v.accelerating:
		force = v.gp.MaxDrivingForce
	case v.braking:
		force = -v.gp.MaxDrivingForce / 2
	default:
		return
	}
	v.body.ApplyForce(v.forward().Mult(force), v.body.WorldCenter())
}

// updateGrip cancels the lateral velocity, up to MaxLateralImpulse. Above it
// the vehicle skids and leaves a mark.
func (v *Vehicle) updateGrip() {
	impulse := v.LateralVelocity().Mult(-v.body.Mass())
	v.skidding = false
	if length := impulse.Length(); length > v.gp.MaxLateralImpulse {
		impulse = impulse.Mult(v.gp.MaxLateralImpulse / length)
		v.skidding = true
		v.addSkidmark(v.body.Position())
	}
	v.body.ApplyLinearImpulse(impulse, v.body.WorldCenter())
}

func (v *Vehicle) addSkidmark(p cp.Vector) {
	if cap(v.skidmarks) == 0 {
		return
	}
	if len(v.skidmarks) < cap(v.skidmarks) {
		v.skidmarks = append(v.skidmarks, p)
		return
	}
	v.skidmarks[v.skidmarkHead] = p
	v.skidmarkHead = (v.skidmarkHead + 1) % len(v.skidmarks)
}
