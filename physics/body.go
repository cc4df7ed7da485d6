package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// BodyType identifies how a body takes part in the simulation
type BodyType int

const (
	StaticBody BodyType = iota
	DynamicBody
)

// BodyDef describes a body before it is added to a world
type BodyDef struct {
	Type     BodyType
	Position cp.Vector
	Angle    float64
}

// Body is a rigid body with its fixtures
type Body struct {
	world    *World
	body     *cp.Body
	bodyType BodyType
	fixtures []*Fixture

	// UserData is free for the owner of the body (vehicles store themselves here)
	UserData any
}

// Type returns the body type
func (b *Body) Type() BodyType {
	return b.bodyType
}

// CP exposes the underlying cp body
func (b *Body) CP() *cp.Body {
	return b.body
}

// CreateFixture attaches a shape with the given density to the body
func (b *Body) CreateFixture(shape Shape, density float64) *Fixture {
	cs := shape.build(b.body)
	b.world.space.AddShape(cs)
	if density > 0 && b.bodyType == DynamicBody {
		cs.SetDensity(density)
	}

	f := &Fixture{
		body:    b,
		shape:   cs,
		def:     shape,
		density: density,
	}
	cs.UserData = f
	b.fixtures = append(b.fixtures, f)
	return f
}

// Fixtures returns the fixture list in creation order
func (b *Body) Fixtures() []*Fixture {
	return b.fixtures
}

// Position returns the body origin in world coordinates
func (b *Body) Position() cp.Vector {
	return b.body.Position()
}

// Angle returns the body rotation in radians
func (b *Body) Angle() float64 {
	return b.body.Angle()
}

// SetTransform moves and rotates the body
func (b *Body) SetTransform(position cp.Vector, angle float64) {
	b.body.SetPosition(position)
	b.body.SetAngle(angle)
}

// LinearVelocity returns the velocity of the center of gravity
func (b *Body) LinearVelocity() cp.Vector {
	return b.body.Velocity()
}

// SetLinearVelocity overrides the linear velocity
func (b *Body) SetLinearVelocity(v cp.Vector) {
	b.body.SetVelocityVector(v)
}

// AngularVelocity returns the angular velocity in radians per second
func (b *Body) AngularVelocity() float64 {
	return b.body.AngularVelocity()
}

// SetAngularVelocity overrides the angular velocity
func (b *Body) SetAngularVelocity(w float64) {
	b.body.SetAngularVelocity(w)
}

// Mass returns the mass accumulated from the fixtures (infinite for static bodies)
func (b *Body) Mass() float64 {
	return b.body.Mass()
}

// WorldCenter returns the center of gravity in world coordinates
func (b *Body) WorldCenter() cp.Vector {
	return b.body.LocalToWorld(b.body.CenterOfGravity())
}

// WorldVector rotates a local vector into world space (no translation)
func (b *Body) WorldVector(local cp.Vector) cp.Vector {
	sin, cos := math.Sincos(b.body.Angle())
	return cp.Vector{
		X: cos*local.X - sin*local.Y,
		Y: sin*local.X + cos*local.Y,
	}
}

// WorldPoint converts a local point to world coordinates
func (b *Body) WorldPoint(local cp.Vector) cp.Vector {
	return b.WorldVector(local).Add(b.body.Position())
}

// ApplyForce applies a force at a world point for the current step
func (b *Body) ApplyForce(force, point cp.Vector) {
	b.body.ApplyForceAtWorldPoint(force, point)
}

// ApplyForceToCenter applies a force at the center of gravity
func (b *Body) ApplyForceToCenter(force cp.Vector) {
	b.ApplyForce(force, b.WorldCenter())
}

// ApplyLinearImpulse changes the velocity immediately
func (b *Body) ApplyLinearImpulse(impulse, point cp.Vector) {
	b.body.ApplyImpulseAtWorldPoint(impulse, point)
}

// Force returns the force accumulated for the current step
func (b *Body) Force() cp.Vector {
	return b.body.Force()
}
