package physics

import "github.com/jakecoffman/cp"

var (
	forwardAxis = cp.Vector{X: 0, Y: 1}
	lateralAxis = cp.Vector{X: 1, Y: 0}
)

// ForwardVelocity returns the part of the body velocity along its facing
func ForwardVelocity(b *Body) cp.Vector {
	return project(b, forwardAxis)
}

// LateralVelocity returns the sideways part of the body velocity (slip)
func LateralVelocity(b *Body) cp.Vector {
	return project(b, lateralAxis)
}

func project(b *Body, localAxis cp.Vector) cp.Vector {
	axis := b.WorldVector(localAxis)
	return axis.Mult(axis.Dot(b.LinearVelocity()))
}

// ApplyDrag pushes against the current velocity with a force proportional to
// it. factor must not be negative.
func ApplyDrag(b *Body, factor float64) {
	drag := b.LinearVelocity().Mult(-factor)
	b.ApplyForce(drag, b.WorldCenter())
}
