// Package physics wraps the chipmunk space (github.com/jakecoffman/cp) with
// the small rigid-body vocabulary the race core works with: bodies,
// fixtures, forces and collision filters.
package physics

import "github.com/jakecoffman/cp"

// UnitForPixel converts map pixels to simulation units.
const UnitForPixel = 0.1

// World owns the cp space and every body created through it
type World struct {
	space  *cp.Space
	bodies []*Body
}

// NewWorld creates a world without gravity (the track is seen from above)
func NewWorld() *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &World{
		space:  space,
		bodies: make([]*Body, 0, 32),
	}
}

// Space exposes the underlying cp space
func (w *World) Space() *cp.Space {
	return w.space
}

// Bodies returns the bodies in creation order
func (w *World) Bodies() []*Body {
	return w.bodies
}

// CreateBody adds a body without fixtures to the world
func (w *World) CreateBody(def BodyDef) *Body {
	var cb *cp.Body
	switch def.Type {
	case StaticBody:
		cb = cp.NewStaticBody()
	default:
		// Replaced by the mass of the fixtures once one has a density
		cb = cp.NewBody(1, 1)
	}
	cb.SetPosition(def.Position)
	cb.SetAngle(def.Angle)
	w.space.AddBody(cb)

	body := &Body{
		world:    w,
		body:     cb,
		bodyType: def.Type,
	}
	cb.UserData = body
	w.bodies = append(w.bodies, body)
	return body
}

// Step integrates every body over dt and clears the forces applied for this
// step, so ApplyForce only ever lasts one step.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
	for _, b := range w.bodies {
		if b.bodyType != DynamicBody {
			continue
		}
		b.body.SetForce(cp.Vector{})
		b.body.SetTorque(0)
	}
}
