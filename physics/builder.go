package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"tinywheels/tiled"
)

// CreateStaticBox creates a static body covering the rectangle whose
// bottom-left corner is x, y. Friction and restitution keep the engine
// defaults.
func CreateStaticBox(w *World, x, y, width, height float64) *Body {
	body := w.CreateBody(BodyDef{
		Type:     StaticBody,
		Position: cp.Vector{X: x + width/2, Y: y + height/2},
	})
	body.CreateFixture(BoxShape{HalfWidth: width / 2, HalfHeight: height / 2}, 1)
	return body
}

// CreateStaticBodyForMapObject turns a rectangle, polygon or ellipse map
// object into a static body, converting pixels with UnitForPixel.
//
// Ellipses become circles using their width only. Polygons with fewer than
// three vertices are rejected before any body is created.
func CreateStaticBodyForMapObject(w *World, obj tiled.MapObject) (*Body, error) {
	const u = UnitForPixel

	switch o := obj.(type) {
	case *tiled.Rectangle:
		return CreateStaticBox(w, o.X*u, o.Y*u, o.Width*u, o.Height*u), nil

	case *tiled.Polygon:
		if len(o.Vertices) < 6 || len(o.Vertices)%2 != 0 {
			return nil, fmt.Errorf("%w: got %d coordinates", ErrDegeneratePolygon, len(o.Vertices))
		}
		body := w.CreateBody(BodyDef{
			Type:     StaticBody,
			Position: cp.Vector{X: o.X * u, Y: o.Y * u},
		})
		body.CreateFixture(PolygonShape{Vertices: VerticesFromFloats(o.Vertices, u)}, 1)
		return body, nil

	case *tiled.Ellipse:
		radius := o.Width * u / 2
		body := w.CreateBody(BodyDef{
			Type:     StaticBody,
			Position: cp.Vector{X: o.X*u + radius, Y: o.Y*u + radius},
		})
		body.CreateFixture(CircleShape{Radius: radius}, 1)
		return body, nil
	}

	kind := "<nil>"
	if obj != nil {
		kind = obj.Kind()
	}
	return nil, &UnsupportedShapeKindError{Kind: kind}
}

// SetCollisionInfo sets the same category and mask on every fixture of body
func SetCollisionInfo(body *Body, categoryBits, maskBits uint) {
	for _, f := range body.Fixtures() {
		f.SetFilter(Filter{CategoryBits: categoryBits, MaskBits: maskBits})
	}
}

// SetBodyFriction sets the same friction on every fixture of body
func SetBodyFriction(body *Body, friction float64) {
	for _, f := range body.Fixtures() {
		f.SetFriction(friction)
	}
}

// SetBodyRestitution sets the same restitution on every fixture of body
func SetBodyRestitution(body *Body, restitution float64) {
	for _, f := range body.Fixtures() {
		f.SetRestitution(restitution)
	}
}
