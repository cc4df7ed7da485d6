package physics

import "github.com/jakecoffman/cp"

// Shape is the geometry of a fixture, in body-local coordinates
type Shape interface {
	build(body *cp.Body) *cp.Shape
}

// BoxShape is an axis-aligned box centered on the body origin
type BoxShape struct {
	HalfWidth  float64
	HalfHeight float64
}

func (s BoxShape) build(body *cp.Body) *cp.Shape {
	return cp.NewBox(body, s.HalfWidth*2, s.HalfHeight*2, 0)
}

// PolygonShape is a convex polygon. Vertices must describe a convex hull,
// concave input is wrapped by its hull.
type PolygonShape struct {
	Vertices []cp.Vector
}

func (s PolygonShape) build(body *cp.Body) *cp.Shape {
	return cp.NewPolyShape(body, len(s.Vertices), s.Vertices, cp.NewTransformIdentity(), 0)
}

// CircleShape is a circle whose center is Offset from the body origin
type CircleShape struct {
	Radius float64
	Offset cp.Vector
}

func (s CircleShape) build(body *cp.Body) *cp.Shape {
	return cp.NewCircle(body, s.Radius, s.Offset)
}

// Filter holds the collision bits of a fixture. Two fixtures collide when
// each one's category is in the other's mask.
type Filter struct {
	CategoryBits uint
	MaskBits     uint
}

// Fixture attaches a shape and its material to a body
type Fixture struct {
	body    *Body
	shape   *cp.Shape
	def     Shape
	density float64
}

// Body returns the owning body
func (f *Fixture) Body() *Body {
	return f.body
}

// Shape returns the geometry the fixture was created from
func (f *Fixture) Shape() Shape {
	return f.def
}

// CP exposes the underlying cp shape
func (f *Fixture) CP() *cp.Shape {
	return f.shape
}

// Density returns the density the fixture was created with
func (f *Fixture) Density() float64 {
	return f.density
}

// Filter returns the collision category and mask
func (f *Fixture) Filter() Filter {
	cf := f.shape.Filter
	return Filter{CategoryBits: cf.Categories, MaskBits: cf.Mask}
}

// SetFilter replaces category and mask, the collision group is kept
func (f *Fixture) SetFilter(filter Filter) {
	cf := f.shape.Filter
	cf.Categories = filter.CategoryBits
	cf.Mask = filter.MaskBits
	f.shape.SetFilter(cf)
}

// Restitution returns the bounciness of the fixture
func (f *Fixture) Restitution() float64 {
	return f.shape.Elasticity()
}

func (f *Fixture) SetRestitution(restitution float64) {
	f.shape.SetElasticity(restitution)
}

func (f *Fixture) Friction() float64 {
	return f.shape.Friction()
}

func (f *Fixture) SetFriction(friction float64) {
	f.shape.SetFriction(friction)
}

// BB returns the world-space bounding box of the fixture
func (f *Fixture) BB() cp.BB {
	return f.shape.CacheBB()
}
