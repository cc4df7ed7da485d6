// Package tiled holds the map objects of a Tiled map and a loader for the
// object layers of TMX files.
//
// Coordinates are in map pixels with y pointing up: the loader flips the y
// axis of the file so objects can be fed to the physics world directly.
package tiled

// MapObject is any object found in an object layer. Concrete values are
// *Rectangle, *Polygon, *Polyline, *Ellipse, *Point and *Tile.
type MapObject interface {
	ID() int
	Name() string
	Kind() string
}

// Object holds what every map object has in common
type Object struct {
	ObjectID   int
	ObjectName string
	Properties map[string]string
}

func (o Object) ID() int {
	return o.ObjectID
}

func (o Object) Name() string {
	return o.ObjectName
}

// Property returns a custom property, or def when it is not set
func (o Object) Property(name, def string) string {
	if v, ok := o.Properties[name]; ok {
		return v
	}
	return def
}

// Rectangle has its bottom-left corner at X, Y
type Rectangle struct {
	Object
	X, Y          float64
	Width, Height float64
}

func (*Rectangle) Kind() string { return "rectangle" }

// Polygon vertices are x,y pairs relative to X, Y
type Polygon struct {
	Object
	X, Y     float64
	Vertices []float64
}

func (*Polygon) Kind() string { return "polygon" }

// Polyline is an open Polygon
type Polyline struct {
	Object
	X, Y     float64
	Vertices []float64
}

func (*Polyline) Kind() string { return "polyline" }

// Ellipse is inscribed in the rectangle whose bottom-left corner is X, Y
type Ellipse struct {
	Object
	X, Y          float64
	Width, Height float64
}

func (*Ellipse) Kind() string { return "ellipse" }

type Point struct {
	Object
	X, Y float64
}

func (*Point) Kind() string { return "point" }

// Tile is a tile placed as an object
type Tile struct {
	Object
	X, Y          float64
	Width, Height float64
	GID           uint32
}

func (*Tile) Kind() string { return "tile" }
