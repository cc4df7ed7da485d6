package tiled

import (
	"fmt"
	"io"
	"os"

	gotiled "github.com/lafriks/go-tiled"
)

// Map is the part of a TMX map the game needs: its size and object layers
type Map struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Layers     []*ObjectLayer
}

// ObjectLayer is a named list of objects
type ObjectLayer struct {
	Name    string
	Objects []MapObject
}

// PixelSize returns the map size in pixels
func (m *Map) PixelSize() (float64, float64) {
	return float64(m.Width * m.TileWidth), float64(m.Height * m.TileHeight)
}

// Layer returns the object layer with the given name, or nil
func (m *Map) Layer(name string) *ObjectLayer {
	for _, l := range m.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// LoadFile reads a TMX file from disk
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Load parses a TMX document and keeps its object layers. Tile layers are
// ignored.
func Load(r io.Reader) (*Map, error) {
	raw, err := gotiled.LoadReader(".", r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tmx: %w", err)
	}

	m := &Map{
		Width:      raw.Width,
		Height:     raw.Height,
		TileWidth:  raw.TileWidth,
		TileHeight: raw.TileHeight,
	}
	_, mapHeight := m.PixelSize()

	for _, group := range raw.ObjectGroups {
		layer := &ObjectLayer{Name: group.Name}
		for _, o := range group.Objects {
			layer.Objects = append(layer.Objects, convert(o, mapHeight))
		}
		m.Layers = append(m.Layers, layer)
	}
	return m, nil
}

// convert flips a decoded object to y-up. Objects without a shape, a tile or
// a size are points.
func convert(o *gotiled.Object, mapHeight float64) MapObject {
	base := Object{
		ObjectID:   int(o.ID),
		ObjectName: o.Name,
	}
	if len(o.Properties) > 0 {
		base.Properties = make(map[string]string, len(o.Properties))
		for _, p := range o.Properties {
			base.Properties[p.Name] = p.Value
		}
	}

	switch {
	case len(o.Polygons) > 0:
		return &Polygon{Object: base, X: o.X, Y: mapHeight - o.Y, Vertices: flipPoints(o.Polygons[0].Points)}
	case len(o.PolyLines) > 0:
		return &Polyline{Object: base, X: o.X, Y: mapHeight - o.Y, Vertices: flipPoints(o.PolyLines[0].Points)}
	case len(o.Ellipses) > 0:
		return &Ellipse{Object: base, X: o.X, Y: mapHeight - o.Y - o.Height, Width: o.Width, Height: o.Height}
	case o.GID != 0:
		// Tile objects are anchored at their bottom-left corner already
		return &Tile{Object: base, X: o.X, Y: mapHeight - o.Y, Width: o.Width, Height: o.Height, GID: uint32(o.GID)}
	case o.Width == 0 && o.Height == 0:
		return &Point{Object: base, X: o.X, Y: mapHeight - o.Y}
	default:
		return &Rectangle{Object: base, X: o.X, Y: mapHeight - o.Y - o.Height, Width: o.Width, Height: o.Height}
	}
}

// flipPoints returns x,y pairs with y negated to match the flipped axis
func flipPoints(points *gotiled.Points) []float64 {
	if points == nil {
		return nil
	}
	out := make([]float64, 0, len(*points)*2)
	for _, p := range *points {
		out = append(out, p.X, -p.Y)
	}
	return out
}
