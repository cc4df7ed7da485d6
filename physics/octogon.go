package physics

import "github.com/jakecoffman/cp"

// CreateSymmetricOctogon is CreateOctogon with the same corner size on both axes
func CreateSymmetricOctogon(width, height, corner float64) []float64 {
	return CreateOctogon(width, height, corner, corner)
}

// CreateOctogon returns the vertices of a width x height rectangle centered on
// the origin with its four corners cut, as x,y pairs in counter-clockwise
// order. Corners must be smaller than half the matching dimension, this is
// not checked.
func CreateOctogon(width, height, cornerWidth, cornerHeight float64) []float64 {
	hw, hh := width/2, height/2
	return []float64{
		hw - cornerWidth, -hh,
		hw, -hh + cornerHeight,
		hw, hh - cornerHeight,
		hw - cornerWidth, hh,
		-hw + cornerWidth, hh,
		-hw, hh - cornerHeight,
		-hw, -hh + cornerHeight,
		-hw + cornerWidth, -hh,
	}
}

// VerticesFromFloats turns x,y pairs into vectors, scaled by scale. A trailing
// odd value is ignored.
func VerticesFromFloats(values []float64, scale float64) []cp.Vector {
	verts := make([]cp.Vector, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		verts = append(verts, cp.Vector{X: values[i] * scale, Y: values[i+1] * scale})
	}
	return verts
}
