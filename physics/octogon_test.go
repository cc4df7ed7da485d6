package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOctogon(t *testing.T) {
	values := CreateOctogon(10, 10, 2, 2)
	require.Len(t, values, 16)

	for i, v := range values {
		assert.GreaterOrEqual(t, v, -5.0, "value %d", i)
		assert.LessOrEqual(t, v, 5.0, "value %d", i)
	}

	// First vertex is the bottom right one before the corner
	assert.Equal(t, []float64{3, -5}, values[:2])

	verts := VerticesFromFloats(values, 1)
	require.Len(t, verts, 8)
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		c := verts[(i+2)%len(verts)]
		cross := b.Sub(a).Cross(c.Sub(b))
		assert.Greater(t, cross, 0.0, "vertex %d is not a counter-clockwise convex turn", i)
	}
}

func TestCreateOctogonAsymmetricCorners(t *testing.T) {
	values := CreateOctogon(4, 8, 1, 2)
	assert.Equal(t, []float64{
		1, -4,
		2, -2,
		2, 2,
		1, 4,
		-1, 4,
		-2, 2,
		-2, -2,
		-1, -4,
	}, values)
	assert.Equal(t, CreateOctogon(4, 8, 1, 1), CreateSymmetricOctogon(4, 8, 1))
}

func TestVerticesFromFloatsScales(t *testing.T) {
	verts := VerticesFromFloats([]float64{10, 20, 30, 40, 50}, UnitForPixel)
	require.Len(t, verts, 2)
	assert.InDelta(t, 1, verts[0].X, 1e-9)
	assert.InDelta(t, 2, verts[0].Y, 1e-9)
	assert.InDelta(t, 3, verts[1].X, 1e-9)
	assert.InDelta(t, 4, verts[1].Y, 1e-9)
}
