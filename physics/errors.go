package physics

import (
	"errors"
	"fmt"
)

// ErrUnsupportedShapeKind matches every UnsupportedShapeKindError
var ErrUnsupportedShapeKind = errors.New("unsupported map object kind")

// UnsupportedShapeKindError is returned when a map object cannot be turned
// into a static body
type UnsupportedShapeKindError struct {
	Kind string
}

func (e *UnsupportedShapeKindError) Error() string {
	return fmt.Sprintf("unsupported map object kind %q", e.Kind)
}

func (e *UnsupportedShapeKindError) Is(target error) bool {
	return target == ErrUnsupportedShapeKind
}

// ErrDegeneratePolygon is returned for polygons with fewer than three
// vertices or an odd number of coordinates
var ErrDegeneratePolygon = errors.New("polygon needs at least 3 vertices")
