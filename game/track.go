package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"

	"tinywheels/physics"
	"tinywheels/tiled"
)

// Object layers read from a track map
const (
	bordersLayer   = "borders"
	waypointsLayer = "waypoints"
	startsLayer    = "starts"
	bonusLayer     = "bonus"
)

var (
	// ErrNoWaypoints is returned for a map without waypoints
	ErrNoWaypoints = errors.New("track has no waypoints")

	// ErrNoStarts is returned for a map without start positions
	ErrNoStarts = errors.New("track has no start positions")
)

// Track is a loaded race track, in simulation units
type Track struct {
	Walls      []*physics.Body
	Waypoints  []cp.Vector
	Starts     []cp.Vector
	BonusSpots []*BonusSpot
	Laps       int

	// Size of the map
	Width, Height float64
}

// LoadTrack builds the walls of m in world and reads its waypoints, start
// positions and bonus spots. Loading stops at the first border that cannot
// become a body.
func LoadTrack(world *physics.World, gp GamePlay, m *tiled.Map, laps int) (*Track, error) {
	w, h := m.PixelSize()
	track := &Track{
		Laps:   laps,
		Width:  w * physics.UnitForPixel,
		Height: h * physics.UnitForPixel,
	}

	if layer := m.Layer(bordersLayer); layer != nil {
		for _, obj := range layer.Objects {
			body, err := physics.CreateStaticBodyForMapObject(world, obj)
			if err != nil {
				return nil, fmt.Errorf("border object %d (%s): %w", obj.ID(), obj.Kind(), err)
			}
			physics.SetCollisionInfo(body, CategoryWall, CategoryRacer)
			physics.SetBodyRestitution(body, gp.BorderRestitution)
			physics.SetBodyFriction(body, gp.BorderFriction)
			track.Walls = append(track.Walls, body)
		}
	}

	var err error
	if track.Waypoints, err = layerPoints(m, waypointsLayer); err != nil {
		return nil, err
	}
	if len(track.Waypoints) == 0 {
		return nil, ErrNoWaypoints
	}
	if track.Starts, err = layerPoints(m, startsLayer); err != nil {
		return nil, err
	}
	if len(track.Starts) == 0 {
		return nil, ErrNoStarts
	}

	spots, err := layerPoints(m, bonusLayer)
	if err != nil {
		return nil, err
	}
	for _, p := range spots {
		track.BonusSpots = append(track.BonusSpots, &BonusSpot{Position: p})
	}
	return track, nil
}

// layerPoints returns the points of a layer, sorted by name and converted to
// simulation units. A missing layer gives no points.
func layerPoints(m *tiled.Map, name string) ([]cp.Vector, error) {
	layer := m.Layer(name)
	if layer == nil {
		return nil, nil
	}

	points := make([]*tiled.Point, 0, len(layer.Objects))
	for _, obj := range layer.Objects {
		p, ok := obj.(*tiled.Point)
		if !ok {
			return nil, fmt.Errorf("%s object %d: expected a point, got %s", name, obj.ID(), obj.Kind())
		}
		points = append(points, p)
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Name() < points[j].Name()
	})

	out := make([]cp.Vector, len(points))
	for i, p := range points {
		out[i] = cp.Vector{X: p.X * physics.UnitForPixel, Y: p.Y * physics.UnitForPixel}
	}
	return out, nil
}
