package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"tinywheels/ui"
)

// DebugState holds the debug overlay flags, they survive race restarts
type DebugState struct {
	ShowWaypoints bool // Waypoints, start positions and the target of each racer
	ShowBounds    bool // Bounding box of every fixture
}

var (
	waypointColor = color.RGBA{255, 255, 0, 160}
	startColor    = color.RGBA{255, 255, 255, 160}
	boundsColor   = color.RGBA{255, 0, 255, 200}
)

// RenderDebug draws the overlays enabled in debug on top of the race
func (r *Renderer) RenderDebug(screen *ebiten.Image, world *GameWorld, debug DebugState) {
	track := world.Track()
	if debug.ShowWaypoints {
		for i, wp := range track.Waypoints {
			sx, sy := r.camera.WorldToScreen(wp)
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(WaypointRadius*r.camera.Scale), 1, waypointColor, true)
			ui.DrawLabel(screen, fmt.Sprint(i), sx, sy, waypointColor)
		}
		for _, start := range track.Starts {
			sx, sy := r.camera.WorldToScreen(start)
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), 3, startColor, true)
		}
		for _, racer := range world.Racers() {
			next := track.Waypoints[racer.Progress().NextWaypoint(len(track.Waypoints))]
			ax, ay := r.camera.WorldToScreen(racer.Vehicle().Position())
			bx, by := r.camera.WorldToScreen(next)
			vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, waypointColor, true)
		}
	}

	if debug.ShowBounds {
		for _, body := range world.Physics().Bodies() {
			for _, f := range body.Fixtures() {
				r.strokeBB(screen, f.BB())
			}
		}
	}
}

// strokeBB outlines an axis aligned box, which the camera may rotate
func (r *Renderer) strokeBB(screen *ebiten.Image, bb cp.BB) {
	corners := []cp.Vector{{X: bb.L, Y: bb.B}, {X: bb.R, Y: bb.B}, {X: bb.R, Y: bb.T}, {X: bb.L, Y: bb.T}}
	for i := range corners {
		ax, ay := r.camera.WorldToScreen(corners[i])
		bx, by := r.camera.WorldToScreen(corners[(i+1)%len(corners)])
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 1, boundsColor, true)
	}
}
