package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"tinywheels/physics"
)

// Camera represents the viewport into the track
type Camera struct {
	Center   cp.Vector // Looked at point, in simulation units
	Rotation float64   // Track rotation, the heading of the followed vehicle
	Scale    float64   // Pixels per simulation unit
	Width    float64   // Viewport width in pixels
	Height   float64   // Viewport height in pixels
}

// NewCamera creates a camera showing viewportWidth units across width pixels
func NewCamera(width, height, viewportWidth float64) *Camera {
	c := &Camera{}
	c.Resize(width, height, viewportWidth)
	return c
}

// Resize updates the viewport size, keeping viewportWidth units visible
func (c *Camera) Resize(width, height, viewportWidth float64) {
	c.Width = width
	c.Height = height
	c.Scale = 1
	if viewportWidth > 0 {
		c.Scale = width / viewportWidth
	}
}

// Follow centers the camera on a vehicle, rotating with it if rotate is set
func (c *Camera) Follow(v *Vehicle, rotate bool) {
	c.Center = v.Position()
	c.Rotation = 0
	if rotate {
		c.Rotation = v.Angle()
	}
}

// WorldToScreen converts simulation coordinates (y up) to screen pixels (y down)
func (c *Camera) WorldToScreen(p cp.Vector) (float64, float64) {
	d := p.Sub(c.Center)

	// Rotate the world the other way so the followed heading points up
	if c.Rotation != 0 {
		sin, cos := math.Sincos(-c.Rotation)
		d = cp.Vector{X: cos*d.X - sin*d.Y, Y: sin*d.X + cos*d.Y}
	}

	sx := c.Width/2 + d.X*c.Scale
	sy := c.Height/2 - d.Y*c.Scale
	return sx, sy
}

var (
	wallColor     = color.RGBA{200, 200, 200, 255}
	skidmarkColor = color.RGBA{40, 40, 40, 255}
	bonusColor    = color.RGBA{255, 200, 0, 255}
	disabledColor = color.RGBA{90, 90, 90, 255}

	// One color per start position
	racerColors = []color.RGBA{
		{0, 200, 0, 255},
		{230, 60, 60, 255},
		{80, 120, 255, 255},
		{255, 160, 0, 255},
		{200, 80, 220, 255},
		{0, 200, 200, 255},
	}
)

// Renderer draws the track and the racers
type Renderer struct {
	camera *Camera
}

// NewRenderer creates a new renderer
func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{
		camera: camera,
	}
}

// Render draws the whole race as seen by the camera
func (r *Renderer) Render(screen *ebiten.Image, world *GameWorld) {
	// Skidmarks go under everything else
	for _, racer := range world.Racers() {
		for _, p := range racer.Vehicle().Skidmarks() {
			sx, sy := r.camera.WorldToScreen(p)
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(0.15*r.camera.Scale), skidmarkColor, true)
		}
	}

	for _, wall := range world.Track().Walls {
		r.RenderBody(screen, wall, wallColor)
	}

	for _, spot := range world.Track().BonusSpots {
		if !spot.IsAvailable() {
			continue
		}
		sx, sy := r.camera.WorldToScreen(spot.Position)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(0.8*r.camera.Scale), 2, bonusColor, true)
	}

	for i, racer := range world.Racers() {
		clr := racerColors[i%len(racerColors)]
		if racer.Health().IsDisabled() {
			clr = disabledColor
		}
		r.RenderRacer(screen, racer, clr)
	}
}

// RenderRacer draws the hull, the heading and the health bar of a racer
func (r *Renderer) RenderRacer(screen *ebiten.Image, racer *Racer, clr color.Color) {
	vehicle := racer.Vehicle()
	r.RenderBody(screen, vehicle.Body(), clr)

	// Direction indicator from the center to the front
	cx, cy := r.camera.WorldToScreen(vehicle.Position())
	front := vehicle.Body().WorldPoint(cp.Vector{X: 0, Y: VehicleLength / 2})
	fx, fy := r.camera.WorldToScreen(front)
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(fx), float32(fy), 2, clr, true)

	// Health bar for damaged racers
	health := racer.Health()
	if health.Health() < health.MaxHealth() {
		barWidth := VehicleLength * r.camera.Scale
		barHeight := 4.0
		barX := cx - barWidth/2
		barY := cy - barWidth/2 - barHeight - 2

		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), color.RGBA{100, 0, 0, 255}, true)
		ratio := health.Health() / health.MaxHealth()
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth*ratio), float32(barHeight), color.RGBA{0, 255, 0, 255}, true)
	}
}

// RenderBody outlines every fixture of a body
func (r *Renderer) RenderBody(screen *ebiten.Image, body *physics.Body, clr color.Color) {
	for _, f := range body.Fixtures() {
		switch s := f.Shape().(type) {
		case physics.BoxShape:
			r.strokePolygon(screen, body, []cp.Vector{
				{X: -s.HalfWidth, Y: -s.HalfHeight},
				{X: s.HalfWidth, Y: -s.HalfHeight},
				{X: s.HalfWidth, Y: s.HalfHeight},
				{X: -s.HalfWidth, Y: s.HalfHeight},
			}, clr)
		case physics.PolygonShape:
			r.strokePolygon(screen, body, s.Vertices, clr)
		case physics.CircleShape:
			sx, sy := r.camera.WorldToScreen(body.WorldPoint(s.Offset))
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(s.Radius*r.camera.Scale), 2, clr, true)
		}
	}
}

func (r *Renderer) strokePolygon(screen *ebiten.Image, body *physics.Body, local []cp.Vector, clr color.Color) {
	for i := range local {
		ax, ay := r.camera.WorldToScreen(body.WorldPoint(local[i]))
		bx, by := r.camera.WorldToScreen(body.WorldPoint(local[(i+1)%len(local)]))
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 2, clr, true)
	}
}
