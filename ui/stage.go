package ui

import "github.com/hajimehoshi/ebiten/v2"

// View maps stage coordinates to the pixels of the image being drawn on
type View struct {
	ScaleX, ScaleY float64
	ScreenHeight   float64
}

// ToScreen converts a stage point to screen pixels (y pointing down)
func (v View) ToScreen(x, y float64) (float64, float64) {
	return x * v.ScaleX, v.ScreenHeight - y*v.ScaleY
}

// Rect returns the screen rectangle covered by a widget: top-left corner
// and size
func (v View) Rect(w *Widget) (x, y, width, height float64) {
	sx, sy := w.LocalToStage(0, 0)
	x, y = v.ToScreen(sx, sy+w.height)
	return x, y, w.width * v.ScaleX, w.height * v.ScaleY
}

// Stage owns the root group and the virtual size the HUD is laid out in
type Stage struct {
	width, height float64
	root          *Group
}

// NewStage creates a stage with a virtual size of width x height
func NewStage(width, height float64) *Stage {
	s := &Stage{root: NewGroup()}
	s.root.stage = s
	s.Resize(width, height)
	return s
}

func (s *Stage) Width() float64  { return s.width }
func (s *Stage) Height() float64 { return s.height }

// Root returns the group every actor of the stage descends from
func (s *Stage) Root() *Group {
	return s.root
}

// Resize changes the virtual size and lays the actors out again
func (s *Stage) Resize(width, height float64) {
	s.width, s.height = width, height
	s.root.SetSize(width, height)
	s.Layout()
}

func (s *Stage) Layout() {
	s.root.Layout()
}

// Draw stretches the stage over dst
func (s *Stage) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	view := View{
		ScaleX:       float64(b.Dx()) / s.width,
		ScaleY:       float64(b.Dy()) / s.height,
		ScreenHeight: float64(b.Dy()),
	}
	s.root.Draw(dst, view)
}
