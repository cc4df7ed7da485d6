// Package ui is a small retained-mode scene graph for the race HUD.
//
// Coordinates follow the stage convention: origin at the bottom-left corner,
// y pointing up. Widget positions are relative to their parent group.
package ui

import "github.com/hajimehoshi/ebiten/v2"

// Actor is anything that can be added to a Group
type Actor interface {
	widget() *Widget
	Draw(dst *ebiten.Image, view View)
}

// Widget holds the geometry shared by every actor
type Widget struct {
	x, y          float64
	width, height float64
	hidden        bool
	parent        *Group
}

func (w *Widget) widget() *Widget {
	return w
}

func (w *Widget) X() float64      { return w.x }
func (w *Widget) Y() float64      { return w.y }
func (w *Widget) Width() float64  { return w.width }
func (w *Widget) Height() float64 { return w.height }

// SetPosition moves the widget inside its parent
func (w *Widget) SetPosition(x, y float64) {
	w.x, w.y = x, y
}

func (w *Widget) SetSize(width, height float64) {
	w.width, w.height = width, height
}

func (w *Widget) IsVisible() bool {
	return !w.hidden
}

func (w *Widget) SetVisible(visible bool) {
	w.hidden = !visible
}

// Parent returns the group holding the widget, nil for a stage root or a
// detached widget
func (w *Widget) Parent() *Group {
	return w.parent
}

// Stage returns the stage the widget is attached to, or nil
func (w *Widget) Stage() *Stage {
	if w.parent == nil {
		return nil
	}
	g := w.parent
	for g.parent != nil {
		g = g.parent
	}
	return g.stage
}

// Hit reports whether the local point is inside the widget. Hidden widgets
// are never hit.
func (w *Widget) Hit(localX, localY float64) bool {
	if w.hidden {
		return false
	}
	return localX >= 0 && localX < w.width && localY >= 0 && localY < w.height
}

// LocalToStage converts a point in widget coordinates to stage coordinates
func (w *Widget) LocalToStage(x, y float64) (float64, float64) {
	x += w.x
	y += w.y
	for g := w.parent; g != nil; g = g.parent {
		x += g.x
		y += g.y
	}
	return x, y
}

// StageToLocal converts a point in stage coordinates to widget coordinates
func (w *Widget) StageToLocal(x, y float64) (float64, float64) {
	ox, oy := w.LocalToStage(0, 0)
	return x - ox, y - oy
}
