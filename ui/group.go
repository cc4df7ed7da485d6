package ui

import "github.com/hajimehoshi/ebiten/v2"

// Group is an actor containing other actors
type Group struct {
	Widget
	children   []Actor
	fillParent bool

	// set on the root group of a stage only
	stage *Stage
}

func NewGroup() *Group {
	return &Group{}
}

// AddActor appends actor to the group, removing it from its previous parent
func (g *Group) AddActor(actor Actor) {
	w := actor.widget()
	if w.parent != nil {
		w.parent.RemoveActor(actor)
	}
	w.parent = g
	g.children = append(g.children, actor)
}

// RemoveActor detaches actor, it returns false if actor is not a child
func (g *Group) RemoveActor(actor Actor) bool {
	for i, child := range g.children {
		if child == actor {
			g.children = append(g.children[:i], g.children[i+1:]...)
			actor.widget().parent = nil
			return true
		}
	}
	return false
}

// Stage returns the stage the group belongs to, including when g is its root
func (g *Group) Stage() *Stage {
	if g.parent == nil {
		return g.stage
	}
	return g.Widget.Stage()
}

func (g *Group) Children() []Actor {
	return g.children
}

// SetFillParent makes the group take the size of its parent on Layout
func (g *Group) SetFillParent(fill bool) {
	g.fillParent = fill
}

// Layout sizes the group if it fills its parent, then lays out child groups
func (g *Group) Layout() {
	if g.fillParent && g.parent != nil {
		g.SetPosition(0, 0)
		g.SetSize(g.parent.Width(), g.parent.Height())
	}
	layoutChildren(g.children)
}

func layoutChildren(children []Actor) {
	for _, child := range children {
		if l, ok := child.(interface{ Layout() }); ok {
			l.Layout()
		}
	}
}

// Draw draws the visible children in insertion order
func (g *Group) Draw(dst *ebiten.Image, view View) {
	if g.hidden {
		return
	}
	for _, child := range g.children {
		if !child.widget().IsVisible() {
			continue
		}
		child.Draw(dst, view)
	}
}
