package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidgetHit(t *testing.T) {
	b := NewHudButton(nil, "left", 100)

	assert.True(t, b.Hit(0, 0))
	assert.True(t, b.Hit(99.9, 99.9))
	assert.False(t, b.Hit(100, 50))
	assert.False(t, b.Hit(50, -0.1))

	b.SetVisible(false)
	assert.False(t, b.Hit(10, 10))
}

func TestStageOwnership(t *testing.T) {
	stage := NewStage(800, 480)
	group := NewAnchorGroup()
	button := NewHudButton(nil, "brake", 50)

	assert.Nil(t, button.Stage())
	stage.Root().AddActor(group)
	group.AddActor(button)

	assert.Same(t, stage, button.Stage())
	assert.Same(t, stage, group.Stage())
	assert.Same(t, stage, stage.Root().Stage())
	assert.Same(t, &group.Group, button.Parent())

	other := NewGroup()
	other.AddActor(button)
	assert.Empty(t, group.Children())
	assert.Nil(t, button.Stage())
	assert.False(t, group.RemoveActor(button))
}

func TestAnchorGroupLayout(t *testing.T) {
	stage := NewStage(800, 480)
	group := NewAnchorGroup()
	group.SetFillParent(true)
	stage.Root().AddActor(group)

	left := NewHudButton(nil, "left", 120)
	right := NewHudButton(nil, "right", 120)
	brake := NewHudButton(nil, "back", 120)
	bonus := NewHudButton(nil, "square", 120)

	group.AddPositionRule(left, BottomLeft, group, BottomLeft)
	group.AddPositionRule(right, BottomLeft, left, BottomRight)
	group.AddPositionRule(brake, BottomRight, group, BottomRight)
	group.AddPositionRule(bonus, BottomRight, brake, TopRight)
	stage.Layout()

	require.Len(t, group.Children(), 4)
	assert.Equal(t, 800.0, group.Width())
	assert.Equal(t, 480.0, group.Height())
	assert.Equal(t, [2]float64{0, 0}, [2]float64{left.X(), left.Y()})
	assert.Equal(t, [2]float64{120, 0}, [2]float64{right.X(), right.Y()})
	assert.Equal(t, [2]float64{680, 0}, [2]float64{brake.X(), brake.Y()})
	assert.Equal(t, [2]float64{680, 120}, [2]float64{bonus.X(), bonus.Y()})

	// A resize moves the right-anchored buttons
	stage.Resize(1000, 600)
	assert.Equal(t, 880.0, brake.X())
	assert.Equal(t, 880.0, bonus.X())
	assert.Equal(t, 120.0, right.X())
}

func TestAnchorGroupOffsetAndCenter(t *testing.T) {
	stage := NewStage(200, 100)
	group := NewAnchorGroup()
	group.SetFillParent(true)
	stage.Root().AddActor(group)

	label := NewHudButton(nil, "go", 20)
	group.AddPositionRuleWithOffset(label, Center, group, Center, 5, -5)
	stage.Layout()

	assert.Equal(t, 95.0, label.X())
	assert.Equal(t, 35.0, label.Y())
}

func TestCoordinateConversion(t *testing.T) {
	stage := NewStage(800, 480)
	outer := NewGroup()
	outer.SetPosition(10, 20)
	stage.Root().AddActor(outer)
	button := NewHudButton(nil, "x", 40)
	button.SetPosition(100, 50)
	outer.AddActor(button)

	sx, sy := button.LocalToStage(5, 5)
	assert.Equal(t, 115.0, sx)
	assert.Equal(t, 75.0, sy)

	lx, ly := button.StageToLocal(115, 75)
	assert.Equal(t, 5.0, lx)
	assert.Equal(t, 5.0, ly)

	view := View{ScaleX: 2, ScaleY: 2, ScreenHeight: 960}
	x, y, w, h := view.Rect(&button.Widget)
	assert.Equal(t, 220.0, x)
	assert.Equal(t, 960.0-2*(70+40), y)
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 80.0, h)
}
