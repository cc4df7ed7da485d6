package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Assets gives access to the images the HUD needs
type Assets interface {
	// Icon returns the image for name, or nil if there is none
	Icon(name string) *ebiten.Image
}

var (
	buttonColor        = color.RGBA{255, 255, 255, 60}
	buttonPressedColor = color.RGBA{255, 255, 255, 140}
	buttonBorderColor  = color.RGBA{255, 255, 255, 200}
)

// HudButton is a square on-screen control. It only displays its state,
// input handlers decide when it is pressed.
type HudButton struct {
	Widget
	name    string
	icon    *ebiten.Image
	pressed bool
}

// NewHudButton creates a size x size button showing the icon called name
func NewHudButton(assets Assets, name string, size float64) *HudButton {
	b := &HudButton{name: name}
	if assets != nil {
		b.icon = assets.Icon(name)
	}
	b.SetSize(size, size)
	return b
}

func (b *HudButton) Name() string {
	return b.name
}

func (b *HudButton) IsPressed() bool {
	return b.pressed
}

func (b *HudButton) SetPressed(pressed bool) {
	b.pressed = pressed
}

// SetIcon replaces the icon, a nil icon shows the button name instead
func (b *HudButton) SetIcon(name string, icon *ebiten.Image) {
	b.name = name
	b.icon = icon
}

func (b *HudButton) Icon() *ebiten.Image {
	return b.icon
}

func (b *HudButton) Draw(dst *ebiten.Image, view View) {
	x, y, w, h := view.Rect(&b.Widget)

	bg := buttonColor
	if b.pressed {
		bg = buttonPressedColor
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), bg, true)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 2, buttonBorderColor, true)

	if b.icon == nil {
		DrawLabel(dst, b.name, x+w/2, y+h/2, buttonBorderColor)
		return
	}

	// Scale the icon to 60% of the button
	ib := b.icon.Bounds()
	scale := 0.6 * w / float64(ib.Dx())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+(w-float64(ib.Dx())*scale)/2, y+(h-float64(ib.Dy())*scale)/2)
	dst.DrawImage(b.icon, op)
}
