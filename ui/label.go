package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the font used by every HUD label
var Face = text.NewGoXFace(basicfont.Face7x13)

// DrawLabel draws s centered on the screen point x, y
func DrawLabel(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, Face, op)
}

// DrawText draws s with its top-left corner at x, y. Lines are split on '\n'.
func DrawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = Face.Metrics().HLineGap + Face.Metrics().HAscent + Face.Metrics().HDescent
	text.Draw(dst, s, Face, op)
}
