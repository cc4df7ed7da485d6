package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	"math"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed icons/*.svg
var iconFS embed.FS

// IconSize is the size in pixels of the generated icons
const IconSize = 64

var iconColor = color.RGBA{255, 255, 255, 220}

// Icons rasterizes the HUD icons on first use and caches them. Names
// without an SVG get a generated placeholder.
type Icons struct {
	cache map[string]*ebiten.Image
}

func NewIcons() *Icons {
	return &Icons{cache: make(map[string]*ebiten.Image)}
}

// Icon returns the icon called name, or nil for an unknown name
func (i *Icons) Icon(name string) *ebiten.Image {
	if img, ok := i.cache[name]; ok {
		return img
	}
	var img *ebiten.Image
	if src, err := RasterizeIcon(name, IconSize); err == nil {
		img = ebiten.NewImageFromImage(src)
	} else if src := PlaceholderIcon(name, IconSize); src != nil {
		img = ebiten.NewImageFromImage(src)
	}
	i.cache[name] = img
	return img
}

// RasterizeIcon renders the embedded SVG icon called name to a size x size
// image
func RasterizeIcon(name string, size int) (*image.RGBA, error) {
	data, err := iconFS.ReadFile(path.Join("icons", name+".svg"))
	if err != nil {
		return nil, fmt.Errorf("unknown icon %q: %w", name, err)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

// PlaceholderIcon draws a plain shape for the known icon names: "left",
// "right", "back", "square" and "turbo". It returns nil for other names.
func PlaceholderIcon(name string, size int) *image.RGBA {
	var inside func(x, y float64) bool
	switch name {
	case "left":
		inside = func(x, y float64) bool { return x > -0.6 && math.Abs(y) < (x+0.6)*0.8 && x < 0.6 }
	case "right":
		inside = func(x, y float64) bool { return x < 0.6 && math.Abs(y) < (0.6-x)*0.8 && x > -0.6 }
	case "back":
		// Pointing down, y grows downwards in images
		inside = func(x, y float64) bool { return y < 0.6 && math.Abs(x) < (0.6-y)*0.8 && y > -0.6 }
	case "square":
		inside = func(x, y float64) bool { return math.Abs(x) < 0.5 && math.Abs(y) < 0.5 }
	case "turbo":
		// Two chevrons pointing up
		inside = func(x, y float64) bool {
			for _, top := range []float64{-0.6, 0} {
				d := y - top - math.Abs(x)*0.8
				if d > 0 && d < 0.25 && math.Abs(x) < 0.6 {
					return true
				}
			}
			return false
		}
	default:
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			// Normalized coordinates, -1 to 1
			x := (float64(px) + 0.5 - half) / half
			y := (float64(py) + 0.5 - half) / half
			if inside(x, y) {
				img.Set(px, py, iconColor)
			}
		}
	}
	return img
}
