package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"tinywheels/ui"
)

// TouchPoint is an active touch in screen pixels, y pointing down
type TouchPoint struct {
	X, Y float64
}

// TouchSource gives access to the touch screen
type TouchSource interface {
	// Touches returns the active touches
	Touches() []TouchPoint

	// ScreenSize returns the size of the screen the touches are expressed in
	ScreenSize() (float64, float64)
}

// EbitenTouchSource reads touches from ebiten. A held left mouse button
// counts as a touch so the touch controls can be used on desktop.
type EbitenTouchSource struct {
	width, height float64
	ids           []ebiten.TouchID
	touches       []TouchPoint
}

func NewEbitenTouchSource() *EbitenTouchSource {
	return &EbitenTouchSource{
		ids:     make([]ebiten.TouchID, 0, MaxTouches),
		touches: make([]TouchPoint, 0, MaxTouches+1),
	}
}

// SetScreenSize must be called from ebiten's Layout with the logical size
func (s *EbitenTouchSource) SetScreenSize(width, height int) {
	s.width, s.height = float64(width), float64(height)
}

func (s *EbitenTouchSource) ScreenSize() (float64, float64) {
	return s.width, s.height
}

func (s *EbitenTouchSource) Touches() []TouchPoint {
	s.touches = s.touches[:0]
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	for _, id := range s.ids {
		x, y := ebiten.TouchPosition(id)
		s.touches = append(s.touches, TouchPoint{X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.touches = append(s.touches, TouchPoint{X: float64(x), Y: float64(y)})
	}
	return s.touches
}

// TouchInputHandler drives the vehicle with four on-screen buttons
type TouchInputHandler struct {
	source     TouchSource
	buttonSize float64
	input      GameInput

	assets                           ui.Assets
	left, right, brake, bonusButton *ui.HudButton
}

// NewTouchInputHandler creates a handler, CreateHud must be called before
// the buttons react
func NewTouchInputHandler(source TouchSource, buttonSize float64) *TouchInputHandler {
	return &TouchInputHandler{
		source:     source,
		buttonSize: buttonSize,
	}
}

// GameInput checks every touch against the buttons. The bonus button is
// exclusive: a touch on it does nothing else. The steering and brake buttons
// own their whole screen column, the first one hit wins.
func (h *TouchInputHandler) GameInput() GameInput {
	h.input = defaultGameInput()
	if h.left == nil {
		return h.input
	}

	for _, b := range h.buttons() {
		b.SetPressed(false)
	}

	screenW, screenH := h.source.ScreenSize()
	touches := h.source.Touches()
	if len(touches) > MaxTouches {
		touches = touches[:MaxTouches]
	}
	for _, t := range touches {
		x := t.X
		y := screenH - t.Y
		if isButtonHit(h.bonusButton, x, y, screenW, screenH) {
			h.bonusButton.SetPressed(true)
			h.input.TriggeringBonus = true
			continue
		}
		switch {
		case isButtonHit(h.left, x, 0, screenW, screenH):
			h.left.SetPressed(true)
			h.input.Direction = 1
		case isButtonHit(h.right, x, 0, screenW, screenH):
			h.right.SetPressed(true)
			h.input.Direction = -1
		case isButtonHit(h.brake, x, 0, screenW, screenH):
			h.brake.SetPressed(true)
			h.input.Accelerating = false
			h.input.Braking = true
		}
	}
	return h.input
}

// CreateHud puts left and right at the bottom-left corner, brake at the
// bottom-right corner and bonus above brake
func (h *TouchInputHandler) CreateHud(assets ui.Assets, root *ui.Group) {
	h.assets = assets

	group := ui.NewAnchorGroup()
	group.SetFillParent(true)
	root.AddActor(group)

	h.left = ui.NewHudButton(assets, "left", h.buttonSize)
	h.right = ui.NewHudButton(assets, "right", h.buttonSize)
	h.brake = ui.NewHudButton(assets, "back", h.buttonSize)
	h.bonusButton = ui.NewHudButton(assets, "square", h.buttonSize)
	h.bonusButton.SetVisible(false)

	group.AddPositionRule(h.left, ui.BottomLeft, group, ui.BottomLeft)
	group.AddPositionRule(h.right, ui.BottomLeft, h.left, ui.BottomRight)
	group.AddPositionRule(h.brake, ui.BottomRight, group, ui.BottomRight)
	group.AddPositionRule(h.bonusButton, ui.BottomRight, h.brake, ui.TopRight)
	group.Layout()
}

func (h *TouchInputHandler) SetBonus(bonus Bonus) {
	showBonus(h.bonusButton, h.assets, bonus)
}

func (h *TouchInputHandler) buttons() []*ui.HudButton {
	return []*ui.HudButton{h.left, h.right, h.brake, h.bonusButton}
}

// isButtonHit converts a screen point (y pointing up) to the button's stage
// and tests it against the button bounds
func isButtonHit(b *ui.HudButton, screenX, screenY, screenW, screenH float64) bool {
	stage := b.Stage()
	if stage == nil || screenW <= 0 || screenH <= 0 {
		return false
	}
	x := screenX * stage.Width() / screenW
	y := screenY * stage.Height() / screenH
	lx, ly := b.StageToLocal(x, y)
	return b.Hit(lx, ly)
}

// showBonus updates a bonus indicator button, a nil bonus hides it
func showBonus(button *ui.HudButton, assets ui.Assets, bonus Bonus) {
	if button == nil {
		return
	}
	if bonus == nil {
		button.SetVisible(false)
		return
	}
	var icon *ebiten.Image
	if assets != nil {
		icon = assets.Icon(bonus.Icon())
	}
	button.SetIcon(bonus.Icon(), icon)
	button.SetVisible(true)
}

type touchInputHandlerFactory struct {
	source     TouchSource
	buttonSize float64
}

// NewTouchInputHandlerFactory returns the factory of the "touch" handler
func NewTouchInputHandlerFactory(source TouchSource, buttonSize float64) GameInputHandlerFactory {
	return touchInputHandlerFactory{source: source, buttonSize: buttonSize}
}

func (touchInputHandlerFactory) ID() string   { return "touch" }
func (touchInputHandlerFactory) Name() string { return "Touch" }
func (touchInputHandlerFactory) Description() string {
	return "Use virtual buttons to control your vehicle."
}

func (f touchInputHandlerFactory) Create() GameInputHandler {
	return NewTouchInputHandler(f.source, f.buttonSize)
}
