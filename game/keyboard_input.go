package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"tinywheels/ui"
)

// KeySource tells whether a key is held
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeySource reads the keyboard through ebiten
type EbitenKeySource struct{}

func (EbitenKeySource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// KeyboardInputHandler drives the vehicle with the arrow keys (or WASD) and
// space for the bonus
type KeyboardInputHandler struct {
	keys       KeySource
	buttonSize float64

	assets      ui.Assets
	bonusButton *ui.HudButton
}

func NewKeyboardInputHandler(keys KeySource, buttonSize float64) *KeyboardInputHandler {
	return &KeyboardInputHandler{
		keys:       keys,
		buttonSize: buttonSize,
	}
}

func (h *KeyboardInputHandler) GameInput() GameInput {
	input := defaultGameInput()
	if h.anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		input.Direction++
	}
	if h.anyPressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		input.Direction--
	}
	if h.anyPressed(ebiten.KeyArrowDown, ebiten.KeyS) {
		input.Accelerating = false
		input.Braking = true
	}
	input.TriggeringBonus = h.anyPressed(ebiten.KeySpace)
	if h.bonusButton != nil {
		h.bonusButton.SetPressed(input.TriggeringBonus)
	}
	return input
}

// CreateHud only shows a bonus indicator in the bottom-right corner
func (h *KeyboardInputHandler) CreateHud(assets ui.Assets, root *ui.Group) {
	h.assets = assets

	group := ui.NewAnchorGroup()
	group.SetFillParent(true)
	root.AddActor(group)

	h.bonusButton = ui.NewHudButton(assets, "square", h.buttonSize)
	h.bonusButton.SetVisible(false)
	group.AddPositionRule(h.bonusButton, ui.BottomRight, group, ui.BottomRight)
	group.Layout()
}

func (h *KeyboardInputHandler) SetBonus(bonus Bonus) {
	showBonus(h.bonusButton, h.assets, bonus)
}

func (h *KeyboardInputHandler) anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if h.keys.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

type keyboardInputHandlerFactory struct {
	keys       KeySource
	buttonSize float64
}

// NewKeyboardInputHandlerFactory returns the factory of the "keyboard" handler
func NewKeyboardInputHandlerFactory(keys KeySource, buttonSize float64) GameInputHandlerFactory {
	return keyboardInputHandlerFactory{keys: keys, buttonSize: buttonSize}
}

func (keyboardInputHandlerFactory) ID() string   { return "keyboard" }
func (keyboardInputHandlerFactory) Name() string { return "Keyboard" }
func (keyboardInputHandlerFactory) Description() string {
	return "Arrow keys or WASD to drive, space to use the bonus."
}

func (f keyboardInputHandlerFactory) Create() GameInputHandler {
	return NewKeyboardInputHandler(f.keys, f.buttonSize)
}
