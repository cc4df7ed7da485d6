package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"tinywheels/physics"
	"tinywheels/ui"
)

type fakeRaceState struct {
	state GameWorldState
}

func (f *fakeRaceState) State() GameWorldState {
	return f.state
}

type fakeInputHandler struct {
	input      GameInput
	sampled    int
	bonusCalls []Bonus
	hudRoot    *ui.Group
}

func (h *fakeInputHandler) GameInput() GameInput {
	h.sampled++
	return h.input
}

func (h *fakeInputHandler) CreateHud(_ ui.Assets, root *ui.Group) {
	h.hudRoot = root
}

func (h *fakeInputHandler) SetBonus(bonus Bonus) {
	h.bonusCalls = append(h.bonusCalls, bonus)
}

type fakeTouchSource struct {
	touches       []TouchPoint
	width, height float64
}

func (s *fakeTouchSource) Touches() []TouchPoint {
	return s.touches
}

func (s *fakeTouchSource) ScreenSize() (float64, float64) {
	return s.width, s.height
}

type fakeKeys map[ebiten.Key]bool

func (k fakeKeys) IsKeyPressed(key ebiten.Key) bool {
	return k[key]
}

// countingBonus records how often it was triggered
type countingBonus struct {
	triggered int
}

func (b *countingBonus) Icon() string { return "counting" }
func (b *countingBonus) Trigger(*Racer) { b.triggered++ }

func newTestRacer(gp GamePlay) (*physics.World, *Racer) {
	world := physics.NewWorld()
	vehicle := NewVehicle(world, gp, cp.Vector{}, 0)
	return world, NewRacer("tester", vehicle, NewHealthComponent(gp.MaxHealth))
}

// setFlags puts the vehicle in a recognizable state
func setFlags(v *Vehicle, direction int, accelerating, braking bool) {
	v.SetDirection(direction)
	v.SetAccelerating(accelerating)
	v.SetBraking(braking)
}

type vehicleFlags struct {
	direction    int
	accelerating bool
	braking      bool
}

func flagsOf(v *Vehicle) vehicleFlags {
	return vehicleFlags{v.Direction(), v.IsAccelerating(), v.IsBraking()}
}
