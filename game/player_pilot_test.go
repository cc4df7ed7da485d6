package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinywheels/ui"
)

var allStates = []GameWorldState{StateCountdown, StateRunning, StateFinished}

func TestPlayerPilot_DisabledAlwaysBrakes(t *testing.T) {
	for _, state := range allStates {
		_, racer := newTestRacer(DefaultGamePlay())
		bonus := &countingBonus{}
		racer.SetBonus(bonus)
		racer.Health().SetHealth(0)

		handler := &fakeInputHandler{input: GameInput{Direction: 1, Accelerating: true, TriggeringBonus: true}}
		pilot := NewPlayerPilot(nil, &fakeRaceState{state: state}, racer, handler)
		setFlags(racer.Vehicle(), -1, true, false)

		pilot.Act(1.0 / 60)

		assert.Equal(t, vehicleFlags{-1, false, true}, flagsOf(racer.Vehicle()), "state %s", state)
		assert.Zero(t, handler.sampled, "state %s", state)
		assert.Zero(t, bonus.triggered, "state %s", state)
		assert.Same(t, bonus, racer.Bonus())
	}
}

func TestPlayerPilot_FrozenWhenNotRunning(t *testing.T) {
	for _, state := range []GameWorldState{StateCountdown, StateFinished} {
		_, racer := newTestRacer(DefaultGamePlay())
		racer.SetBonus(&countingBonus{})
		handler := &fakeInputHandler{input: GameInput{Direction: 1, Accelerating: true, TriggeringBonus: true}}
		pilot := NewPlayerPilot(nil, &fakeRaceState{state: state}, racer, handler)
		setFlags(racer.Vehicle(), -1, false, true)

		pilot.Act(1.0 / 60)

		assert.Equal(t, vehicleFlags{-1, false, true}, flagsOf(racer.Vehicle()), "state %s", state)
		assert.Zero(t, handler.sampled)
		assert.Empty(t, handler.bonusCalls)
		assert.NotNil(t, racer.Bonus())
	}
}

func TestPlayerPilot_ForwardsInputWhenRunning(t *testing.T) {
	_, racer := newTestRacer(DefaultGamePlay())
	handler := &fakeInputHandler{input: GameInput{Direction: -1, Accelerating: false, Braking: true}}
	pilot := NewPlayerPilot(nil, &fakeRaceState{state: StateRunning}, racer, handler)

	pilot.Act(1.0 / 60)
	assert.Equal(t, vehicleFlags{-1, false, true}, flagsOf(racer.Vehicle()))
	assert.Equal(t, 1, handler.sampled)

	handler.input = GameInput{Direction: 1, Accelerating: true}
	pilot.Act(1.0 / 60)
	assert.Equal(t, vehicleFlags{1, true, false}, flagsOf(racer.Vehicle()))
}

func TestPlayerPilot_SyncsBonusIndicatorOnChange(t *testing.T) {
	_, racer := newTestRacer(DefaultGamePlay())
	handler := &fakeInputHandler{input: defaultGameInput()}
	pilot := NewPlayerPilot(nil, &fakeRaceState{state: StateRunning}, racer, handler)

	// No bonus at start: the indicator is already hidden
	pilot.Act(1.0 / 60)
	assert.Empty(t, handler.bonusCalls)

	first := &countingBonus{}
	racer.SetBonus(first)
	pilot.Act(1.0 / 60)
	pilot.Act(1.0 / 60)
	require.Len(t, handler.bonusCalls, 1)
	assert.Same(t, first, handler.bonusCalls[0])

	// Same icon, different bonus: compared by identity
	second := &countingBonus{}
	racer.SetBonus(second)
	pilot.Act(1.0 / 60)
	require.Len(t, handler.bonusCalls, 2)
	assert.Same(t, second, handler.bonusCalls[1])

	racer.SetBonus(nil)
	pilot.Act(1.0 / 60)
	require.Len(t, handler.bonusCalls, 3)
	assert.Nil(t, handler.bonusCalls[2])
}

func TestPlayerPilot_HeldTriggerUsesBonusOnce(t *testing.T) {
	_, racer := newTestRacer(DefaultGamePlay())
	bonus := &countingBonus{}
	racer.SetBonus(bonus)
	handler := &fakeInputHandler{input: GameInput{Accelerating: true, TriggeringBonus: true}}
	pilot := NewPlayerPilot(nil, &fakeRaceState{state: StateRunning}, racer, handler)

	for i := 0; i < 5; i++ {
		pilot.Act(1.0 / 60)
	}
	assert.Equal(t, 1, bonus.triggered)
	assert.Nil(t, racer.Bonus())
}

func TestPlayerPilot_CreateHudActors(t *testing.T) {
	_, racer := newTestRacer(DefaultGamePlay())
	handler := &fakeInputHandler{}
	pilot := NewPlayerPilot(nil, &fakeRaceState{}, racer, handler)

	root := ui.NewGroup()
	pilot.CreateHudActors(root)
	assert.Same(t, root, handler.hudRoot)
}
