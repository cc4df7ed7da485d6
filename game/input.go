package game

import "tinywheels/ui"

// GameInput is the control signal of a racer for one tick
type GameInput struct {
	// Direction is 1 to turn left, -1 to turn right, 0 to go straight
	Direction int

	Accelerating bool
	Braking      bool

	// TriggeringBonus is set while the bonus control is held
	TriggeringBonus bool
}

// defaultGameInput is what a handler reports when nothing is touched: the
// vehicle keeps accelerating, there is no coast input
func defaultGameInput() GameInput {
	return GameInput{Accelerating: true}
}

// GameInputHandler turns raw input into a GameInput
type GameInputHandler interface {
	// GameInput samples the raw input, it is called once per tick
	GameInput() GameInput

	// CreateHud adds the on-screen controls of the handler to root
	CreateHud(assets ui.Assets, root *ui.Group)

	// SetBonus updates the bonus indicator, nil hides it
	SetBonus(bonus Bonus)
}

// GameInputHandlerFactory creates input handlers of one kind
type GameInputHandlerFactory interface {
	ID() string
	Name() string
	Description() string
	Create() GameInputHandler
}
