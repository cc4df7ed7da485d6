package game

import "tinywheels/ui"

// PlayerPilot forwards the input of a GameInputHandler to the racer vehicle
type PlayerPilot struct {
	assets  ui.Assets
	world   RaceState
	racer   *Racer
	handler GameInputHandler

	// last bonus given to the handler indicator
	shownBonus Bonus
}

func NewPlayerPilot(assets ui.Assets, world RaceState, racer *Racer, handler GameInputHandler) *PlayerPilot {
	return &PlayerPilot{
		assets:  assets,
		world:   world,
		racer:   racer,
		handler: handler,
	}
}

// CreateHudActors lets the input handler add its controls to root
func (p *PlayerPilot) CreateHudActors(root *ui.Group) {
	p.handler.CreateHud(p.assets, root)
}

func (p *PlayerPilot) Act(dt float64) {
	vehicle := p.racer.Vehicle()
	if p.racer.Health().IsDisabled() {
		vehicle.SetBraking(true)
		vehicle.SetAccelerating(false)
		return
	}

	// Controls are frozen during the countdown and once the race is over
	if p.world.State() != StateRunning {
		return
	}

	if bonus := p.racer.Bonus(); bonus != p.shownBonus {
		p.handler.SetBonus(bonus)
		p.shownBonus = bonus
	}

	input := p.handler.GameInput()
	vehicle.SetDirection(input.Direction)
	vehicle.SetAccelerating(input.Accelerating)
	vehicle.SetBraking(input.Braking)
	if input.TriggeringBonus {
		p.racer.TriggerBonus()
	}
}

// Release hides the bonus indicator once the pilot stops driving
func (p *PlayerPilot) Release() {
	p.handler.SetBonus(nil)
	p.shownBonus = nil
}
