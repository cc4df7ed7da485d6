package game

// Racer gathers everything about one participant of the race
type Racer struct {
	name     string
	vehicle  *Vehicle
	health   *HealthComponent
	bonus    Bonus
	pilot    Pilot
	progress LapProgress
}

// NewRacer creates a racer without pilot, SetPilot must be called before Act
func NewRacer(name string, vehicle *Vehicle, health *HealthComponent) *Racer {
	return &Racer{
		name:    name,
		vehicle: vehicle,
		health:  health,
	}
}

func (r *Racer) Name() string {
	return r.name
}

func (r *Racer) Vehicle() *Vehicle {
	return r.vehicle
}

func (r *Racer) Health() *HealthComponent {
	return r.health
}

// Bonus returns the held bonus, nil if there is none
func (r *Racer) Bonus() Bonus {
	return r.bonus
}

func (r *Racer) SetBonus(bonus Bonus) {
	r.bonus = bonus
}

func (r *Racer) Pilot() Pilot {
	return r.pilot
}

func (r *Racer) SetPilot(pilot Pilot) {
	r.pilot = pilot
}

func (r *Racer) Progress() *LapProgress {
	return &r.progress
}

// TriggerBonus uses the held bonus. The bonus is consumed: triggering again
// without picking a new one does nothing.
func (r *Racer) TriggerBonus() {
	if r.bonus == nil {
		return
	}
	bonus := r.bonus
	r.bonus = nil
	bonus.Trigger(r)
}

// Act lets the pilot decide, then the vehicle apply the forces
func (r *Racer) Act(dt float64) {
	if r.pilot != nil {
		r.pilot.Act(dt)
	}
	r.vehicle.Act(dt)
}
