package game

import "github.com/jakecoffman/cp"

// Bonus is a power-up held by a racer. Implementations are pointers: two
// bonuses are the same only if they are the same value.
type Bonus interface {
	// Icon is the name of the image shown by the bonus indicator
	Icon() string

	// Trigger uses the bonus for r
	Trigger(r *Racer)
}

// TurboBonus gives a forward boost
type TurboBonus struct {
	impulse float64
}

func NewTurboBonus(impulse float64) *TurboBonus {
	return &TurboBonus{impulse: impulse}
}

func (b *TurboBonus) Icon() string {
	return "turbo"
}

func (b *TurboBonus) Trigger(r *Racer) {
	r.Vehicle().ApplyTurbo(b.impulse)
}

// BonusSpot hands out a turbo to racers without a bonus. It stays empty for
// a while after each pickup.
type BonusSpot struct {
	Position cp.Vector
	cooldown float64
}

// IsAvailable returns true if a racer can pick a bonus here
func (s *BonusSpot) IsAvailable() bool {
	return s.cooldown <= 0
}

func (s *BonusSpot) act(dt float64) {
	if s.cooldown > 0 {
		s.cooldown -= dt
	}
}

// tryPickup gives a new bonus to r if r is close enough and has none
func (s *BonusSpot) tryPickup(r *Racer, gp GamePlay) bool {
	if !s.IsAvailable() || r.Bonus() != nil || r.Health().IsDisabled() {
		return false
	}
	if r.Vehicle().Position().Distance(s.Position) > bonusPickupRadius {
		return false
	}
	r.SetBonus(NewTurboBonus(gp.TurboImpulse))
	s.cooldown = bonusRespawnDelay
	return true
}
