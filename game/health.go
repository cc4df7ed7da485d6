package game

// HealthComponent tracks the health of a racer. A racer with no health left
// is disabled.
type HealthComponent struct {
	health    float64
	maxHealth float64
}

func NewHealthComponent(maxHealth float64) *HealthComponent {
	return &HealthComponent{health: maxHealth, maxHealth: maxHealth}
}

func (h *HealthComponent) Health() float64 {
	return h.health
}

func (h *HealthComponent) MaxHealth() float64 {
	return h.maxHealth
}

// SetHealth sets the health, clamped to [0, MaxHealth]
func (h *HealthComponent) SetHealth(health float64) {
	h.health = max(0, min(health, h.maxHealth))
}

// Damage removes amount from the health, it returns true if this disabled
// the racer
func (h *HealthComponent) Damage(amount float64) bool {
	if amount <= 0 || h.IsDisabled() {
		return false
	}
	h.SetHealth(h.health - amount)
	return h.IsDisabled()
}

// IsDisabled returns true once the health reached 0
func (h *HealthComponent) IsDisabled() bool {
	return h.health == 0
}
