package game

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	// stuckSpeed is the speed under which a running AI is considered stuck
	stuckSpeed = 1.0

	// stuckDelay is how long an AI must be stuck before it backs up
	stuckDelay = 1.5

	// reverseDuration is how long a stuck AI backs up
	reverseDuration = 1.0
)

// AIPilot follows the waypoint loop of the track
type AIPilot struct {
	world RaceState
	racer *Racer
	track *Track

	stuckTime   float64
	reverseTime float64
}

func NewAIPilot(world RaceState, racer *Racer, track *Track) *AIPilot {
	return &AIPilot{
		world: world,
		racer: racer,
		track: track,
	}
}

func (p *AIPilot) Act(dt float64) {
	vehicle := p.racer.Vehicle()
	if p.racer.Health().IsDisabled() {
		vehicle.SetBraking(true)
		vehicle.SetAccelerating(false)
		return
	}
	if p.world.State() != StateRunning || len(p.track.Waypoints) == 0 {
		return
	}

	angle := p.targetAngle()

	// Back up for a while when blocked, steering the other way
	if p.reverseTime > 0 {
		p.reverseTime -= dt
		vehicle.SetDirection(-steerDirection(angle))
		vehicle.SetAccelerating(false)
		vehicle.SetBraking(true)
		return
	}
	if math.Abs(vehicle.Speed()) < stuckSpeed {
		p.stuckTime += dt
		if p.stuckTime > stuckDelay {
			p.stuckTime = 0
			p.reverseTime = reverseDuration
		}
	} else {
		p.stuckTime = 0
	}

	vehicle.SetDirection(steerDirection(angle))

	// Slow down when the target is behind and we go fast
	behind := math.Abs(angle) > math.Pi/2
	if behind && vehicle.Speed() > p.racer.vehicle.gp.TopSpeed()/2 {
		vehicle.SetAccelerating(false)
		vehicle.SetBraking(true)
	} else {
		vehicle.SetAccelerating(true)
		vehicle.SetBraking(false)
	}

	if p.racer.Bonus() != nil && math.Abs(angle) < aiSteerDeadAngle {
		p.racer.TriggerBonus()
	}
}

// targetAngle returns the signed angle between the vehicle heading and the
// next waypoint, positive to the left
func (p *AIPilot) targetAngle() float64 {
	waypoints := p.track.Waypoints
	target := waypoints[p.racer.Progress().NextWaypoint(len(waypoints))]
	vehicle := p.racer.Vehicle()

	forward := vehicle.Body().WorldVector(cp.Vector{X: 0, Y: 1})
	toTarget := target.Sub(vehicle.Position())
	return math.Atan2(forward.Cross(toTarget), forward.Dot(toTarget))
}

func steerDirection(angle float64) int {
	switch {
	case angle > aiSteerDeadAngle:
		return 1
	case angle < -aiSteerDeadAngle:
		return -1
	default:
		return 0
	}
}
