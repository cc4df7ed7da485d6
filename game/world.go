package game

import (
	"errors"
	"math"
	"sort"

	"github.com/rs/zerolog"

	"tinywheels/physics"
)

// GameWorldState is the phase of a race
type GameWorldState int

const (
	StateCountdown GameWorldState = iota
	StateRunning
	StateFinished
)

func (s GameWorldState) String() string {
	switch s {
	case StateCountdown:
		return "countdown"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// ErrNoStartPosition is returned when a track has no room for another racer
var ErrNoStartPosition = errors.New("no start position left")

// GameWorld runs a race: it owns the physics world, the track and the
// racers, and steps them once per tick
type GameWorld struct {
	gp      GamePlay
	log     zerolog.Logger
	physics *physics.World
	track   *Track
	racers  []*Racer

	state     GameWorldState
	countdown float64
	raceTime  float64
}

// NewGameWorld creates a race on a track loaded in pw
func NewGameWorld(gp GamePlay, pw *physics.World, track *Track, log zerolog.Logger) *GameWorld {
	return &GameWorld{
		gp:        gp,
		log:       log,
		physics:   pw,
		track:     track,
		racers:    make([]*Racer, 0, len(track.Starts)),
		state:     StateCountdown,
		countdown: gp.CountdownSeconds,
	}
}

func (w *GameWorld) State() GameWorldState {
	return w.state
}

func (w *GameWorld) GamePlay() GamePlay {
	return w.gp
}

func (w *GameWorld) Physics() *physics.World {
	return w.physics
}

func (w *GameWorld) Track() *Track {
	return w.track
}

// Racers returns the racers in start order
func (w *GameWorld) Racers() []*Racer {
	return w.racers
}

// Countdown returns the time left before the start
func (w *GameWorld) Countdown() float64 {
	return max(w.countdown, 0)
}

// RaceTime returns the time elapsed since the start
func (w *GameWorld) RaceTime() float64 {
	return w.raceTime
}

// AddRacer places a new racer on the next start position, facing the first
// waypoint. newPilot is called with the racer to create its pilot.
func (w *GameWorld) AddRacer(name string, newPilot func(r *Racer) Pilot) (*Racer, error) {
	idx := len(w.racers)
	if idx >= len(w.track.Starts) {
		return nil, ErrNoStartPosition
	}
	start := w.track.Starts[idx]
	target := w.track.Waypoints[0]
	// Angle 0 faces +y
	angle := math.Atan2(target.Y-start.Y, target.X-start.X) - math.Pi/2

	vehicle := NewVehicle(w.physics, w.gp, start, angle)
	racer := NewRacer(name, vehicle, NewHealthComponent(w.gp.MaxHealth))
	if newPilot != nil {
		racer.SetPilot(newPilot(racer))
	}
	w.racers = append(w.racers, racer)

	w.log.Debug().Str("racer", name).Int("start", idx).Msg("racer added")
	return racer, nil
}

// Act advances the race by dt: every racer acts, then the physics world
// steps once
func (w *GameWorld) Act(dt float64) {
	if w.state == StateCountdown {
		w.countdown -= dt
		if w.countdown <= 0 {
			w.setState(StateRunning)
		}
	}

	for _, spot := range w.track.BonusSpots {
		spot.act(dt)
	}
	for _, r := range w.racers {
		r.Act(dt)
	}

	w.physics.Step(dt)

	for _, r := range w.racers {
		w.checkCrash(r)
	}

	if w.state != StateRunning {
		return
	}
	w.raceTime += dt
	for _, r := range w.racers {
		w.updateProgress(r)
		for _, spot := range w.track.BonusSpots {
			if spot.tryPickup(r, w.gp) {
				w.log.Debug().Str("racer", r.Name()).Msg("bonus picked up")
			}
		}
	}
	if w.isRaceOver() {
		w.setState(StateFinished)
	}
}

func (w *GameWorld) setState(state GameWorldState) {
	w.log.Info().Stringer("from", w.state).Stringer("to", state).Float64("time", w.raceTime).Msg("race state changed")
	w.state = state
}

func (w *GameWorld) checkCrash(r *Racer) {
	speed := r.Vehicle().CrashSpeed()
	if speed <= w.gp.CrashThreshold {
		return
	}
	damage := (speed - w.gp.CrashThreshold) * w.gp.CrashDamageFactor
	r.Vehicle().Spin()
	if r.Health().Damage(damage) {
		w.log.Info().Str("racer", r.Name()).Msg("racer disabled")
		return
	}
	w.log.Debug().Str("racer", r.Name()).Float64("damage", damage).Msg("crash")
}

func (w *GameWorld) updateProgress(r *Racer) {
	progress := r.Progress()
	if !progress.update(r.Vehicle().Position(), w.track.Waypoints, w.track.Laps, w.raceTime) {
		return
	}
	w.log.Info().Str("racer", r.Name()).Float64("time", progress.FinishTime()).Msg("racer finished")

	// Finished racers keep driving on their own
	if _, ok := r.Pilot().(*AIPilot); ok {
		return
	}
	if p, ok := r.Pilot().(releasingPilot); ok {
		p.Release()
	}
	r.SetPilot(NewAIPilot(w, r, w.track))
}

// isRaceOver returns true once every racer still able to drive finished
func (w *GameWorld) isRaceOver() bool {
	if len(w.racers) == 0 {
		return false
	}
	for _, r := range w.racers {
		if !r.Progress().IsFinished() && !r.Health().IsDisabled() {
			return false
		}
	}
	return true
}

// Ranking returns the racers from first to last: finished racers by finish
// time, then the others by progress
func (w *GameWorld) Ranking() []*Racer {
	ranking := make([]*Racer, len(w.racers))
	copy(ranking, w.racers)
	waypoints := w.track.Waypoints

	sort.SliceStable(ranking, func(i, j int) bool {
		a, b := ranking[i].Progress(), ranking[j].Progress()
		if a.IsFinished() != b.IsFinished() {
			return a.IsFinished()
		}
		if a.IsFinished() {
			return a.FinishTime() < b.FinishTime()
		}
		if a.Passed() != b.Passed() {
			return a.Passed() > b.Passed()
		}
		return a.distanceToNext(ranking[i].Vehicle().Position(), waypoints) <
			b.distanceToNext(ranking[j].Vehicle().Position(), waypoints)
	})
	return ranking
}

