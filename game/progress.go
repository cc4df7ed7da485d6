package game

import (
	"math"

	"github.com/jakecoffman/cp"
)

// LapProgress follows a racer along the waypoint loop. Waypoint 0 is the
// finish line: a race of n laps ends when it is passed n+1 times, the first
// pass being the start.
type LapProgress struct {
	passed     int
	finished   bool
	finishTime float64
}

// NextWaypoint returns the index of the waypoint the racer is heading to
func (p *LapProgress) NextWaypoint(waypointCount int) int {
	if waypointCount == 0 {
		return 0
	}
	return p.passed % waypointCount
}

// CompletedLaps returns the number of full laps
func (p *LapProgress) CompletedLaps(waypointCount int) int {
	if waypointCount == 0 || p.passed == 0 {
		return 0
	}
	return (p.passed - 1) / waypointCount
}

// Passed returns the number of waypoints passed since the start
func (p *LapProgress) Passed() int {
	return p.passed
}

func (p *LapProgress) IsFinished() bool {
	return p.finished
}

// FinishTime returns the race time at which the racer finished
func (p *LapProgress) FinishTime() float64 {
	return p.finishTime
}

// update moves to the next waypoint when position is close enough to it. It
// returns true when this finished the race.
func (p *LapProgress) update(position cp.Vector, waypoints []cp.Vector, laps int, raceTime float64) bool {
	if p.finished || len(waypoints) == 0 {
		return false
	}
	next := waypoints[p.NextWaypoint(len(waypoints))]
	if position.Distance(next) > WaypointRadius {
		return false
	}
	p.passed++
	if p.passed >= laps*len(waypoints)+1 {
		p.finished = true
		p.finishTime = raceTime
		return true
	}
	return false
}

// distanceToNext is used to rank racers between two waypoints
func (p *LapProgress) distanceToNext(position cp.Vector, waypoints []cp.Vector) float64 {
	if len(waypoints) == 0 {
		return math.Inf(1)
	}
	return position.Distance(waypoints[p.NextWaypoint(len(waypoints))])
}
