package sim

import (
	"math"

	"mazechase/internal/board"
	"mazechase/internal/entities"
)

const (
	// Ambush aims this many cells ahead of the avatar's heading.
	ambushLead = 4

	// Wander redraws its random target once per period.
	wanderPeriod = 5.0

	// Every ghost gets a small speed bump at each ramp interval.
	speedRampInterval  = 30.0
	speedRampIncrement = 0.06
)

// updateGhosts runs the difficulty ramp, then targeting and steering for
// each ghost. The caller skips this entirely while Freeze is active, so
// frozen ghosts neither move nor advance their timers.
func (s *Session) updateGhosts(dt float64) {
	s.rampGhostSpeeds()
	for _, gh := range s.Ghosts {
		tx, ty := s.ghostTarget(gh, dt)
		dx, dy := tx-gh.X, ty-gh.Y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			// Already on target; sit still this tick.
			continue
		}
		s.moveActor(&gh.X, &gh.Y, dx/dist, dy/dist, gh.Speed*dt)
	}
}

// rampGhostSpeeds bumps every ghost's speed once per elapsed ramp
// interval, identically for all behaviors.
func (s *Session) rampGhostSpeeds() {
	for s.Elapsed >= s.nextSpeedRamp {
		for _, gh := range s.Ghosts {
			gh.Speed += speedRampIncrement
		}
		s.nextSpeedRamp += speedRampInterval
	}
}

// forfeitRamps discards ramp boundaries that elapse while Freeze is
// active instead of deferring the bumps to the first unfrozen tick.
func (s *Session) forfeitRamps() {
	for s.Elapsed >= s.nextSpeedRamp {
		s.nextSpeedRamp += speedRampInterval
	}
}

// ghostTarget computes the cell a ghost is steering toward this tick.
func (s *Session) ghostTarget(gh *entities.Ghost, dt float64) (float64, float64) {
	a := s.Avatar
	switch gh.Behavior {
	case entities.Chase:
		return a.X, a.Y
	case entities.Ambush:
		return a.X + float64(a.DirX*ambushLead), a.Y + float64(a.DirY*ambushLead)
	case entities.Flank:
		// Mirror the chase ghost's offset from the avatar to come in
		// from the other side. Ghosts[0] is the chase ghost.
		lead := s.Ghosts[0]
		return a.X + (a.X - lead.X), a.Y + (a.Y - lead.Y)
	case entities.Wander:
		gh.WanderTimer += dt
		if gh.WanderTimer >= wanderPeriod {
			gh.WanderTimer -= wanderPeriod
			gh.TargetX = float64(s.rng.Intn(board.Cols))
			gh.TargetY = float64(s.rng.Intn(board.Rows))
		}
		return gh.TargetX, gh.TargetY
	}
	return a.X, a.Y
}
