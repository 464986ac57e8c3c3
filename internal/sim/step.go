package sim

import (
	"math"

	"mazechase/internal/board"
)

// Score values for the three scoring events.
const (
	PelletPoints  = 10
	PickupPoints  = 50
	CapturePoints = 100
)

// Capture when the avatar and a ghost are this close on both axes.
const captureRange = 0.6

// Step advances the simulation by dt seconds. It is a no-op while the
// session is paused or already decided. The phase order is fixed: time,
// avatar movement, consumption, power-up countdown, ghosts, captures,
// win check.
func (s *Session) Step(dt float64) {
	if s.Outcome != InProgress || s.paused {
		return
	}
	s.Elapsed += dt

	s.moveAvatar(dt)

	gx, gy := int(s.Avatar.X), int(s.Avatar.Y)
	switch s.Board.Consume(gx, gy) {
	case board.CellPellet:
		s.Score += PelletPoints
	case board.CellPower:
		s.collectPickup(gx, gy)
	}

	s.tickEffect(dt)

	if s.effect != EffectFreeze {
		s.updateGhosts(dt)
	} else {
		s.forfeitRamps()
	}

	s.resolveCaptures()
	if s.Outcome != InProgress {
		return
	}

	if s.Board.Pellets() == 0 {
		s.Outcome = Won
	}
}

func (s *Session) moveAvatar(dt float64) {
	a := s.Avatar
	s.moveActor(&a.X, &a.Y, float64(a.DirX), float64(a.DirY), a.Speed*dt)
}

// moveActor applies the shared movement rule: take the full step if the
// destination cell is walkable, otherwise stay put. Only the destination
// cell is checked, not the swept path; positions truncate toward zero to
// produce the cell index.
func (s *Session) moveActor(x, y *float64, dx, dy, step float64) {
	nx := *x + dx*step
	ny := *y + dy*step
	if s.Board.IsWalkable(int(nx), int(ny)) {
		*x, *y = nx, ny
	}
}

// resolveCaptures tests every ghost against the avatar. With
// invincibility active a caught ghost is sent back to the center and
// scores; otherwise the avatar loses a life, everyone returns to their
// start cells, and at zero lives the session is over. Nothing else runs
// in the tick that decides the session.
func (s *Session) resolveCaptures() {
	a := s.Avatar
	for _, gh := range s.Ghosts {
		if math.Abs(a.X-gh.X) >= captureRange || math.Abs(a.Y-gh.Y) >= captureRange {
			continue
		}
		if s.effect == EffectInvincibility {
			gh.X, gh.Y = ghostRespawnX, ghostRespawnY
			s.Score += CapturePoints
			continue
		}

		s.Lives--
		// The heading survives the respawn so the avatar resumes moving
		// right away.
		a.X, a.Y = avatarStartX, avatarStartY
		for _, g := range s.Ghosts {
			g.Rehome()
		}
		if s.Lives <= 0 {
			s.Outcome = Lost
		}
		return
	}
}
