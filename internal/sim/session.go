// Package sim holds the simulation core: the session state and the
// per-tick step that advances it. It has no rendering or input
// dependencies so it can be driven headlessly, at any tick rate, from
// tests or from the ebiten layer.
package sim

import (
	"image/color"
	"math/rand"

	"mazechase/internal/board"
	"mazechase/internal/entities"
)

// Outcome is the terminal status of a session.
type Outcome int

const (
	InProgress Outcome = iota
	Lost
	Won
)

func (o Outcome) String() string {
	switch o {
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "in progress"
	}
}

const (
	startLives = 3

	avatarStartX    = 1.0
	avatarStartY    = 1.0
	baseAvatarSpeed = 6.0 // cells per second
	boostedSpeed    = 9.0

	ghostRespawnX = 10.0 // center clearing, where eaten ghosts reappear
	ghostRespawnY = 10.0
)

// Session owns all mutable state of one playthrough: the maze, the
// actors, the power-up registry and the score/lives/time counters.
// Everything is reachable from here, so tests can drive a session
// deterministically by seeding its RNG.
type Session struct {
	Board   *board.Board
	Avatar  *entities.Avatar
	Ghosts  []*entities.Ghost
	Pickups []*Pickup

	Score   int
	Lives   int
	Elapsed float64 // simulated seconds
	Outcome Outcome

	paused bool
	rng    *rand.Rand

	effect     Effect
	effectLeft float64

	nextSpeedRamp float64
}

// NewSession creates a session seeded for the wander ghost's RNG and
// resets it to the session-start state.
func NewSession(seed int64) *Session {
	s := &Session{rng: rand.New(rand.NewSource(seed))}
	s.Reset()
	return s
}

// Reset rebuilds the board, actors and pickups and zeroes all counters.
// The RNG is kept, so a session reset mid-stream stays deterministic.
func (s *Session) Reset() {
	s.Board = board.New()
	s.Avatar = &entities.Avatar{X: avatarStartX, Y: avatarStartY, Speed: baseAvatarSpeed}
	s.Ghosts = defaultGhosts()
	s.Pickups = defaultPickups()

	s.Score = 0
	s.Lives = startLives
	s.Elapsed = 0
	s.Outcome = InProgress
	s.paused = false
	s.effect = EffectNone
	s.effectLeft = 0
	s.nextSpeedRamp = speedRampInterval

	// The wander ghost needs a first target so it has somewhere to go
	// before its first retarget period elapses.
	for _, gh := range s.Ghosts {
		if gh.Behavior == entities.Wander {
			gh.TargetX = float64(s.rng.Intn(board.Cols))
			gh.TargetY = float64(s.rng.Intn(board.Rows))
		}
	}
}

// defaultGhosts builds the four pursuers with their classic
// personalities. The chase ghost must come first: the flank behavior
// mirrors its position.
func defaultGhosts() []*entities.Ghost {
	mk := func(name string, c color.RGBA, b entities.Behavior, x, y, speed float64) *entities.Ghost {
		return &entities.Ghost{
			X: x, Y: y, HomeX: x, HomeY: y,
			Speed: speed, Name: name, Color: c, Behavior: b,
		}
	}
	return []*entities.Ghost{
		mk("Blinky", color.RGBA{R: 255, A: 255}, entities.Chase, 18, 18, 2.4),
		mk("Pinky", color.RGBA{R: 255, G: 102, B: 178, A: 255}, entities.Ambush, 1, 18, 2.1),
		mk("Inky", color.RGBA{G: 255, B: 255, A: 255}, entities.Flank, 18, 1, 2.28),
		mk("Clyde", color.RGBA{R: 255, G: 153, A: 255}, entities.Wander, 10, 10, 1.8),
	}
}

// SetHeading applies a movement command. Commands are ignored unless
// the session is actively running.
func (s *Session) SetHeading(d entities.Direction) {
	if s.Outcome != InProgress || s.paused {
		return
	}
	s.Avatar.SetHeading(d)
}

// Pause suspends the simulation; Step becomes a no-op until Resume.
func (s *Session) Pause() {
	if s.Outcome == InProgress {
		s.paused = true
	}
}

func (s *Session) Resume() {
	s.paused = false
}

func (s *Session) Paused() bool {
	return s.paused
}

// ActiveEffect returns the power-up currently in effect, or EffectNone.
func (s *Session) ActiveEffect() Effect {
	return s.effect
}

// EffectRemaining returns the seconds left on the active power-up.
func (s *Session) EffectRemaining() float64 {
	return s.effectLeft
}
