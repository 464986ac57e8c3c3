package sim

import (
	"image/color"

	"mazechase/internal/board"
)

// Snapshot is a read-only copy of everything the render layer needs,
// polled once per frame. It also pins the full state for determinism
// tests.
type Snapshot struct {
	Cells [board.Rows][board.Cols]board.Cell

	AvatarX, AvatarY       float64
	AvatarDirX, AvatarDirY int

	Ghosts []GhostSnapshot

	Effect          Effect
	EffectRemaining float64

	Score   int
	Lives   int
	Elapsed float64
	Outcome Outcome
	Paused  bool
}

type GhostSnapshot struct {
	X, Y  float64
	Name  string
	Color color.RGBA
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Cells:           s.Board.Cells,
		AvatarX:         s.Avatar.X,
		AvatarY:         s.Avatar.Y,
		AvatarDirX:      s.Avatar.DirX,
		AvatarDirY:      s.Avatar.DirY,
		Effect:          s.effect,
		EffectRemaining: s.effectLeft,
		Score:           s.Score,
		Lives:           s.Lives,
		Elapsed:         s.Elapsed,
		Outcome:         s.Outcome,
		Paused:          s.paused,
	}
	for _, gh := range s.Ghosts {
		snap.Ghosts = append(snap.Ghosts, GhostSnapshot{
			X: gh.X, Y: gh.Y, Name: gh.Name, Color: gh.Color,
		})
	}
	return snap
}
