package entities

import "image/color"

// Behavior selects how a ghost picks its chase target. The set is fixed;
// a ghost keeps its behavior for the whole session.
type Behavior int

const (
	// Chase targets the avatar's current position.
	Chase Behavior = iota
	// Ambush targets a few cells ahead of the avatar's heading.
	Ambush
	// Flank mirrors the chase ghost's offset from the avatar.
	Flank
	// Wander targets a random cell, redrawn on a fixed period.
	Wander
)

// Ghost is one of the four pursuers. Home is the session-start cell the
// ghost returns to after the avatar loses a life.
type Ghost struct {
	X, Y         float64
	Speed        float64 // cells per second, only ever ramps up
	Name         string
	Color        color.RGBA
	Behavior     Behavior
	HomeX, HomeY float64

	// Wander state: the retained random target and the time accumulated
	// toward the next redraw. Unused by the other behaviors.
	TargetX, TargetY float64
	WanderTimer      float64
}

// Rehome puts the ghost back on its session-start cell.
func (g *Ghost) Rehome() {
	g.X, g.Y = g.HomeX, g.HomeY
}
