package entities

// Avatar is the player-controlled actor. Position is continuous, in
// cell units; the heading is a discrete unit vector set by input.
type Avatar struct {
	X, Y       float64
	DirX, DirY int
	Speed      float64 // cells per second
}

// SetHeading points the avatar in the given direction. DirNone stops it.
func (a *Avatar) SetHeading(d Direction) {
	a.DirX, a.DirY = DirDelta(d)
}
