package board

// Cell is the kind of a single maze cell.
type Cell int

const (
	CellEmpty Cell = iota
	CellWall
	CellPellet
	CellPower
)

// Board dimensions are fixed; the maze shape never changes mid-session.
const (
	Rows = 20
	Cols = 20
)

// Board is the 20x20 maze grid. Cells is exported so tests can set up
// specific layouts directly.
type Board struct {
	Cells [Rows][Cols]Cell
}

// New builds the default maze: walls around the border, a plus-shaped
// wall block in the middle, pellets everywhere else, cleared start cells
// for the player and ghosts, and four power-up markers inset from the
// corners.
func New() *Board {
	b := &Board{}
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			switch {
			case x == 0 || y == 0 || x == Cols-1 || y == Rows-1:
				b.Cells[y][x] = CellWall
			case (y == 10 && x >= 8 && x <= 12) || (x == 10 && y >= 8 && y <= 12):
				b.Cells[y][x] = CellWall
			default:
				b.Cells[y][x] = CellPellet
			}
		}
	}

	// Start clearings: the four near-corner cells and the center.
	for _, c := range [][2]int{{1, 1}, {Cols - 2, Rows - 2}, {1, Rows - 2}, {Cols - 2, 1}, {10, 10}} {
		b.Cells[c[1]][c[0]] = CellEmpty
	}

	// Power-up markers, symmetric and inset from the corners.
	for _, c := range [][2]int{{3, 3}, {Cols - 4, 3}, {3, Rows - 4}, {Cols - 4, Rows - 4}} {
		b.Cells[c[1]][c[0]] = CellPower
	}
	return b
}

// At returns the cell kind at (x, y). Out-of-range coordinates read as
// wall, so callers never walk off the grid.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return CellWall
	}
	return b.Cells[y][x]
}

// IsWalkable reports whether an actor may occupy (x, y).
func (b *Board) IsWalkable(x, y int) bool {
	return b.At(x, y) != CellWall
}

// Consume clears a pellet or power marker at (x, y) and returns the kind
// that was removed, or CellEmpty if there was nothing to take.
func (b *Board) Consume(x, y int) Cell {
	switch b.At(x, y) {
	case CellPellet:
		b.Cells[y][x] = CellEmpty
		return CellPellet
	case CellPower:
		b.Cells[y][x] = CellEmpty
		return CellPower
	}
	return CellEmpty
}

// Pellets counts the pellet cells still on the board. Zero means the
// maze has been cleared.
func (b *Board) Pellets() int {
	n := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if b.Cells[y][x] == CellPellet {
				n++
			}
		}
	}
	return n
}
