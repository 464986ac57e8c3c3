package board

import "testing"

func TestNewLayout(t *testing.T) {
	b := New()

	// Border is solid wall.
	for i := 0; i < Cols; i++ {
		if b.At(i, 0) != CellWall || b.At(i, Rows-1) != CellWall {
			t.Fatalf("border row not wall at x=%d", i)
		}
	}
	for i := 0; i < Rows; i++ {
		if b.At(0, i) != CellWall || b.At(Cols-1, i) != CellWall {
			t.Fatalf("border column not wall at y=%d", i)
		}
	}

	// Internal plus-shaped wall. Its center cell (10,10) is carved out
	// as a start clearing, checked below.
	for x := 8; x <= 12; x++ {
		if x == 10 {
			continue
		}
		if b.At(x, 10) != CellWall {
			t.Fatalf("cross cell (%d,10) not wall", x)
		}
	}
	for y := 8; y <= 12; y++ {
		if y == 10 {
			continue
		}
		if b.At(10, y) != CellWall {
			t.Fatalf("cross cell (10,%d) not wall", y)
		}
	}

	// Start clearings are empty.
	for _, c := range [][2]int{{1, 1}, {18, 18}, {1, 18}, {18, 1}, {10, 10}} {
		if got := b.At(c[0], c[1]); got != CellEmpty {
			t.Fatalf("start cell (%d,%d) = %v, want empty", c[0], c[1], got)
		}
	}

	// Power markers sit inset from the corners.
	for _, c := range [][2]int{{3, 3}, {16, 3}, {3, 16}, {16, 16}} {
		if got := b.At(c[0], c[1]); got != CellPower {
			t.Fatalf("power cell (%d,%d) = %v, want power marker", c[0], c[1], got)
		}
	}
}

func TestPelletCount(t *testing.T) {
	b := New()
	want := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if b.Cells[y][x] == CellPellet {
				want++
			}
		}
	}
	if got := b.Pellets(); got != want {
		t.Fatalf("Pellets() = %d, want %d", got, want)
	}
	// 18x18 interior, minus 8 cross walls (the center cross cell is
	// re-cleared as a start), 5 clearings, 4 power markers.
	if want != 307 {
		t.Fatalf("default maze holds %d pellets, want 307", want)
	}
}

func TestConsume(t *testing.T) {
	b := New()
	before := b.Pellets()

	// Find a pellet and eat it.
	var px, py int
	found := false
	for y := 0; y < Rows && !found; y++ {
		for x := 0; x < Cols && !found; x++ {
			if b.Cells[y][x] == CellPellet {
				px, py = x, y
				found = true
			}
		}
	}
	if !found {
		t.Fatal("no pellet found in default maze")
	}
	if got := b.Consume(px, py); got != CellPellet {
		t.Fatalf("Consume = %v, want pellet", got)
	}
	if b.Pellets() != before-1 {
		t.Fatalf("pellet count %d after consume, want %d", b.Pellets(), before-1)
	}
	// Second consume on the same cell takes nothing.
	if got := b.Consume(px, py); got != CellEmpty {
		t.Fatalf("second Consume = %v, want empty", got)
	}

	// Power marker consumption does not touch the pellet count.
	count := b.Pellets()
	if got := b.Consume(3, 3); got != CellPower {
		t.Fatalf("Consume power marker = %v, want power", got)
	}
	if b.Pellets() != count {
		t.Fatalf("pellet count changed by power consume: %d != %d", b.Pellets(), count)
	}
}

func TestOutOfRangeReadsAsWall(t *testing.T) {
	b := New()
	if b.IsWalkable(-1, 0) || b.IsWalkable(0, -1) || b.IsWalkable(Cols, 0) || b.IsWalkable(0, Rows) {
		t.Fatal("out-of-range cells must not be walkable")
	}
}
