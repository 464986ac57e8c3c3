package game

import (
	"fmt"
	"image/color"

	"mazechase/internal/board"
	"mazechase/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	avatarColor     = color.RGBA{R: 255, G: 214, A: 255}
	invincibleColor = color.RGBA{G: 255, B: 255, A: 255}
	frozenColor     = color.RGBA{R: 77, G: 77, B: 128, A: 255}
	titleColor      = color.RGBA{R: 255, G: 215, A: 255}
	hintColor       = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	wallColor       = color.RGBA{R: 51, B: 153, A: 255}
	pelletColor     = color.RGBA{R: 255, G: 230, B: 102, A: 255}
	powerColor      = color.RGBA{R: 255, B: 255, A: 255}
)

// drawMaze renders the grid cells onto dst.
func drawMaze(dst *ebiten.Image, cells [board.Rows][board.Cols]board.Cell) {
	const cs = float32(cellSize)
	for y := 0; y < board.Rows; y++ {
		for x := 0; x < board.Cols; x++ {
			px := float32(x) * cs
			py := float32(y) * cs
			switch cells[y][x] {
			case board.CellWall:
				vector.DrawFilledRect(dst, px, py, cs, cs, wallColor, false)
			case board.CellPellet:
				// Small square centered in the cell.
				vector.DrawFilledRect(dst, px+cs*0.4, py+cs*0.4, cs*0.2, cs*0.2, pelletColor, false)
			case board.CellPower:
				vector.DrawFilledCircle(dst, px+cs/2, py+cs/2, cs*0.3, powerColor, true)
			}
		}
	}
}

// drawTextCentered draws a basicfont line horizontally centered at y.
func drawTextCentered(dst *ebiten.Image, s string, y int, clr color.Color) {
	w := len(s) * 7 // basicfont.Face7x13 is roughly 7px per character
	text.Draw(dst, s, basicfont.Face7x13, (dst.Bounds().Dx()-w)/2, y, clr)
}

func (g *Game) drawMenu(dst *ebiten.Image) {
	h := dst.Bounds().Dy()
	drawTextCentered(dst, "MAZE CHASE", h/2-80, titleColor)
	drawTextCentered(dst, "Press SPACE to Start", h/2-30, color.White)
	drawTextCentered(dst, "Press R to Resume", h/2-10, color.White)
	drawTextCentered(dst, "Press H for Help", h/2+10, color.White)
	drawTextCentered(dst, "Press S for High Score", h/2+30, color.White)
	drawTextCentered(dst, "Press ESC to Exit", h/2+50, color.White)
}

func (g *Game) drawHelp(dst *ebiten.Image) {
	lines := []string{
		"HOW TO PLAY",
		"",
		"W/A/S/D or Arrows - Move",
		"P - Pause, M - Menu, ESC - Exit",
		"",
		"GHOSTS:",
		"Blinky (Red) - Chases you directly",
		"Pinky (Pink) - Ambushes ahead of you",
		"Inky (Cyan) - Tries to cut you off",
		"Clyde (Orange) - Wanders unpredictably",
		"",
		"POWER-UPS (Magenta circles):",
		"Invincible - Eat ghosts!",
		"Freeze - Stops ghosts",
		"Speed - Move faster",
	}
	y := dst.Bounds().Dy()/2 - len(lines)*7
	for i, line := range lines {
		clr := color.Color(color.White)
		if i == 0 {
			clr = titleColor
		}
		drawTextCentered(dst, line, y+i*14, clr)
	}
	drawTextCentered(dst, "Press M for Menu", dst.Bounds().Dy()-20, hintColor)
}

func (g *Game) drawScores(dst *ebiten.Image) {
	h := dst.Bounds().Dy()
	drawTextCentered(dst, "HIGH SCORE", h/2-30, titleColor)
	drawTextCentered(dst, fmt.Sprintf("Best Score: %d", g.bestScore), h/2, color.White)
	drawTextCentered(dst, "Press M for Menu", h/2+40, hintColor)
}

func (g *Game) drawPlaying(dst *ebiten.Image) {
	snap := g.session.Snapshot()

	drawMaze(dst, snap.Cells)

	// Avatar, tinted while invincible.
	ac := avatarColor
	if snap.Effect == sim.EffectInvincibility {
		ac = invincibleColor
	}
	cx := float32(snap.AvatarX+0.5) * cellSize
	cy := float32(snap.AvatarY+0.5) * cellSize
	vector.DrawFilledCircle(dst, cx, cy, cellSize/2-2, ac, true)

	// Ghosts, tinted while frozen.
	for _, gh := range snap.Ghosts {
		c := gh.Color
		if snap.Effect == sim.EffectFreeze {
			c = frozenColor
		}
		gx := float32(gh.X+0.5) * cellSize
		gy := float32(gh.Y+0.5) * cellSize
		vector.DrawFilledCircle(dst, gx, gy, cellSize/2-2, c, true)
	}

	// HUD.
	hud := fmt.Sprintf("Score: %d  Best: %d  Time: %s  Lives: %d",
		snap.Score, g.bestScore, formatTime(snap.Elapsed), snap.Lives)
	text.Draw(dst, hud, basicfont.Face7x13, 4, 12, color.White)

	if snap.Effect != sim.EffectNone {
		label := fmt.Sprintf("POWER: %s! %.1fs", snap.Effect, snap.EffectRemaining)
		drawTextCentered(dst, label, dst.Bounds().Dy()-8, invincibleColor)
	}

	if snap.Paused {
		drawTextCentered(dst, "PAUSED - Press P to Resume", dst.Bounds().Dy()/2, color.White)
	}
}

func (g *Game) drawFinal(dst *ebiten.Image, title string) {
	snap := g.session.Snapshot()
	h := dst.Bounds().Dy()
	drawTextCentered(dst, title, h/2-50, titleColor)
	drawTextCentered(dst, fmt.Sprintf("Final Score: %d", snap.Score), h/2-20, color.White)
	drawTextCentered(dst, fmt.Sprintf("Time: %s", formatTime(snap.Elapsed)), h/2, color.White)
	if g.newRecord {
		drawTextCentered(dst, "NEW HIGH SCORE!", h/2+20, invincibleColor)
	}
	drawTextCentered(dst, "Press M for Menu", h/2+50, hintColor)
}
