package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"mazechase/internal/board"
	"mazechase/internal/entities"
	"mazechase/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	cellSize    = 32
	tickSeconds = 1.0 / 60
)

type screen int

const (
	screenMenu screen = iota
	screenHelp
	screenScores
	screenPlaying
	screenGameOver
	screenWin
)

// Game is the ebiten shell around the simulation: it owns the screen
// state machine, keyboard dispatch, rendering and best-score
// persistence. All gameplay rules live in the sim package.
type Game struct {
	session   *sim.Session
	screen    screen
	audio     *AudioManager
	bestScore int
	newRecord bool

	scale      float64
	fullscreen bool
	quit       bool
}

func New() *Game {
	g := &Game{
		session:   sim.NewSession(time.Now().UnixNano()),
		screen:    screenMenu,
		audio:     NewAudioManager(""),
		bestScore: LoadBestScore(),
	}

	// Fit the window within ~75% of the display.
	nativeW := board.Cols * cellSize
	nativeH := board.Rows * cellSize
	sw, sh := ebiten.ScreenSizeInFullscreen()
	fit := 0.75
	scaleW := float64(sw) * fit / float64(nativeW)
	scaleH := float64(sh) * fit / float64(nativeH)
	g.scale = math.Min(scaleW, scaleH)
	if g.scale <= 0 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1.0
	}
	return g
}

func (g *Game) ScreenWidth() int {
	return int(float64(board.Cols*cellSize) * g.scale)
}

func (g *Game) ScreenHeight() int {
	return int(float64(board.Rows*cellSize) * g.scale)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

func (g *Game) Update() error {
	g.handleInput()
	if g.quit {
		g.persistBest()
		return ebiten.Termination
	}
	if g.screen != screenPlaying {
		return nil
	}

	prevScore := g.session.Score
	prevLives := g.session.Lives
	prevEffect := g.session.ActiveEffect()
	g.session.Step(tickSeconds)
	g.reactToStep(prevScore, prevLives, prevEffect)
	return nil
}

// reactToStep turns state deltas from the last tick into sound cues and
// screen transitions.
func (g *Game) reactToStep(prevScore, prevLives int, prevEffect sim.Effect) {
	s := g.session
	switch {
	case s.Lives < prevLives:
		g.audio.PlayDeath()
	case s.ActiveEffect() != prevEffect && s.ActiveEffect() != sim.EffectNone:
		g.audio.PlayPowerUp()
	case s.Score >= prevScore+sim.CapturePoints:
		g.audio.PlayCapture()
	case s.Score > prevScore:
		g.audio.PlayPellet()
	}

	switch s.Outcome {
	case sim.Lost:
		g.persistBest()
		g.screen = screenGameOver
	case sim.Won:
		g.persistBest()
		g.audio.PlayWin()
		g.screen = screenWin
	}
}

// persistBest writes the score to disk when it beats the stored best.
func (g *Game) persistBest() {
	if g.session == nil || g.session.Score <= g.bestScore {
		return
	}
	g.bestScore = g.session.Score
	g.newRecord = true
	_ = SaveBestScore(g.bestScore)
}

func (g *Game) startSession() {
	g.session = sim.NewSession(time.Now().UnixNano())
	g.newRecord = false
	g.screen = screenPlaying
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}

	switch g.screen {
	case screenMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.startSession()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) &&
			g.session.Outcome == sim.InProgress && g.session.Paused() {
			g.session.Resume()
			g.screen = screenPlaying
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyH) {
			g.screen = screenHelp
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			g.screen = screenScores
		}
	case screenHelp, screenScores, screenGameOver, screenWin:
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			g.screen = screenMenu
		}
	case screenPlaying:
		g.handlePlayingInput()
	}
}

func (g *Game) handlePlayingInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.session.Paused() {
			g.session.Resume()
		} else {
			g.session.Pause()
		}
	}
	// M returns to the menu from pause; the session stays paused so R
	// can resume it later.
	if g.session.Paused() && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.screen = screenMenu
		return
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		g.session.SetHeading(entities.DirUp)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		g.session.SetHeading(entities.DirDown)
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		g.session.SetHeading(entities.DirLeft)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		g.session.SetHeading(entities.DirRight)
	}
}

func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(color.Black)

	nativeW := board.Cols * cellSize
	nativeH := board.Rows * cellSize
	off := ebiten.NewImage(nativeW, nativeH)

	switch g.screen {
	case screenMenu:
		g.drawMenu(off)
	case screenHelp:
		g.drawHelp(off)
	case screenScores:
		g.drawScores(off)
	case screenPlaying:
		g.drawPlaying(off)
	case screenGameOver:
		g.drawFinal(off, "GAME OVER!")
	case screenWin:
		g.drawFinal(off, "YOU WIN!")
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	dst.DrawImage(off, op)
}

func formatTime(elapsed float64) string {
	return fmt.Sprintf("%ds", int(elapsed))
}
