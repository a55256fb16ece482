// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/glide/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	closed  bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A scene returning scene.ErrQuit ends the run cleanly.
func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if errors.Is(err, scene.ErrQuit) {
		g.Close()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time passed to scenes.
// It should match the TPS ebiten runs at.
func (g *Game) SetDT(dt float64) {
	if dt > 0 {
		g.dt = dt
	}
}

// Close exits the current scene once. Call it after ebiten.RunGame returns.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}
