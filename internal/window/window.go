// Package window runs the game in a desktop window with ebiten.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/shmup/internal/loop"
	"github.com/tomz197/shmup/internal/object"
)

// Game adapts a loop.Driver to ebiten.Game. ebiten's own fixed tick drives
// the simulation; the driver is stepped once per Update.
type Game struct {
	driver   *loop.Driver
	renderer *Renderer
	width    int
	height   int
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game whose driver draws through renderer.
func NewGame(driver *loop.Driver, renderer *Renderer, width, height int) *Game {
	return &Game{
		driver:   driver,
		renderer: renderer,
		width:    width,
		height:   height,
	}
}

// Update steps the driver. Quitting or closing the window ends the game.
func (g *Game) Update() error {
	done, err := g.driver.Step()
	if err != nil {
		return err
	}
	if done {
		return ebiten.Termination
	}
	return nil
}

// Draw presents the last completed frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Present(screen)
}

// Layout returns the arena size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Keyboard reads the controls from ebiten's keyboard state.
type Keyboard struct{}

var _ loop.Source = Keyboard{}

// Poll returns the keys held this tick. A close request counts as quit.
func (Keyboard) Poll() object.Controls {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return object.Controls{
		Left:  pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: pressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  pressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Fire:  pressed(ebiten.KeySpace, ebiten.KeyF),
		Quit:  pressed(ebiten.KeyQ, ebiten.KeyEscape) || ebiten.IsWindowBeingClosed(),
	}
}
