package engine

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/vortonsim/vortonview/input"
	"github.com/vortonsim/vortonview/timing"
)

type Game interface {
	Init()

	Update()
	Render()
	FrameEnd()

	// ShouldQuit is checked once per frame after Update
	ShouldQuit() bool

	DeInit()
}

// Run drives game until it asks to quit or the window is closed.
// It must be called from the thread engine.Init ran on.
func Run(g Game, w *Window) {

	g.Init()

	for {

		timing.FrameStarted()
		w.handleInputs()

		g.Update()
		if input.IsQuitClicked() || g.ShouldQuit() {
			break
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		g.Render()
		w.SDLWin.GLSwap()

		g.FrameEnd()
		timing.FrameEnded()
	}

	g.DeInit()
}
