package renderer

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/vortonsim/vortonview/gpu"
	"github.com/vortonsim/vortonview/simulation"
)

// Camera supplies the current view-projection transform
type Camera interface {
	// ViewProjection returns the column-major projection*view matrix as of the call
	ViewProjection() (gglm.Mat4, error)
}

// Simulation supplies the vortons to render, in a stable order for the duration of a call
type Simulation interface {
	Vortons() []simulation.Vorton
}

// Element is something the viewer can draw every frame
type Element interface {
	// Draw rebuilds the element's geometry from sim and draws it
	Draw(ctx gpu.Context, cam Camera, sim Simulation) error
	// Redraw draws the geometry built by the last Draw with the current camera.
	// Use it when only the camera changed.
	Redraw(ctx gpu.Context, cam Camera) error
}
