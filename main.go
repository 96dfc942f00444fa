package main

import (
	"errors"
	"flag"

	"github.com/bloeys/gglm/gglm"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vortonsim/vortonview/camera"
	"github.com/vortonsim/vortonview/config"
	"github.com/vortonsim/vortonview/engine"
	"github.com/vortonsim/vortonview/gpu"
	"github.com/vortonsim/vortonview/gpu/glctx"
	"github.com/vortonsim/vortonview/input"
	"github.com/vortonsim/vortonview/logging"
	"github.com/vortonsim/vortonview/renderer"
	"github.com/vortonsim/vortonview/renderer/vortonrender"
	"github.com/vortonsim/vortonview/simulation"
	"github.com/vortonsim/vortonview/simulation/model"
	"github.com/vortonsim/vortonview/timing"
)

/*
Controls:
	- Left mouse drag: orbit around the scene center
	- Mouse wheel: zoom
	- R: reload the scene from its source
	- Escape: quit
*/

var (
	configPath = flag.String("config", "", "Path to a .toml, .yaml or .yml viewer config. Built-in defaults are used when empty")
)

const (
	maxMouseMove = 300
	zoomStep     = 0.1
)

type Game struct {
	Win  *engine.Window
	Conf config.Config

	GpuCtx     gpu.Context
	Cam        *camera.Camera
	Sim        *simulation.Snapshot
	VortonRend *vortonrender.VortonRender

	target   gglm.Vec3
	pitch    float32
	yaw      float32
	distance float32

	// geometryDirty is set whenever Sim changes, so the next frame does a full Draw
	// instead of a camera-only Redraw.
	geometryDirty bool
	lastRenderErr string
	quit          bool
}

func main() {

	flag.Parse()

	conf := config.Default()
	if *configPath != "" {

		var err error
		conf, err = config.Load(*configPath)
		if err != nil {
			logging.ErrLog.Fatalln("Failed to load config. Err: ", err)
		}
	}

	err := engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}
	defer engine.Quit()

	window, err := engine.CreateOpenGLWindowCentered(conf.Window.Title, conf.Window.Width, conf.Window.Height, engine.WindowFlags_RESIZABLE|engine.WindowFlags_ALLOW_HIGHDPI)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err: ", err)
	}
	defer window.Destroy()

	engine.SetMSAA(conf.Window.MSAA)
	engine.SetVSync(conf.Window.VSync)

	game := &Game{
		Win:    window,
		Conf:   conf,
		GpuCtx: glctx.New(),
	}
	window.EventCallbacks = append(window.EventCallbacks, game.handleWindowEvents)

	engine.Run(game, window)
}

func (g *Game) handleWindowEvents(e sdl.Event) {

	switch e := e.(type) {
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			// Only the projection changes, the uploaded vortons stay valid
			g.Cam.SetViewportSize(g.Win.DrawableSize())
		}
	}
}

func (g *Game) Init() {

	var err error

	g.VortonRend, err = vortonrender.New(g.GpuCtx)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create vorton renderer. Err: ", err)
	}

	camPos := gglm.NewVec3(0, 0, 1)
	camForward := gglm.NewVec3(0, 0, -1)
	camWorldUp := gglm.NewVec3(0, 1, 0)
	g.Cam = camera.NewPerspective(
		&camPos,
		&camForward,
		&camWorldUp,
		g.Conf.Camera.Near, g.Conf.Camera.Far,
		g.Conf.Camera.FovDeg*gglm.Deg2Rad,
		1,
	)
	g.Cam.SetViewportSize(g.Win.DrawableSize())

	g.pitch = g.Conf.Camera.Pitch
	g.yaw = g.Conf.Camera.Yaw

	if err := g.loadScene(); err != nil {
		logging.ErrLog.Fatalln("Failed to load scene. Err: ", err)
	}
}

// loadScene replaces Sim from the configured source and frames the camera around it
func (g *Game) loadScene() error {

	var sim *simulation.Snapshot
	switch g.Conf.Scene.Source {
	case config.SceneSource_Model:

		var err error
		sim, err = model.Load(g.Conf.Scene.ModelPath)
		if err != nil {
			return err
		}

	default:
		sim = simulation.NewRing(g.Conf.Scene.RingCount, g.Conf.Scene.RingRadius, g.Conf.Scene.RingCenter)
	}

	g.Sim = sim
	g.geometryDirty = true

	c := sim.Centroid()
	g.target = gglm.NewVec3(float32(c[0]), float32(c[1]), float32(c[2]))

	radius := float32(sim.Radius())
	if radius == 0 {
		radius = 1
	}
	g.distance = radius * g.Conf.Camera.Distance

	g.Cam.Orbit(&g.target, g.distance, g.pitch, g.yaw)
	logging.InfoLog.Printf("Loaded scene '%s' with %d vortons\n", g.Conf.Scene.Source, sim.Len())

	return nil
}

func (g *Game) Update() {

	if input.KeyClicked(sdl.K_ESCAPE) {
		g.quit = true
		return
	}

	if input.KeyClicked(sdl.K_r) {
		if err := g.loadScene(); err != nil {
			logging.ErrLog.Println("Failed to reload scene. Err: ", err)
		}
	}

	g.updateCameraOrbit()
}

func (g *Game) updateCameraOrbit() {

	update := false

	mouseX, mouseY := input.GetMouseMotion()
	if (mouseX != 0 || mouseY != 0) && input.MouseDown(sdl.BUTTON_LEFT) {

		mouseX = gglm.Clamp(mouseX, -maxMouseMove, maxMouseMove)
		mouseY = gglm.Clamp(mouseY, -maxMouseMove, maxMouseMove)

		g.yaw += float32(mouseX) * g.Conf.Camera.RotSpeed * timing.DT()
		g.pitch += float32(mouseY) * g.Conf.Camera.RotSpeed * timing.DT()

		if g.pitch > 1.5 {
			g.pitch = 1.5
		}

		if g.pitch < -1.5 {
			g.pitch = -1.5
		}

		update = true
	}

	if wheel := input.GetMouseWheelYNorm(); wheel != 0 {
		g.distance *= 1 - zoomStep*float32(wheel)
		update = true
	}

	if update {
		g.Cam.Orbit(&g.target, g.distance, g.pitch, g.yaw)
	}
}

func (g *Game) Render() {

	var err error
	if g.geometryDirty {
		err = g.VortonRend.Draw(g.GpuCtx, g.Cam, g.Sim)
	} else {
		err = g.VortonRend.Redraw(g.GpuCtx, g.Cam)
	}

	if err != nil {

		// Skip the frame and try again next one. Log only when the failure changes, as a
		// minimized window fails every frame.
		if err.Error() != g.lastRenderErr {
			logging.ErrLog.Println("Failed to render vortons. Err: ", err)
			g.lastRenderErr = err.Error()
		}

		// A camera error happens after the upload, so the geometry is already in place
		var camErr *renderer.CameraError
		if errors.As(err, &camErr) {
			g.geometryDirty = false
		}
		return
	}

	g.geometryDirty = false
	g.lastRenderErr = ""
}

func (g *Game) ShouldQuit() bool {
	return g.quit
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {
	g.VortonRend.Delete(g.GpuCtx)
}
