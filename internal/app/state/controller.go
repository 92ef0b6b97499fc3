package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meadow/internal/engine/camera"
	"github.com/Faultbox/meadow/internal/grass"
	"github.com/Faultbox/meadow/internal/logger"
	"github.com/Faultbox/meadow/internal/overlay"
	"github.com/Faultbox/meadow/internal/router"
	"github.com/Faultbox/meadow/internal/scroll"
)

// Options configure a Controller.
type Options struct {
	Curve         camera.Curve
	Near, Far     float32
	Width, Height int

	Sensitivity float64
	Region      scroll.Target
	Rules       overlay.Rules

	// Smoothing eases the camera with a spring; the overlay gate always
	// sees raw progress.
	Smoothing bool
	Frequency float64
	Damping   float64
	FPS       int

	Field         *grass.Field
	LandmarkRoute string
}

// Hit is what a click landed on, resolved by the caller from the overlay
// layout and the landmark pick.
type Hit struct {
	Target   scroll.Target
	Route    string // Set for navigation links
	Expand   bool   // The panel's expand button
	Landmark bool   // The pointer ray hit the landmark
}

// Frame is everything the renderers need for one frame.
type Frame struct {
	Progress float64 // Raw scroll progress
	Eased    float64 // Progress after smoothing, drives the camera
	Pose     camera.Pose
	Overlay  overlay.State
	View     router.View
	Uniforms grass.Uniforms
	Effects  []overlay.Effect
}

// Controller is the application state. Input handlers and the frame tick
// are its methods. Nothing in this package imports GL or SDL.
type Controller struct {
	log *zap.Logger

	acc      *scroll.Accumulator
	smoother *scroll.Smoother
	curve    camera.Curve
	cam      *camera.Perspective
	overlay  *overlay.Machine
	router   *router.Router

	field    *grass.Field
	uniforms grass.Uniforms

	width, height int
	view          router.View
	landmarkRoute string
}

// NewController wires the state. The router resolves history's current
// entry immediately so the overlay starts in sync with it.
func NewController(opts Options, table *router.Table, history router.History) (*Controller, error) {
	if opts.Field == nil {
		return nil, fmt.Errorf("controller: grass field is required")
	}
	if table == nil || history == nil {
		return nil, fmt.Errorf("controller: route table and history are required")
	}
	if opts.Rules.HomeRoute == "" {
		opts.Rules = overlay.DefaultRules()
	}

	c := &Controller{
		log:           logger.Named("state"),
		acc:           scroll.NewAccumulator(opts.Sensitivity, opts.Region),
		curve:         opts.Curve,
		cam:           camera.NewPerspective(opts.Curve.Rest, opts.Width, opts.Height, opts.Near, opts.Far),
		overlay:       overlay.NewMachine(opts.Rules),
		field:         opts.Field,
		uniforms:      opts.Field.Uniforms(),
		landmarkRoute: opts.LandmarkRoute,
	}
	if opts.Smoothing {
		c.smoother = scroll.NewSmoother(opts.FPS, opts.Frequency, opts.Damping)
	}
	c.Resize(opts.Width, opts.Height)

	c.router = router.New(table, history, c.onRoute)
	c.router.Load()
	return c, nil
}

// onRoute feeds every resolved view into the overlay machine.
func (c *Controller) onRoute(v router.View) {
	c.view = v
	c.overlay.Dispatch(overlay.RouteChanged{Route: v.Route})
	c.log.Debug("route resolved",
		zap.String("route", v.Route),
		zap.Bool("not_found", v.NotFound),
		zap.Stringer("mode", c.overlay.State().Mode),
	)
}

// Wheel applies a wheel delta that landed on target. Returns whether
// progress changed.
func (c *Controller) Wheel(deltaY float64, target scroll.Target) bool {
	return c.acc.OnWheel(deltaY, target)
}

// Navigate pushes path and resolves it.
func (c *Controller) Navigate(path string) router.View {
	return c.router.Navigate(path)
}

// Back moves one entry back in history.
func (c *Controller) Back() bool {
	return c.router.Back()
}

// Forward moves one entry forward in history.
func (c *Controller) Forward() bool {
	return c.router.Forward()
}

// ToggleExpand flips the panel between its two sizes.
func (c *Controller) ToggleExpand() {
	c.overlay.Dispatch(overlay.ToggleExpand{})
}

// Click handles a left click. Clicks on the 3D view go to the
// landmark's route, or home when they miss.
func (c *Controller) Click(hit Hit) {
	switch {
	case hit.Route != "":
		c.Navigate(hit.Route)
		return
	case hit.Expand:
		c.ToggleExpand()
		return
	}

	if hit.Target != scroll.TargetViewport {
		return
	}
	if hit.Landmark && c.landmarkRoute != "" {
		c.Navigate(c.landmarkRoute)
		return
	}
	c.Navigate(c.overlay.Rules().HomeRoute)
}

// ResetScroll rewinds progress to zero. The camera jumps back with it
// and the next Tick sees the downward crossing.
func (c *Controller) ResetScroll() {
	c.acc.Reset()
	if c.smoother != nil {
		c.smoother.Snap(0)
	}
	c.log.Debug("scroll reset")
}

// Resize updates the camera aspect and the resolution uniform. Repeating
// the current size is a no-op; returns whether anything changed.
func (c *Controller) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		c.log.Debug("resize ignored", zap.Int("width", width), zap.Int("height", height))
		return false
	}
	if width == c.width && height == c.height {
		return false
	}
	c.width, c.height = width, height
	c.cam.SetAspect(width, height)
	c.uniforms.SetResolution(width, height)
	return true
}

// Tick advances one frame at elapsed seconds since start. The pose is
// recomputed from progress every frame; nothing accumulates.
func (c *Controller) Tick(elapsed float64) Frame {
	t := c.acc.Progress()
	eased := t
	if c.smoother != nil {
		eased = c.smoother.Next(t)
	}

	pose := c.curve.Evaluate(eased)
	c.cam.Apply(pose)
	c.uniforms.Time = float32(elapsed)

	effects := c.overlay.Dispatch(overlay.ProgressChanged{T: t})
	for _, e := range effects {
		c.apply(e)
	}

	return Frame{
		Progress: t,
		Eased:    eased,
		Pose:     pose,
		Overlay:  c.overlay.State(),
		View:     c.view,
		Uniforms: c.uniforms,
		Effects:  effects,
	}
}

func (c *Controller) apply(e overlay.Effect) {
	c.log.Debug("overlay effect", zap.Stringer("effect", e))
	if e == overlay.NavigateHome {
		c.Navigate(c.overlay.Rules().HomeRoute)
	}
}

// Camera returns the camera posed by the last Tick.
func (c *Controller) Camera() *camera.Perspective { return c.cam }

// Uniforms returns the grass uniform set.
func (c *Controller) Uniforms() grass.Uniforms { return c.uniforms }

// Overlay returns the overlay state.
func (c *Controller) Overlay() overlay.State { return c.overlay.State() }

// View returns the last resolved view.
func (c *Controller) View() router.View { return c.view }

// Progress returns the raw scroll progress.
func (c *Controller) Progress() float64 { return c.acc.Progress() }

// Size returns the viewport size.
func (c *Controller) Size() (int, int) { return c.width, c.height }

// Field returns the grass field.
func (c *Controller) Field() *grass.Field { return c.field }
