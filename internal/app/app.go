// Package app runs the meadow: the SDL window and frame loop around the
// state controller.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meadow/internal/app/state"
	"github.com/Faultbox/meadow/internal/assets"
	"github.com/Faultbox/meadow/internal/config"
	"github.com/Faultbox/meadow/internal/engine/debug"
	"github.com/Faultbox/meadow/internal/engine/input"
	"github.com/Faultbox/meadow/internal/engine/picking"
	"github.com/Faultbox/meadow/internal/engine/renderer"
	"github.com/Faultbox/meadow/internal/engine/scene"
	"github.com/Faultbox/meadow/internal/engine/terrain"
	"github.com/Faultbox/meadow/internal/engine/texture"
	"github.com/Faultbox/meadow/internal/engine/ui2d"
	"github.com/Faultbox/meadow/internal/engine/window"
	"github.com/Faultbox/meadow/internal/grass"
	"github.com/Faultbox/meadow/internal/logger"
	"github.com/Faultbox/meadow/internal/router"
	"github.com/Faultbox/meadow/internal/scroll"
)

// Panel page styling.
var pageStyle = ui2d.PageStyle{
	Text: ui2d.ColorText,
	Link: ui2d.ColorLink,
	Code: ui2d.ColorTextDim,
}

// App is the running application.
type App struct {
	config  *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene

	ctrl   *state.Controller
	links  []ui2d.Link
	text   *ui2d.TextRasterizer
	ui     *ui2d.Renderer
	panel  ui2d.Panel
	layout ui2d.Layout

	assets *assets.Manager
	loader *assets.Loader
	cancel context.CancelFunc

	screenshots *debug.ScreenshotCapture
	fps         *debug.FPSCounter
	start       time.Time
}

// New creates the window, GL resources and controller from cfg.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config:      cfg,
		log:         logger.Named("app"),
		links:       Links(cfg),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "meadow"),
		fps:         debug.NewFPSCounter(120),
	}

	a.log.Info("initializing",
		zap.String("preset", cfg.Scene.Preset),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		MSAA:       cfg.Window.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Everything below needs the GL context the window created.
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		MSAA:       cfg.Window.MSAA > 0,
		ClearColor: [4]float32{cfg.Sky.Horizon[0], cfg.Sky.Horizon[1], cfg.Sky.Horizon[2], 1},
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.input.Scale = a.window.Scale()
	a.input.Drawable = a.window.DrawableSize

	field, err := grass.NewField(state.FieldParams(cfg))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("grass field: %w", err)
	}
	hf, err := terrain.NewHeightfield(state.HeightfieldParams(cfg))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("heightfield: %w", err)
	}
	a.scene, err = scene.New(SceneConfig(cfg, field, hf))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	a.text, err = ui2d.NewTextRasterizer(cfg.UI.FontSize, float64(a.input.Scale))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("fonts: %w", err)
	}
	a.ui, err = ui2d.New(width, height, a.text)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create overlay renderer: %w", err)
	}

	table, err := router.DefaultTable()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("routes: %w", err)
	}
	a.ctrl, err = state.NewController(state.ControllerOptions(cfg, field, width, height), table,
		router.NewMemoryHistory(cfg.UI.HomeRoute))
	if err != nil {
		a.Close()
		return nil, err
	}

	a.startAssets()

	a.log.Info("initialized",
		zap.Int("grass_instances", field.InstanceCount()),
		zap.Int("drawable_width", width),
		zap.Int("drawable_height", height),
	)
	return a, nil
}

// startAssets begins decoding the ground texture in the background. The
// scene draws with its fallback until the result arrives.
func (a *App) startAssets() {
	a.assets = assets.NewManager()
	if err := a.assets.AddDir(a.config.Assets.Root); err != nil {
		a.log.Warn("asset directory unavailable, using fallback textures", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.loader = assets.NewLoader(a.assets, texture.Decode, 2)
	a.loader.Start(ctx, a.config.Terrain.Texture)
}

// Run is the frame loop. It returns when the window closes or Escape is
// pressed.
func (a *App) Run() error {
	a.running = true
	a.start = time.Now()
	last := a.start
	fpsLog := a.start

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		a.fps.Frame(now.Sub(last))
		last = now

		if a.input.Update() {
			a.running = false
		}
		for _, ev := range a.input.Events() {
			a.handleEvent(ev)
		}
		if !a.running {
			break
		}

		a.pollAssets()

		frame := a.ctrl.Tick(now.Sub(a.start).Seconds())
		a.render(frame)
		a.window.SwapBuffers()

		if now.Sub(fpsLog) >= 5*time.Second {
			a.log.Debug("frame stats",
				zap.Float64("fps", a.fps.FPS()),
				zap.Duration("frame_time", a.fps.FrameTime()),
				zap.Float64("progress", frame.Progress),
			)
			fpsLog = now
		}
	}

	return nil
}

func (a *App) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		a.running = false

	case input.EventWindowResize:
		a.resize(ev.Width, ev.Height)

	case input.EventWheel:
		x, y := float32(ev.MouseX), float32(ev.MouseY)
		hit := a.layout.HitTest(x, y)
		if a.ctrl.Wheel(ev.DeltaY, hit.Target) {
			return
		}
		// Wheel over the panel scrolls its content instead of the scene.
		if hit.Target == scroll.TargetOverlay {
			a.panel.Scroll(float32(ev.DeltaY) * 0.5 * a.layout.Scale)
		}

	case input.EventMouseMove:
		hit := a.layout.HitTest(float32(ev.MouseX), float32(ev.MouseY))
		a.scene.SetHover(hit.Target == scroll.TargetViewport && a.pickLandmark(ev.MouseX, ev.MouseY))

	case input.EventMouseDown:
		if ev.Button != sdl.BUTTON_LEFT {
			return
		}
		a.click(float32(ev.MouseX), float32(ev.MouseY))

	case input.EventKeyDown:
		a.handleKey(ev)
	}
}

func (a *App) click(x, y float32) {
	if href, ok := a.panel.LinkAt(a.layout, x, y); ok {
		if ui2d.IsInternalRoute(href) {
			a.ctrl.Navigate(href)
		} else {
			a.log.Info("external link ignored", zap.String("href", href))
		}
		return
	}

	hit := a.layout.HitTest(x, y)
	landmark := hit.Target == scroll.TargetViewport && a.pickLandmark(int(x), int(y))
	a.ctrl.Click(clickHit(hit, landmark))
}

func (a *App) pickLandmark(x, y int) bool {
	w, h := a.ctrl.Size()
	inv := a.ctrl.Camera().ViewProjection().Inv()
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), inv)
	return a.scene.Pick(ray)
}

func (a *App) handleKey(ev input.Event) {
	if ev.Repeat {
		return
	}
	switch {
	case ev.Key == sdl.K_ESCAPE:
		a.running = false
	case ev.Key == sdl.K_BACKSPACE, ev.Key == sdl.K_LEFT && ev.Alt():
		a.ctrl.Back()
	case ev.Key == sdl.K_RIGHT && ev.Alt():
		a.ctrl.Forward()
	case ev.Key == sdl.K_HOME:
		a.ctrl.ResetScroll()
	case ev.Key == sdl.K_e:
		a.ctrl.ToggleExpand()
	case ev.Key == sdl.K_F12:
		a.screenshot()
	}
}

func (a *App) resize(width, height int) {
	if !a.ctrl.Resize(width, height) {
		return
	}
	a.renderer.Resize(width, height)
	a.ui.Resize(width, height)
	a.log.Debug("resized", zap.Int("width", width), zap.Int("height", height))
}

// pollAssets uploads finished decodes on the GL thread.
func (a *App) pollAssets() {
	for _, r := range a.loader.Poll() {
		if r.Err != nil {
			a.log.Warn("asset load failed, keeping fallback", zap.String("name", r.Name), zap.Error(r.Err))
			continue
		}
		if r.Name == a.config.Terrain.Texture {
			rgba := texture.ImageToRGBA(r.Image, false)
			a.scene.SetGroundTexture(texture.Upload(rgba, texture.Options{Repeat: true, Mipmaps: true}))
			a.log.Info("ground texture ready", zap.String("name", r.Name))
		}
	}
}

func (a *App) render(frame state.Frame) {
	width, height := a.ctrl.Size()
	view := ui2d.ViewState{
		Overlay: frame.Overlay,
		Title:   a.config.UI.Title,
		Links:   a.links,
		Scale:   a.input.Scale,
	}
	a.layout = ui2d.Compute(view, width, height, a.text)
	a.syncPanel(frame)

	a.renderer.Begin()
	a.scene.Render(a.ctrl.Camera(), frame.Uniforms)

	a.ui.Begin()
	a.ui.DrawOverlay(a.layout, view, &a.panel)
	if a.config.Debug.ShowFPS {
		label := fmt.Sprintf("%.0f fps", a.fps.FPS())
		a.ui.DrawLabel(ui2d.Rect{X: 8 * a.layout.Scale, Y: a.layout.Height - 28*a.layout.Scale, W: 0, H: 24 * a.layout.Scale},
			label, false, ui2d.ColorChromeText)
	}
	a.ui.End()
}

// syncPanel rasterizes the page when the route or the content width
// changed. Re-applying the same view does nothing.
func (a *App) syncPanel(frame state.Frame) {
	if !a.layout.PanelVisible || frame.View.Content == "" {
		a.panel.Clear()
		return
	}
	width := int(a.layout.Content.W)
	key := fmt.Sprintf("%s@%d", frame.View.Route, width)
	if key != a.panel.Key() {
		doc := ui2d.ParseDocument(frame.View.Content)
		a.panel.SetPage(key, a.text.RenderPage(doc, width, pageStyle))
	}
	a.panel.SetViewport(a.layout.Content.H)
}

func (a *App) screenshot() {
	w, h := a.ctrl.Size()
	path, err := a.screenshots.CaptureFromPixels(debug.ReadFramebuffer(w, h), w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases resources in reverse creation order.
func (a *App) Close() {
	a.log.Info("closing")

	if a.cancel != nil {
		a.cancel()
		if err := a.loader.Wait(); err != nil {
			a.log.Debug("asset loader stopped", zap.Error(err))
		}
	}
	if a.assets != nil {
		a.assets.Close()
	}
	if a.ui != nil {
		a.ui.Close()
	}
	if a.scene != nil {
		a.scene.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
