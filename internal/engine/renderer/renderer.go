// Package renderer owns global OpenGL state: context init, viewport and
// frame clearing.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meadow/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	MSAA       bool
	ClearColor [4]float32
}

// Renderer handles frame-level OpenGL state.
type Renderer struct {
	config Config
	log    *zap.Logger
}

// New initializes OpenGL. It must be called after the context is current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	// Blades carry both faces in their index buffer, so back faces can go.
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	if cfg.MSAA {
		gl.Enable(gl.MULTISAMPLE)
	}

	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Resize sets the viewport. Repeating the current size does nothing.
func (r *Renderer) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == r.config.Width && height == r.config.Height {
		return false
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return true
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.DepthMask(true)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Close logs shutdown. GL objects belong to the scene and overlay.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
}
