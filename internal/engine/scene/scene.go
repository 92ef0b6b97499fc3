// Package scene renders the meadow: sky, ground, grass and the landmark.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/meadow/internal/engine/camera"
	"github.com/Faultbox/meadow/internal/engine/lighting"
	"github.com/Faultbox/meadow/internal/engine/picking"
	"github.com/Faultbox/meadow/internal/engine/shader"
	"github.com/Faultbox/meadow/internal/engine/terrain"
	"github.com/Faultbox/meadow/internal/engine/texture"
	"github.com/Faultbox/meadow/internal/grass"
	"github.com/Faultbox/meadow/internal/logger"
)

// Fog fades distant geometry into the horizon colour.
type Fog struct {
	Near, Far float32
}

// Config contains everything the scene is built from.
type Config struct {
	Field          *grass.Field
	Heightfield    *terrain.Heightfield
	GroundSegments int
	TileScale      float32

	Sky           Sky
	Sun           lighting.Sun
	Fog           Fog
	Landmark      Landmark
	LandmarkColor [3]float32
}

// frameEnv is the per-frame state shared by every renderer.
type frameEnv struct {
	viewProj    mgl32.Mat4
	cameraPos   mgl32.Vec3
	sun         lighting.Sun
	fogColor    [3]float32
	fog         Fog
	terrainSize float32
}

func (e *frameEnv) setLighting(p *shader.Program) {
	p.SetVec3("uSunDir", e.sun.Direction)
	p.SetVec3("uSunColor", e.sun.Color)
	p.SetVec3("uAmbient", e.sun.Ambient)
	p.SetVec3("uCameraPos", e.cameraPos)
	p.SetVec3("uFogColor", e.fogColor)
	p.SetFloat("uFogNear", e.fog.Near)
	p.SetFloat("uFogFar", e.fog.Far)
}

// Scene owns the renderers and the textures they share.
type Scene struct {
	config Config
	log    *zap.Logger

	sky      *SkyRenderer
	ground   *GroundRenderer
	grass    *GrassRenderer
	landmark *LandmarkRenderer

	fallbackTex  uint32
	groundTex    uint32
	heightmapTex uint32
}

// New creates the scene. It needs a current GL context.
func New(cfg Config) (*Scene, error) {
	if cfg.Field == nil || cfg.Heightfield == nil {
		return nil, fmt.Errorf("scene: field and heightfield are required")
	}

	s := &Scene{
		config: cfg,
		log:    logger.Named("scene"),
	}

	var err error
	if s.sky, err = NewSkyRenderer(cfg.Sky); err != nil {
		return nil, err
	}
	if s.ground, err = NewGroundRenderer(cfg.TileScale); err != nil {
		s.Close()
		return nil, err
	}
	if s.grass, err = NewGrassRenderer(s.log); err != nil {
		s.Close()
		return nil, err
	}
	if s.landmark, err = NewLandmarkRenderer(cfg.Landmark, cfg.LandmarkColor); err != nil {
		s.Close()
		return nil, err
	}

	s.fallbackTex = texture.Fallback()

	hf := cfg.Heightfield
	s.heightmapTex = texture.UploadFloat(hf.Samples(), hf.Resolution(), hf.Resolution())
	mesh := terrain.BuildGround(hf, cfg.GroundSegments)
	s.ground.SetMesh(mesh)
	s.ground.SetTexture(s.fallbackTex)

	s.grass.SetField(cfg.Field)
	s.grass.SetHeightmap(s.heightmapTex)

	s.log.Info("scene ready",
		zap.Int("ground_vertices", len(mesh.Vertices)),
		zap.Int("grass_instances", cfg.Field.InstanceCount()),
		zap.Float32("terrain_size", hf.Size()),
	)
	return s, nil
}

// SetGroundTexture replaces the fallback ground texture. The scene takes
// ownership of tex.
func (s *Scene) SetGroundTexture(tex uint32) {
	if s.groundTex != 0 {
		texture.Delete(s.groundTex)
	}
	s.groundTex = tex
	s.ground.SetTexture(tex)
}

// Landmark returns the clickable landmark geometry.
func (s *Scene) Landmark() Landmark {
	return s.config.Landmark
}

// Pick reports whether ray hits the landmark.
func (s *Scene) Pick(ray picking.Ray) bool {
	_, hit := s.config.Landmark.Hit(ray)
	return hit
}

// SetHover highlights the landmark.
func (s *Scene) SetHover(on bool) {
	s.landmark.SetHighlight(on)
}

// Render draws one frame from cam with the grass uniform set u.
func (s *Scene) Render(cam *camera.Perspective, u grass.Uniforms) {
	env := &frameEnv{
		viewProj:    cam.ViewProjection(),
		cameraPos:   cam.Position,
		sun:         s.config.Sun,
		fogColor:    s.config.Sky.Horizon,
		fog:         s.config.Fog,
		terrainSize: s.config.Heightfield.Size(),
	}

	s.sky.Render(env)
	s.ground.Render(env)
	s.landmark.Render(env)
	s.grass.Render(u, env)

	gl.UseProgram(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Close releases all GPU resources.
func (s *Scene) Close() {
	if s.sky != nil {
		s.sky.Close()
	}
	if s.ground != nil {
		s.ground.Close()
	}
	if s.grass != nil {
		s.grass.Close()
	}
	if s.landmark != nil {
		s.landmark.Close()
	}
	texture.Delete(s.fallbackTex)
	texture.Delete(s.groundTex)
	texture.Delete(s.heightmapTex)
	s.fallbackTex, s.groundTex, s.heightmapTex = 0, 0, 0
}
