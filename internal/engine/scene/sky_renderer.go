package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meadow/internal/engine/scene/shaders"
	"github.com/Faultbox/meadow/internal/engine/shader"
)

// Sky configures the background gradient.
type Sky struct {
	Rotation float32 // Radians around Y
	Zenith   [3]float32
	Horizon  [3]float32
}

// SkyRenderer draws the sky as one full-screen triangle behind everything.
type SkyRenderer struct {
	program *shader.Program
	vao     uint32
	sky     Sky
}

// NewSkyRenderer compiles the sky program.
func NewSkyRenderer(sky Sky) (*SkyRenderer, error) {
	program, err := shader.NewProgram(shaders.SkyVertexShader, shaders.SkyFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("sky shader: %w", err)
	}
	sr := &SkyRenderer{program: program, sky: sky}
	gl.GenVertexArrays(1, &sr.vao)
	return sr, nil
}

// Render draws the sky without touching the depth buffer.
func (sr *SkyRenderer) Render(env *frameEnv) {
	p := sr.program
	p.Use()
	p.SetMat4("uInvViewProj", env.viewProj.Inv())
	p.SetFloat("uRotation", sr.sky.Rotation)
	p.SetVec3("uZenith", sr.sky.Zenith)
	p.SetVec3("uHorizon", sr.sky.Horizon)
	p.SetVec3("uSunDir", env.sun.Direction)
	p.SetVec3("uSunColor", env.sun.Color)

	gl.DepthMask(false)
	gl.BindVertexArray(sr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

// Close releases GPU resources.
func (sr *SkyRenderer) Close() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
	}
	sr.program.Delete()
}
