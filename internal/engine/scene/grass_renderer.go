package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meadow/internal/engine/scene/shaders"
	"github.com/Faultbox/meadow/internal/engine/shader"
	"github.com/Faultbox/meadow/internal/grass"
)

// GrassRenderer draws a grass.Field with one instanced call. The VAO has
// no vertex attributes; the program derives every vertex from its ids.
type GrassRenderer struct {
	program *shader.Program
	log     *zap.Logger

	vao uint32
	ebo uint32

	field     *grass.Field
	heightmap uint32 // Owned by the scene
}

// NewGrassRenderer compiles the grass program.
func NewGrassRenderer(log *zap.Logger) (*GrassRenderer, error) {
	program, err := shader.NewProgram(shaders.GrassVertexShader, shaders.GrassFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("grass shader: %w", err)
	}
	gr := &GrassRenderer{program: program, log: log}
	gl.GenVertexArrays(1, &gr.vao)
	gl.GenBuffers(1, &gr.ebo)
	return gr, nil
}

// SetField uploads the blade topology of f.
func (gr *GrassRenderer) SetField(f *grass.Field) {
	gr.field = f
	indices := f.Indices()

	gl.BindVertexArray(gr.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	gl.BindVertexArray(0)

	gr.log.Debug("grass field bound",
		zap.Int("indices", f.IndexCount()),
		zap.Int("vertices", f.VertexCount()),
		zap.Int("instances", f.InstanceCount()),
	)
}

// SetHeightmap sets the terrain height texture blades stand on.
func (gr *GrassRenderer) SetHeightmap(tex uint32) {
	gr.heightmap = tex
}

// Render draws the field. A uniform set that disagrees with the field is
// logged and drawn anyway.
func (gr *GrassRenderer) Render(u grass.Uniforms, env *frameEnv) {
	if gr.field == nil || gr.field.InstanceCount() == 0 {
		return
	}
	if err := gr.field.CheckUniforms(u); err != nil {
		gr.log.Warn("grass uniforms", zap.Error(err))
	}

	p := gr.program
	p.Use()
	p.SetVec4("grassParams", u.GrassParams)
	p.SetFloat("time", u.Time)
	p.SetVec2("resolution", u.Resolution)
	p.SetMat4("uViewProj", env.viewProj)
	p.SetFloat("uTerrainSize", env.terrainSize)
	env.setLighting(p)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, gr.heightmap)
	p.SetInt("uHeightmap", 0)

	gl.BindVertexArray(gr.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, int32(gr.field.IndexCount()), gl.UNSIGNED_INT,
		nil, int32(gr.field.InstanceCount()))
	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (gr *GrassRenderer) Close() {
	if gr.vao != 0 {
		gl.DeleteVertexArrays(1, &gr.vao)
		gl.DeleteBuffers(1, &gr.ebo)
	}
	gr.program.Delete()
}
