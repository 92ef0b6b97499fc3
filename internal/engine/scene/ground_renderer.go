package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meadow/internal/engine/scene/shaders"
	"github.com/Faultbox/meadow/internal/engine/shader"
	"github.com/Faultbox/meadow/internal/engine/terrain"
)

// GroundRenderer draws the terrain mesh with a tiled diffuse texture.
type GroundRenderer struct {
	program *shader.Program

	vao, vbo, ebo uint32
	indexCount    int32

	texture   uint32 // Owned by the scene
	tileScale float32
}

// NewGroundRenderer compiles the ground program.
func NewGroundRenderer(tileScale float32) (*GroundRenderer, error) {
	program, err := shader.NewProgram(shaders.GroundVertexShader, shaders.GroundFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("ground shader: %w", err)
	}
	return &GroundRenderer{program: program, tileScale: tileScale}, nil
}

// SetMesh uploads m, replacing any previous mesh.
func (gr *GroundRenderer) SetMesh(m *terrain.Mesh) {
	gr.clearMesh()
	if len(m.Indices) == 0 {
		return
	}

	gl.GenVertexArrays(1, &gr.vao)
	gl.BindVertexArray(gr.vao)

	gl.GenBuffers(1, &gr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(unsafe.Sizeof(terrain.Vertex{})),
		unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Vertex format: position(3) + normal(3) + uv(2) = 32 bytes
	stride := int32(unsafe.Sizeof(terrain.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &gr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gr.indexCount = int32(len(m.Indices))
}

// SetTexture sets the diffuse texture.
func (gr *GroundRenderer) SetTexture(tex uint32) {
	gr.texture = tex
}

// Render draws the ground.
func (gr *GroundRenderer) Render(env *frameEnv) {
	if gr.indexCount == 0 {
		return
	}
	p := gr.program
	p.Use()
	p.SetMat4("uViewProj", env.viewProj)
	p.SetFloat("uTileScale", gr.tileScale)
	env.setLighting(p)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, gr.texture)
	p.SetInt("uTerrainTexture", 0)

	gl.BindVertexArray(gr.vao)
	gl.DrawElements(gl.TRIANGLES, gr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (gr *GroundRenderer) clearMesh() {
	if gr.vao != 0 {
		gl.DeleteVertexArrays(1, &gr.vao)
		gl.DeleteBuffers(1, &gr.vbo)
		gl.DeleteBuffers(1, &gr.ebo)
		gr.vao, gr.vbo, gr.ebo = 0, 0, 0
	}
	gr.indexCount = 0
}

// Close releases GPU resources.
func (gr *GroundRenderer) Close() {
	gr.clearMesh()
	gr.program.Delete()
}
