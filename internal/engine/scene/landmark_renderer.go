package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meadow/internal/engine/scene/shaders"
	"github.com/Faultbox/meadow/internal/engine/shader"
)

// LandmarkRenderer draws the landmark box.
type LandmarkRenderer struct {
	program *shader.Program

	vao, vbo, ebo uint32
	indexCount    int32

	landmark  Landmark
	color     [3]float32
	highlight float32
}

// NewLandmarkRenderer builds and uploads the landmark mesh.
func NewLandmarkRenderer(l Landmark, color [3]float32) (*LandmarkRenderer, error) {
	program, err := shader.NewProgram(shaders.LandmarkVertexShader, shaders.LandmarkFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("landmark shader: %w", err)
	}
	lr := &LandmarkRenderer{program: program, landmark: l, color: color}

	verts, indices := BuildBox(l.Size)

	gl.GenVertexArrays(1, &lr.vao)
	gl.BindVertexArray(lr.vao)

	gl.GenBuffers(1, &lr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	stride := int32(unsafe.Sizeof(BoxVertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(stride), unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &lr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, lr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	lr.indexCount = int32(len(indices))
	return lr, nil
}

// Landmark returns the geometry being drawn.
func (lr *LandmarkRenderer) Landmark() Landmark {
	return lr.landmark
}

// SetHighlight brightens the box while the pointer is over it.
func (lr *LandmarkRenderer) SetHighlight(on bool) {
	lr.highlight = 0
	if on {
		lr.highlight = 1
	}
}

// Render draws the box.
func (lr *LandmarkRenderer) Render(env *frameEnv) {
	p := lr.program
	p.Use()
	p.SetMat4("uViewProj", env.viewProj)
	p.SetMat4("uModel", lr.landmark.Model())
	p.SetVec3("uColor", lr.color)
	p.SetFloat("uHighlight", lr.highlight)
	env.setLighting(p)

	gl.BindVertexArray(lr.vao)
	gl.DrawElements(gl.TRIANGLES, lr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Close releases GPU resources.
func (lr *LandmarkRenderer) Close() {
	if lr.vao != 0 {
		gl.DeleteVertexArrays(1, &lr.vao)
		gl.DeleteBuffers(1, &lr.vbo)
		gl.DeleteBuffers(1, &lr.ebo)
	}
	lr.program.Delete()
}
