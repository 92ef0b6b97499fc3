// Package ui2d draws the 2D overlay on top of the 3D scene: the chrome bar
// with its links and the content panel. Layout and hit-testing are pure;
// only Renderer touches OpenGL.
package ui2d

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meadow/internal/engine/shader"
	"github.com/Faultbox/meadow/internal/engine/texture"
	"github.com/Faultbox/meadow/internal/overlay"
)

const solidVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vColor = aColor;
}
`

const solidFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

const imageVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 uProjection;

out vec2 vTexCoord;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vTexCoord = aTexCoord;
}
`

// Images are premultiplied, so the opacity scales every channel.
const imageFragmentShader = `
#version 410 core

uniform sampler2D uTexture;
uniform float uOpacity;

in vec2 vTexCoord;
out vec4 FragColor;

void main() {
	FragColor = texture(uTexture, vTexCoord) * uOpacity;
}
`

// Vertex formats: solid is pos(2) + color(4), image is pos(2) + uv(2).
const (
	solidStride = 6
	imageStride = 4
)

type labelKey struct {
	text  string
	bold  bool
	color Color
}

type labelTexture struct {
	id   uint32
	w, h float32
}

type imageQuad struct {
	tex     uint32
	opacity float32
	verts   [6 * imageStride]float32
}

// Renderer batches overlay quads and draws them in two passes: solid
// shapes first, then images (labels and the page).
type Renderer struct {
	screenWidth  int
	screenHeight int

	solid *shader.Program
	image *shader.Program

	solidVAO, solidVBO uint32
	imageVAO, imageVBO uint32

	solidVertices []float32
	images        []imageQuad

	text   *TextRasterizer
	labels map[labelKey]labelTexture

	pageTex  uint32
	pageKey  string
	pageSize [2]float32
}

// New creates the overlay renderer. It needs a current GL context.
func New(width, height int, text *TextRasterizer) (*Renderer, error) {
	r := &Renderer{
		screenWidth:   width,
		screenHeight:  height,
		solidVertices: make([]float32, 0, 1024),
		text:          text,
		labels:        make(map[labelKey]labelTexture),
	}

	var err error
	r.solid, err = shader.NewProgram(solidVertexShader, solidFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("create solid shader: %w", err)
	}
	r.image, err = shader.NewProgram(imageVertexShader, imageFragmentShader)
	if err != nil {
		r.solid.Delete()
		return nil, fmt.Errorf("create image shader: %w", err)
	}

	r.solidVAO, r.solidVBO = createBuffers([]int32{2, 4})
	r.imageVAO, r.imageVBO = createBuffers([]int32{2, 2})

	return r, nil
}

// createBuffers creates a VAO/VBO pair with tightly packed float
// attributes of the given sizes at locations 0, 1, ...
func createBuffers(sizes []int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	var stride int32
	for _, s := range sizes {
		stride += s * 4
	}
	var offset uintptr
	for i, s := range sizes {
		gl.VertexAttribPointerWithOffset(uint32(i), s, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(uint32(i))
		offset += uintptr(s * 4)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// Size returns the current screen dimensions.
func (r *Renderer) Size() (int, int) {
	return r.screenWidth, r.screenHeight
}

// Begin starts a new overlay frame.
func (r *Renderer) Begin() {
	r.solidVertices = r.solidVertices[:0]
	r.images = r.images[:0]
}

// End draws everything queued since Begin.
func (r *Renderer) End() {
	var prevBlend, prevDepth, prevCull int32
	gl.GetIntegerv(gl.BLEND, &prevBlend)
	gl.GetIntegerv(gl.DEPTH_TEST, &prevDepth)
	gl.GetIntegerv(gl.CULL_FACE, &prevCull)

	gl.Enable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := mgl32.Ortho(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)

	if len(r.solidVertices) > 0 {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		r.solid.Use()
		r.solid.SetMat4("uProjection", proj)

		gl.BindVertexArray(r.solidVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.solidVertices)*4, unsafe.Pointer(&r.solidVertices[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.solidVertices)/solidStride))
	}

	if len(r.images) > 0 {
		gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
		r.image.Use()
		r.image.SetMat4("uProjection", proj)
		r.image.SetInt("uTexture", 0)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindVertexArray(r.imageVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.imageVBO)
		for i := range r.images {
			q := &r.images[i]
			r.image.SetFloat("uOpacity", q.opacity)
			gl.BindTexture(gl.TEXTURE_2D, q.tex)
			gl.BufferData(gl.ARRAY_BUFFER, len(q.verts)*4, unsafe.Pointer(&q.verts[0]), gl.STREAM_DRAW)
			gl.DrawArrays(gl.TRIANGLES, 0, 6)
		}
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
	if prevDepth == gl.TRUE {
		gl.Enable(gl.DEPTH_TEST)
	}
	if prevCull == gl.TRUE {
		gl.Enable(gl.CULL_FACE)
	}
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	r.clearLabels()
	texture.Delete(r.pageTex)
	r.pageTex = 0
	if r.solidVAO != 0 {
		gl.DeleteVertexArrays(1, &r.solidVAO)
		gl.DeleteBuffers(1, &r.solidVBO)
	}
	if r.imageVAO != 0 {
		gl.DeleteVertexArrays(1, &r.imageVAO)
		gl.DeleteBuffers(1, &r.imageVBO)
	}
	r.solid.Delete()
	r.image.Delete()
}

func (r *Renderer) clearLabels() {
	for k, l := range r.labels {
		texture.Delete(l.id)
		delete(r.labels, k)
	}
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(rect Rect, c Color) {
	x, y, w, h := rect.X, rect.Y, rect.W, rect.H
	r.solidVertices = append(r.solidVertices,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y+h, c.R, c.G, c.B, c.A,
	)
}

// DrawRectOutline draws a rectangle outline.
func (r *Renderer) DrawRectOutline(rect Rect, thickness float32, c Color) {
	x, y, w, h := rect.X, rect.Y, rect.W, rect.H
	r.DrawRect(Rect{x, y, w, thickness}, c)
	r.DrawRect(Rect{x, y + h - thickness, w, thickness}, c)
	r.DrawRect(Rect{x, y + thickness, thickness, h - thickness*2}, c)
	r.DrawRect(Rect{x + w - thickness, y + thickness, thickness, h - thickness*2}, c)
}

// DrawImage draws a texture region. u/v are normalized with v=0 at the
// top row of the image.
func (r *Renderer) DrawImage(tex uint32, rect Rect, u0, v0, u1, v1, opacity float32) {
	if tex == 0 || rect.Empty() {
		return
	}
	x, y, w, h := rect.X, rect.Y, rect.W, rect.H
	r.images = append(r.images, imageQuad{
		tex:     tex,
		opacity: opacity,
		verts: [6 * imageStride]float32{
			x, y, u0, v0,
			x + w, y, u1, v0,
			x + w, y + h, u1, v1,
			x, y, u0, v0,
			x + w, y + h, u1, v1,
			x, y + h, u0, v1,
		},
	})
}

// label returns a cached texture for text, rasterizing it on first use.
func (r *Renderer) label(text string, bold bool, c Color) labelTexture {
	key := labelKey{text, bold, c}
	if l, ok := r.labels[key]; ok {
		return l
	}
	img := r.text.RenderLabel(text, bold, c)
	l := labelTexture{
		id: texture.Upload(img, texture.Options{}),
		w:  float32(img.Bounds().Dx()),
		h:  float32(img.Bounds().Dy()),
	}
	r.labels[key] = l
	return l
}

// DrawLabel draws text vertically centred in rect, left-aligned.
func (r *Renderer) DrawLabel(rect Rect, text string, bold bool, c Color) {
	if text == "" {
		return
	}
	l := r.label(text, bold, c)
	y := rect.Y + (rect.H-l.h)/2
	r.DrawImage(l.id, Rect{rect.X, y, l.w, l.h}, 0, 0, 1, 1, 1)
}

// setPage uploads the panel page when it changed since the last frame.
func (r *Renderer) setPage(key string, img *image.RGBA) {
	if key == r.pageKey {
		return
	}
	texture.Delete(r.pageTex)
	r.pageTex = 0
	r.pageKey = key
	if img == nil {
		return
	}
	r.pageTex = texture.Upload(img, texture.Options{})
	r.pageSize = [2]float32{float32(img.Bounds().Dx()), float32(img.Bounds().Dy())}
}

// DrawOverlay queues the chrome and the content panel for one frame.
func (r *Renderer) DrawOverlay(l Layout, view ViewState, panel *Panel) {
	if l.ChromeVisible {
		r.DrawRect(l.Chrome, Color{0, 0, 0, 0.18})
		r.DrawLabel(l.Title, view.Title, true, ColorChromeText)
		for _, lb := range l.Links {
			c := ColorChromeText
			if lb.Active {
				c = ColorLinkActive
				line := 2 * l.Scale
				r.DrawRect(Rect{lb.Rect.X, lb.Rect.Y + lb.Rect.H*0.72, lb.Rect.W, line}, c)
			}
			r.DrawLabel(lb.Rect, lb.Label, false, c)
		}
	}

	if !l.PanelVisible {
		return
	}

	r.DrawRect(l.Panel, ColorPanelBg)
	r.DrawRectOutline(l.Panel, 1, ColorPanelBorder)

	r.DrawRect(l.Expand, ColorButton)
	glyph := "+"
	if view.Overlay.Mode == overlay.Expanded {
		glyph = "-"
	}
	lw := r.text.LabelWidth(glyph, true) * l.Scale
	r.DrawLabel(Rect{l.Expand.X + (l.Expand.W-lw)/2, l.Expand.Y, lw, l.Expand.H}, glyph, true, ColorText)

	if panel == nil || panel.Page() == nil {
		r.setPage("", nil)
		return
	}
	r.setPage(panel.Key(), panel.Page().Image)

	pw, ph := r.pageSize[0], r.pageSize[1]
	visible := min(l.Content.H, ph-panel.Offset())
	if visible <= 0 || pw <= 0 {
		return
	}
	w := min(l.Content.W, pw)
	r.DrawImage(r.pageTex,
		Rect{l.Content.X, l.Content.Y, w, visible},
		0, panel.Offset()/ph, w/pw, (panel.Offset()+visible)/ph, 1)

	if maxOff := panel.MaxOffset(); maxOff > 0 {
		track := Rect{l.Panel.X + l.Panel.W - 6*l.Scale, l.Content.Y, 3 * l.Scale, l.Content.H}
		thumbH := max(track.H*l.Content.H/ph, 12*l.Scale)
		thumbY := track.Y + (track.H-thumbH)*panel.Offset()/maxOff
		r.DrawRect(Rect{track.X, thumbY, track.W, thumbH}, ColorTextDim.WithAlpha(0.4))
	}
}
