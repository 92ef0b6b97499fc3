// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp" // register decoder
)

// Decode decodes PNG, JPEG or BMP data. name is only used in errors.
func Decode(data []byte, name string) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// ImageToRGBA converts img to tightly packed RGBA with its origin at 0,0.
// When flipY is set, rows are reversed so row 0 is the bottom, which is
// what glTexImage2D expects.
func ImageToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	if flipY {
		stride := rgba.Stride
		row := make([]byte, stride)
		h := b.Dy()
		for y := 0; y < h/2; y++ {
			top := rgba.Pix[y*stride : (y+1)*stride]
			bot := rgba.Pix[(h-1-y)*stride : (h-y)*stride]
			copy(row, top)
			copy(top, bot)
			copy(bot, row)
		}
	}
	return rgba
}

// Options control sampling of an uploaded texture.
type Options struct {
	Repeat  bool // Wrap instead of clamping
	Mipmaps bool
	Nearest bool // Nearest filtering instead of linear
}

// Upload creates a 2D texture from img and returns its id.
func Upload(img *image.RGBA, opts Options) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	w, h := int32(img.Bounds().Dx()), int32(img.Bounds().Dy())
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	wrap := int32(gl.CLAMP_TO_EDGE)
	if opts.Repeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	minFilter, magFilter := int32(gl.LINEAR), int32(gl.LINEAR)
	if opts.Nearest {
		minFilter, magFilter = gl.NEAREST, gl.NEAREST
	}
	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// UploadFloat creates a single-channel float texture, used for height
// samples. data holds w*h values row by row.
func UploadFloat(data []float32, w, h int) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F, int32(w), int32(h), 0, gl.RED, gl.FLOAT, gl.Ptr(data))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Fallback creates a 1x1 white texture drawn until a real one is ready.
func Fallback() uint32 {
	return Upload(Solid(1, 1, [4]uint8{255, 255, 255, 255}), Options{Repeat: true, Nearest: true})
}

// Solid returns a w x h image filled with c.
func Solid(w, h int, c [4]uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:i+4], c[:])
	}
	return img
}

// Delete releases a texture created by this package.
func Delete(tex uint32) {
	if tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}
