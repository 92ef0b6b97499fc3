package ui2d

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// maxPageHeight bounds rasterized page textures.
const maxPageHeight = 8192

type fontStyle int

const (
	styleRegular fontStyle = iota
	styleBold
	styleMono
)

type faceKey struct {
	style fontStyle
	size  float64
}

// TextRasterizer draws labels and documents into RGBA images using the
// Go fonts. It is not safe for concurrent use.
type TextRasterizer struct {
	size  float64 // Base size in points
	scale float64 // Pixels per point
	fonts [3]*opentype.Font
	faces map[faceKey]font.Face
}

// NewTextRasterizer parses the embedded fonts. size is the body text size
// in points, scale the pixels per point of the target.
func NewTextRasterizer(size, scale float64) (*TextRasterizer, error) {
	if size <= 0 {
		size = 16
	}
	if scale <= 0 {
		scale = 1
	}
	t := &TextRasterizer{
		size:  size,
		scale: scale,
		faces: make(map[faceKey]font.Face),
	}
	for i, src := range [][]byte{goregular.TTF, gobold.TTF, gomono.TTF} {
		f, err := opentype.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("parse font %d: %w", i, err)
		}
		t.fonts[i] = f
	}
	return t, nil
}

// Scale returns the pixels per point the rasterizer draws at.
func (t *TextRasterizer) Scale() float64 { return t.scale }

func (t *TextRasterizer) face(style fontStyle, size float64) font.Face {
	key := faceKey{style, size}
	if f, ok := t.faces[key]; ok {
		return f
	}
	f, err := opentype.NewFace(t.fonts[style], &opentype.FaceOptions{
		Size:    size,
		DPI:     72 * t.scale,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Only fails for invalid options, which the constructor rules out.
		panic(err)
	}
	t.faces[key] = f
	return f
}

// LabelWidth returns the advance of text in points. It satisfies Metrics.
func (t *TextRasterizer) LabelWidth(text string, bold bool) float32 {
	style := styleRegular
	if bold {
		style = styleBold
	}
	w := font.MeasureString(t.face(style, t.size), text)
	return fixedToF(w) / float32(t.scale)
}

// RenderLabel draws a single line of text tightly into a new image.
func (t *TextRasterizer) RenderLabel(text string, bold bool, c Color) *image.RGBA {
	style := styleRegular
	if bold {
		style = styleBold
	}
	face := t.face(style, t.size)
	m := face.Metrics()

	w := max(fixedToF(font.MeasureString(face, text)), 1)
	h := max(fixedToF(m.Height), 1)
	img := image.NewRGBA(image.Rect(0, 0, ceil(w), ceil(h)))

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(text)
	return img
}

// PageStyle colours a rendered document.
type PageStyle struct {
	Text Color
	Link Color
	Code Color
}

// LinkSpan is the pixel area of a linked word within a page image.
type LinkSpan struct {
	Rect Rect
	Href string
}

// Page is a rasterized document.
type Page struct {
	Image *image.RGBA
	Links []LinkSpan
}

// Height returns the page height in pixels.
func (p *Page) Height() int {
	return p.Image.Bounds().Dy()
}

// LinkAt returns the href under the page-local point (x, y).
func (p *Page) LinkAt(x, y float32) (string, bool) {
	for _, l := range p.Links {
		if l.Rect.Contains(x, y) {
			return l.Href, true
		}
	}
	return "", false
}

type placedWord struct {
	face  font.Face
	text  string
	x, y  float32 // Baseline origin
	color Color
}

// pageLayout accumulates placed words for one page.
type pageLayout struct {
	t     *TextRasterizer
	style PageStyle
	width float32
	words []placedWord
	links []LinkSpan
	y     float32 // Top of the current line
}

// RenderPage word-wraps doc to width pixels and draws it.
func (t *TextRasterizer) RenderPage(doc Document, width int, style PageStyle) *Page {
	pl := &pageLayout{t: t, style: style, width: float32(max(width, 1))}
	for _, b := range doc.Blocks {
		pl.block(b)
	}

	h := min(max(ceil(pl.y), 1), maxPageHeight)
	img := image.NewRGBA(image.Rect(0, 0, max(width, 1), h))
	for _, w := range pl.words {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(w.color.NRGBA()),
			Face: w.face,
			Dot:  fixed.Point26_6{X: toFixed(w.x), Y: toFixed(w.y)},
		}
		d.DrawString(w.text)
	}
	return &Page{Image: img, Links: pl.links}
}

var headingScale = [...]float64{1, 1.75, 1.4, 1.2, 1.1, 1, 1}

func (pl *pageLayout) block(b Block) {
	size := pl.t.size
	indent := float32(0)

	switch b.Kind {
	case BlockHeading:
		size *= headingScale[min(max(b.Level, 1), 6)]
	case BlockPre:
		size *= 0.9
	case BlockListItem:
		em := float32(size * pl.t.scale)
		indent = em * 1.4
		body := pl.t.face(styleRegular, size)
		pl.words = append(pl.words, placedWord{
			face:  body,
			text:  "•",
			x:     em * 0.4,
			y:     pl.y + fixedToF(body.Metrics().Ascent),
			color: pl.style.Text,
		})
	}

	base := styleRegular
	if b.Kind == BlockHeading {
		base = styleBold
	}
	lineH := fixedToF(pl.t.face(base, size).Metrics().Height) * 1.25
	ascent := fixedToF(pl.t.face(base, size).Metrics().Ascent)

	x := indent
	if b.Kind == BlockPre {
		face := pl.t.face(styleMono, size)
		for i, line := range strings.Split(strings.TrimRight(b.Text(), "\n"), "\n") {
			if i > 0 {
				pl.y += lineH
			}
			pl.words = append(pl.words, placedWord{face, line, 0, pl.y + ascent, pl.style.Code})
		}
		pl.y += lineH * 1.5
		return
	}

	for _, run := range b.Runs {
		st := base
		switch {
		case run.Code:
			st = styleMono
		case run.Bold:
			st = styleBold
		}
		face := pl.t.face(st, size)
		space := fixedToF(font.MeasureString(face, " "))
		c := pl.style.Text
		switch {
		case run.Href != "":
			c = pl.style.Link
		case run.Code:
			c = pl.style.Code
		}

		for i, line := range strings.Split(run.Text, "\n") {
			if i > 0 {
				x = indent
				pl.y += lineH
			}
			if strings.HasPrefix(line, " ") && x > indent {
				x += space
			}
			words := strings.Fields(line)
			for j, word := range words {
				ww := fixedToF(font.MeasureString(face, word))
				if x > indent && x+ww > pl.width {
					x = indent
					pl.y += lineH
				}
				pl.words = append(pl.words, placedWord{face, word, x, pl.y + ascent, c})
				if run.Href != "" {
					pl.links = append(pl.links, LinkSpan{
						Rect: Rect{x, pl.y, ww, lineH},
						Href: run.Href,
					})
				}
				x += ww
				if j < len(words)-1 || strings.HasSuffix(line, " ") {
					x += space
				}
			}
		}
	}
	pl.y += lineH * 1.5
}

func fixedToF(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func ceil(v float32) int {
	i := int(v)
	if float32(i) < v {
		i++
	}
	return i
}
