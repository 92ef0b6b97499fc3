package ui2d

import (
	"testing"
)

func newRasterizer(t *testing.T) *TextRasterizer {
	t.Helper()
	r, err := NewTextRasterizer(16, 1)
	if err != nil {
		t.Fatalf("NewTextRasterizer() error = %v", err)
	}
	return r
}

func TestLabelWidth(t *testing.T) {
	r := newRasterizer(t)

	short := r.LabelWidth("About", false)
	long := r.LabelWidth("About the meadow", false)
	if short <= 0 || long <= short {
		t.Errorf("LabelWidth short=%v long=%v, want 0 < short < long", short, long)
	}
	if bold := r.LabelWidth("About", true); bold < short {
		t.Errorf("bold width %v narrower than regular %v", bold, short)
	}

	hi, err := NewTextRasterizer(16, 2)
	if err != nil {
		t.Fatal(err)
	}
	// Widths are in points, so they barely change with scale.
	if d := hi.LabelWidth("About", false) - short; d > 2 || d < -2 {
		t.Errorf("LabelWidth differs by %v points between scales", d)
	}
}

func TestRenderLabel(t *testing.T) {
	r := newRasterizer(t)
	img := r.RenderLabel("Projects", true, ColorWhite)

	b := img.Bounds()
	if b.Dx() < 10 || b.Dy() < 10 {
		t.Fatalf("label size = %v, want a visible image", b)
	}

	var ink bool
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			ink = true
			break
		}
	}
	if !ink {
		t.Error("label image is fully transparent")
	}
}

func TestRenderPageWraps(t *testing.T) {
	r := newRasterizer(t)
	doc := ParseDocument("<p>" +
		"the quick brown fox jumps over the lazy dog and keeps running across the meadow" +
		"</p>")

	wide := r.RenderPage(doc, 2000, PageStyle{Text: ColorText})
	narrow := r.RenderPage(doc, 120, PageStyle{Text: ColorText})

	if wide.Image.Bounds().Dx() != 2000 {
		t.Errorf("wide width = %d, want 2000", wide.Image.Bounds().Dx())
	}
	if narrow.Height() <= wide.Height() {
		t.Errorf("narrow page height %d not taller than wide %d", narrow.Height(), wide.Height())
	}
}

func TestRenderPageLinks(t *testing.T) {
	r := newRasterizer(t)
	doc := ParseDocument(`<h1>Hi</h1><p>go to <a href="/contact">contact page</a></p>`)

	page := r.RenderPage(doc, 600, PageStyle{Text: ColorText, Link: ColorLink})
	if len(page.Links) != 2 {
		t.Fatalf("got %d link spans, want one per linked word", len(page.Links))
	}

	span := page.Links[0]
	href, ok := page.LinkAt(span.Rect.X+1, span.Rect.Y+1)
	if !ok || href != "/contact" {
		t.Errorf("LinkAt(inside) = %q, %v, want /contact", href, ok)
	}
	if _, ok := page.LinkAt(1, 1); ok {
		t.Error("LinkAt(heading) found a link")
	}
	if page.Links[1].Rect.X <= span.Rect.X {
		t.Error("second linked word not to the right of the first")
	}
}

func TestRenderEmptyPage(t *testing.T) {
	r := newRasterizer(t)
	page := r.RenderPage(Document{}, 300, PageStyle{})
	if page.Height() != 1 {
		t.Errorf("empty page height = %d, want 1", page.Height())
	}
}
