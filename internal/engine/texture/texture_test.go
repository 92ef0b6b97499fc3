package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 100), G: uint8(y * 80), B: 7, A: 255})
		}
	}
	return img
}

func TestDecodeFormats(t *testing.T) {
	src := testImage()

	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatal(err)
	}

	for name, data := range map[string][]byte{"a.png": pngBuf.Bytes(), "a.bmp": bmpBuf.Bytes()} {
		img, err := Decode(data, name)
		if err != nil {
			t.Errorf("Decode(%s) error = %v", name, err)
			continue
		}
		if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 3 {
			t.Errorf("Decode(%s) bounds = %v, want 2x3", name, img.Bounds())
		}
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("not an image"), "bad.png"); err == nil {
		t.Error("Decode(garbage) returned nil error")
	}
}

func TestImageToRGBA(t *testing.T) {
	src := testImage()

	rgba := ImageToRGBA(src, false)
	if got := rgba.RGBAAt(1, 2); got.R != 100 || got.G != 160 {
		t.Errorf("pixel(1,2) = %v, want R=100 G=160", got)
	}

	flipped := ImageToRGBA(src, true)
	if got := flipped.RGBAAt(1, 0); got.G != 160 {
		t.Errorf("flipped pixel(1,0).G = %d, want 160 (bottom row)", got.G)
	}
	if got := flipped.RGBAAt(0, 1); got.G != 80 {
		t.Errorf("flipped middle row G = %d, want 80", got.G)
	}
}

func TestImageToRGBAOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	src.Set(5, 5, color.RGBA{R: 9, A: 255})

	rgba := ImageToRGBA(src, false)
	if rgba.Bounds().Min != (image.Point{}) {
		t.Errorf("Bounds().Min = %v, want origin", rgba.Bounds().Min)
	}
	if rgba.RGBAAt(0, 0).R != 9 {
		t.Errorf("origin pixel R = %d, want 9", rgba.RGBAAt(0, 0).R)
	}
}

func TestSolid(t *testing.T) {
	img := Solid(3, 2, [4]uint8{1, 2, 3, 4})
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 1 || img.Pix[i+3] != 4 {
			t.Fatalf("pixel %d = %v", i/4, img.Pix[i:i+4])
		}
	}
}
