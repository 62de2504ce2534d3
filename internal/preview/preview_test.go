package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/cam"
)

var red = color.RGBA{R: 255, A: 255}

func TestCanvas_FillCoversInterior(t *testing.T) {
	sq := cam.Rect(0, 0, 10, 10)
	c := New(sq.Bounds(), 100, 100, 0)
	c.Draw(Layer{Contours: []cam.Contour{sq}, Color: red, Fill: true})

	got := c.Image().RGBAAt(50, 50)
	if got != red {
		t.Errorf("centre pixel = %v, want %v", got, red)
	}
}

func TestCanvas_StrokeLeavesInteriorEmpty(t *testing.T) {
	sq := cam.Rect(0, 0, 10, 10)
	c := New(sq.Bounds(), 100, 100, 10)
	c.Draw(Layer{Contours: []cam.Contour{sq}, Color: red, Width: 2})

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := c.Image().RGBAAt(50, 50); got != white {
		t.Errorf("centre pixel = %v, want white", got)
	}
	// bottom edge of the square maps to y = 90 with Y pointing up
	if got := c.Image().RGBAAt(50, 90); got == white {
		t.Error("bottom edge was not stroked")
	}
}

func TestCanvas_WritePNG(t *testing.T) {
	c := New(cam.Circle(cam.Pt(0, 0), 5).Bounds(), 64, 48, 4)
	c.Draw(Layer{Contours: []cam.Contour{cam.Circle(cam.Pt(0, 0), 5)}, Color: red})
	if err := c.Label("r = 5", color.Black); err != nil {
		t.Fatalf("Label: %v", err)
	}

	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("size = %dx%d, want 64x48", b.Dx(), b.Dy())
	}
}
