// Package preview renders contours to raster images for inspecting tool
// paths without a CAM viewer.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/geo/r2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/cam"
)

// Layer is a set of contours drawn in one style.
type Layer struct {
	Contours []cam.Contour
	Color    color.Color

	// Fill paints the enclosed area instead of stroking the outline.
	Fill bool

	// Width is the stroke width in pixels. Zero selects 1.
	Width float64
}

// Canvas maps a region of the drawing plane onto an RGBA image with the Y
// axis pointing up.
type Canvas struct {
	img    *image.RGBA
	toPix  cam.Matrix
	scale  float64
	labelY int
}

// New creates a white canvas of the given pixel size showing bounds with
// margin pixels on every side.
func New(bounds r2.Rect, width, height, margin int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	size := bounds.Size()
	avail := r2.Point{X: float64(width - 2*margin), Y: float64(height - 2*margin)}
	s := 1.0
	if size.X > 0 && size.Y > 0 {
		s = math.Min(avail.X/size.X, avail.Y/size.Y)
	}
	m := cam.Translate(float64(margin), float64(height-margin)).
		Multiply(cam.Scale(s, -s)).
		Multiply(cam.Translate(-bounds.X.Lo, -bounds.Y.Lo))
	return &Canvas{img: img, toPix: m, scale: s}
}

// Image returns the rendered image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Draw renders a layer on top of what is already drawn.
func (c *Canvas) Draw(l Layer) {
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	// half a pixel of chord error is invisible
	tol := 0.5 / c.scale
	width := l.Width
	if width <= 0 {
		width = 1
	}
	for _, contour := range l.Contours {
		if len(contour) == 0 {
			continue
		}
		pts := c.polyline(contour, tol)
		if l.Fill {
			fill(z, pts)
		} else {
			stroke(z, pts, contour.IsClosed(cam.GapTolerance), width/2)
		}
	}
	z.Draw(c.img, b, image.NewUniform(l.Color), image.Point{})
}

// polyline returns the contour in pixel space, including the end point of
// open contours.
func (c *Canvas) polyline(contour cam.Contour, tol float64) []cam.Point {
	world := contour.Flatten(tol)
	if !contour.IsClosed(cam.GapTolerance) {
		world = append(world, contour.End())
	}
	pts := make([]cam.Point, len(world))
	for i, p := range world {
		pts[i] = c.toPix.TransformPoint(p)
	}
	return pts
}

func fill(z *vector.Rasterizer, pts []cam.Point) {
	if len(pts) < 3 {
		return
	}
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
}

// stroke adds one quad per polyline edge.
func stroke(z *vector.Rasterizer, pts []cam.Point, closed bool, half float64) {
	n := len(pts)
	edges := n - 1
	if closed {
		edges = n
	}
	for i := 0; i < edges; i++ {
		p, q := pts[i], pts[(i+1)%n]
		d := q.Sub(p)
		if d.Length() == 0 {
			continue
		}
		off := d.Normalize().Perp().Mul(half)
		a, b := p.Add(off), q.Add(off)
		cc, dd := q.Sub(off), p.Sub(off)
		z.MoveTo(float32(a.X), float32(a.Y))
		z.LineTo(float32(b.X), float32(b.Y))
		z.LineTo(float32(cc.X), float32(cc.Y))
		z.LineTo(float32(dd.X), float32(dd.Y))
		z.ClosePath()
	}
}

// Label writes a line of text in the top-left corner. Consecutive labels
// stack downwards.
func (c *Canvas) Label(text string, col color.Color) error {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("preview: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("preview: font face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	c.labelY += face.Metrics().Height.Ceil()
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(4, c.labelY),
	}
	d.DrawString(text)
	return nil
}

// WritePNG encodes the image as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
