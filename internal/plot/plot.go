// Package plot draws a segment pair and its intersection as a PNG diagram.
//
// The 3D input is projected orthographically onto one of the coordinate
// planes and scaled to fit the image. Shapes are filled with the
// golang.org/x/image/vector rasterizer, which gives anti-aliased edges.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/geom3"
)

// ErrBadPlane is returned by ParsePlane for an unknown plane name.
var ErrBadPlane = errors.New("plot: plane must be xy, xz or yz")

// Plane selects the coordinate plane the diagram is projected onto.
type Plane int

const (
	// PlaneXY drops z.
	PlaneXY Plane = iota
	// PlaneXZ drops y.
	PlaneXZ
	// PlaneYZ drops x.
	PlaneYZ
)

// ParsePlane parses "xy", "xz" or "yz".
func ParsePlane(s string) (Plane, error) {
	switch s {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadPlane, s)
	}
}

// String returns the plane name accepted by ParsePlane.
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return "unknown"
	}
}

func (p Plane) project(v geom3.Vec3) (float64, float64) {
	switch p {
	case PlaneXZ:
		return v.X, v.Z
	case PlaneYZ:
		return v.Y, v.Z
	default:
		return v.X, v.Y
	}
}

// Diagram colors.
var (
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorA     = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	ColorB     = color.RGBA{R: 230, G: 130, B: 20, A: 255}
	ColorHit   = color.RGBA{R: 210, G: 20, B: 30, A: 255}
	// ColorGap marks the point on the second line when the pair is skew.
	ColorGap = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// Options controls the diagram size and projection.
type Options struct {
	Width, Height int
	Margin        float64
	LineWidth     float64
	MarkerRadius  float64
	Plane         Plane

	// SkewTolerance is the largest Result.Gap drawn as a single crossing.
	// A hit with a wider gap also marks the point on the second line.
	SkewTolerance float64
}

// DefaultOptions returns a 512x512 XY diagram.
func DefaultOptions() Options {
	return Options{
		Width:         512,
		Height:        512,
		Margin:        32,
		LineWidth:     3,
		MarkerRadius:  7,
		Plane:         PlaneXY,
		SkewTolerance: 1e-9,
	}
}

// Draw renders segments a and b. When r is a hit the intersection is marked;
// for a skew hit the matching point on b's line is marked too.
func Draw(a, b geom3.Segment, r geom3.Result, o Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	pts := []geom3.Vec3{a.Start, a.End, b.Start, b.End}
	if r.Hit() {
		pts = append(pts, r.Point)
	}
	f := fit(pts, o)

	c := canvas{img: img, ras: vector.NewRasterizer(o.Width, o.Height)}
	c.line(f(a.Start), f(a.End), o.LineWidth, ColorA)
	c.line(f(b.Start), f(b.End), o.LineWidth, ColorB)

	if r.Hit() {
		if r.Skew(o.SkewTolerance) {
			c.diamond(f(b.At(r.T2)), o.MarkerRadius*0.6, ColorGap)
		}
		c.diamond(f(r.Point), o.MarkerRadius, ColorHit)
	}

	geom3.Logger().Debug("plot: diagram drawn",
		"plane", o.Plane.String(), "width", o.Width, "height", o.Height, "hit", r.Hit())
	return img
}

type pixel struct{ x, y float64 }

// fit returns the projection from model space to pixel space that keeps the
// aspect ratio and centers pts inside the margins. Pixel y grows downwards.
func fit(pts []geom3.Vec3, o Options) func(geom3.Vec3) pixel {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		x, y := o.Plane.project(p)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	availW := float64(o.Width) - 2*o.Margin
	availH := float64(o.Height) - 2*o.Margin
	spanX, spanY := maxX-minX, maxY-minY

	scale := math.Min(ratio(availW, spanX), ratio(availH, spanY))
	if math.IsInf(scale, 1) {
		scale = 1
	}

	offX := o.Margin + (availW-spanX*scale)/2
	offY := o.Margin + (availH-spanY*scale)/2
	h := float64(o.Height)

	return func(v geom3.Vec3) pixel {
		x, y := o.Plane.project(v)
		return pixel{
			x: offX + (x-minX)*scale,
			y: h - (offY + (y-minY)*scale),
		}
	}
}

// ratio is avail/span, or +Inf for a zero span so it never limits the scale.
func ratio(avail, span float64) float64 {
	if span == 0 {
		return math.Inf(1)
	}
	return avail / span
}

type canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

func (c *canvas) fill(col color.Color) {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
	c.ras.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
}

// line fills a w-wide quad around p-q. Zero-length lines become a square.
func (c *canvas) line(p, q pixel, w float64, col color.Color) {
	dx, dy := q.x-p.x, q.y-p.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		dx, dy, l = 1, 0, 1
	}
	// Half-width normal and tangent; the tangent caps the ends.
	nx, ny := -dy/l*w/2, dx/l*w/2
	tx, ty := dx/l*w/2, dy/l*w/2

	c.ras.MoveTo(float32(p.x+nx-tx), float32(p.y+ny-ty))
	c.ras.LineTo(float32(q.x+nx+tx), float32(q.y+ny+ty))
	c.ras.LineTo(float32(q.x-nx+tx), float32(q.y-ny+ty))
	c.ras.LineTo(float32(p.x-nx-tx), float32(p.y-ny-ty))
	c.ras.ClosePath()
	c.fill(col)
}

func (c *canvas) diamond(p pixel, r float64, col color.Color) {
	c.ras.MoveTo(float32(p.x), float32(p.y-r))
	c.ras.LineTo(float32(p.x+r), float32(p.y))
	c.ras.LineTo(float32(p.x), float32(p.y+r))
	c.ras.LineTo(float32(p.x-r), float32(p.y))
	c.ras.ClosePath()
	c.fill(col)
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("plot: encode: %w", err)
	}
	return nil
}

// Save writes img as a PNG file.
func Save(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("plot: %w", cerr)
		}
	}()

	return Encode(f, img)
}
