// Package export renders board shapes outside the live view: raster images,
// PNG and PDF files, and the JSON document layout.
package export

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"localboard/internal/engine"
	"localboard/internal/logging"
	"localboard/internal/state"
)

// Options control how shapes are rendered.
type Options struct {
	// Background fills the page before any shape is drawn. Nil means white.
	Background color.Color
	// Images resolves picture sources. Without it pictures render as frames.
	Images ImageLoader
}

var (
	defaultStroke = color.NRGBA{A: 255}
	frameColor    = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
)

// joinSegments approximates the round caps and joins drawn at every vertex.
const joinSegments = 12

// RenderToRaster draws shapes, bottom first, onto a new width×height image.
func RenderToRaster(shapes []state.Shape, width, height int, opts Options) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	r := vector.NewRasterizer(width, height)
	for _, s := range shapes {
		if pic, ok := s.Geom.(state.Picture); ok && opts.Images != nil {
			if drawPicture(dst, pic, s.Rotation, opts.Images) {
				continue
			}
		}
		col := colorOr(s.Stroke, defaultStroke)
		if _, ok := s.Geom.(state.Picture); ok {
			col = frameColor
		}
		r.Reset(width, height)
		hw := math.Max(s.StrokeWidth, 1) / 2
		for _, l := range engine.Outline(s) {
			strokePolyline(r, l, hw)
		}
		r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
	}
	return dst
}

// strokePolyline adds the stroked outline of l to r as quads along each
// segment plus a disc at every vertex.
func strokePolyline(r *vector.Rasterizer, l engine.Polyline, hw float64) {
	pts := l.Points
	if len(pts) == 0 {
		return
	}
	for i := 1; i < len(pts); i++ {
		segmentQuad(r, pts[i-1], pts[i], hw)
	}
	if l.Closed && len(pts) > 2 {
		segmentQuad(r, pts[len(pts)-1], pts[0], hw)
	}
	for _, p := range pts {
		disc(r, p, hw)
	}
}

func segmentQuad(r *vector.Rasterizer, a, b state.Point, hw float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	fillPolygon(r, []state.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	})
}

func disc(r *vector.Rasterizer, c state.Point, radius float64) {
	pts := make([]state.Point, joinSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / joinSegments
		pts[i] = state.Point{X: c.X + radius*math.Cos(a), Y: c.Y + radius*math.Sin(a)}
	}
	fillPolygon(r, pts)
}

// fillPolygon adds pts as a closed sub-path with positive orientation. The
// rasterizer accumulates signed coverage, so mixing orientations would punch
// holes where strokes overlap.
func fillPolygon(r *vector.Rasterizer, pts []state.Point) {
	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
}

// drawPicture scales and rotates the picture's pixels into place. It reports
// false when the source cannot be loaded so the caller draws a frame instead.
func drawPicture(dst *image.RGBA, pic state.Picture, rotation float64, load ImageLoader) bool {
	src, err := load(pic.Src)
	if err != nil || src == nil {
		logging.Logger().Warn("[EXPORT] picture source unavailable", "src", pic.Src, "err", err)
		return false
	}
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return false
	}
	sx := pic.Width / float64(sb.Dx())
	sy := pic.Height / float64(sb.Dy())
	sin, cos := math.Sincos(rotation * math.Pi / 180)
	// Maps source pixels to destination: scale, rotate about the picture
	// origin, then translate. The source bounds offset is removed first.
	ox, oy := float64(sb.Min.X), float64(sb.Min.Y)
	m := f64.Aff3{
		cos * sx, -sin * sy, pic.X - cos*sx*ox + sin*sy*oy,
		sin * sx, cos * sy, pic.Y - sin*sx*ox - cos*sy*oy,
	}
	draw.BiLinear.Transform(dst, m, src, sb, draw.Over, nil)
	return true
}
