package export

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"localboard/internal/engine"
	"localboard/internal/logging"
	"localboard/internal/state"
)

// WritePDF writes shapes to w as a single-page PDF whose page matches the
// canvas, one point per canvas pixel.
func WritePDF(w io.Writer, shapes []state.Shape, width, height float64, opts Options) error {
	// "L" would swap the custom size, so the page is always given as portrait.
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	bg := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if opts.Background != nil {
		bg = color.NRGBAModel.Convert(opts.Background).(color.NRGBA)
	}
	p.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	p.Rect(0, 0, width, height, "F")
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for i, s := range shapes {
		if pic, ok := s.Geom.(state.Picture); ok && opts.Images != nil {
			if pdfPicture(p, fmt.Sprintf("picture-%d", i), pic, s.Rotation, opts.Images) {
				continue
			}
		}
		col := colorOr(s.Stroke, defaultStroke)
		if _, ok := s.Geom.(state.Picture); ok {
			col = frameColor
		}
		p.SetDrawColor(int(col.R), int(col.G), int(col.B))
		p.SetLineWidth(s.StrokeWidth)
		for _, l := range engine.Outline(s) {
			pdfPolyline(p, l)
		}
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	logging.Logger().Info("[EXPORT] wrote pdf", "shapes", len(shapes))
	return nil
}

func pdfPolyline(p *gofpdf.Fpdf, l engine.Polyline) {
	if len(l.Points) == 0 {
		return
	}
	p.MoveTo(l.Points[0].X, l.Points[0].Y)
	for _, pt := range l.Points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	if l.Closed {
		p.ClosePath()
	}
	p.DrawPath("D")
}

// pdfPicture embeds the picture as PNG. It reports false when the source
// cannot be loaded or encoded.
func pdfPicture(p *gofpdf.Fpdf, name string, pic state.Picture, rotation float64, load ImageLoader) bool {
	img, err := load(pic.Src)
	if err != nil || img == nil {
		logging.Logger().Warn("[EXPORT] picture source unavailable", "src", pic.Src, "err", err)
		return false
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		logging.Logger().Warn("[EXPORT] picture encode failed", "src", pic.Src, "err", err)
		return false
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader(name, opts, &buf)
	if !p.Ok() {
		logging.Logger().Warn("[EXPORT] picture rejected", "src", pic.Src, "err", p.Error())
		p.ClearError()
		return false
	}
	p.TransformBegin()
	// gofpdf rotates counter-clockwise on a y-up page.
	p.TransformRotate(-rotation, pic.X, pic.Y)
	p.ImageOptions(name, pic.X, pic.Y, pic.Width, pic.Height, false, opts, 0, "")
	p.TransformEnd()
	return true
}
