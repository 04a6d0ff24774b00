// Package export renders the item collection into shareable formats.
package export

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"sketchboard/internal/item"
)

// World units per millimetre on the page.
const pdfScale = 3

// PDF writes the items onto a single A4 page. Items arrive newest
// first and are drawn back to front so overlaps match the screen.
func PDF(w io.Writer, items []item.Item) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetFont("Helvetica", "", 12)

	for i := len(items) - 1; i >= 0; i-- {
		if err := drawItem(p, items[i]); err != nil {
			return fmt.Errorf("export %s item %s: %w", items[i].Kind(), items[i].ID(), err)
		}
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func drawItem(p *gofpdf.Fpdf, it item.Item) error {
	switch v := it.(type) {
	case *item.Rect:
		style := applyShapeStyle(p, v.Options)
		p.Rect(mm(v.X), mm(v.Y), mm(v.Width), mm(v.Height), style)

	case *item.Circle:
		style := applyShapeStyle(p, v.Options)
		p.Circle(mm(v.X), mm(v.Y), mm(v.Diameter/2), style)

	case *item.Line:
		applyShapeStyle(p, v.Options)
		p.Line(mm(v.X1), mm(v.Y1), mm(v.X2), mm(v.Y2))

	case *item.Stroke:
		if v.Kind() == item.KindEraser {
			// An eraser stroke repaints the background; on paper there is
			// nothing to repaint.
			return nil
		}
		r, g, b := rgbOf(item.ParseColor(v.Options.Color))
		p.SetDrawColor(r, g, b)
		p.SetLineWidth(float64(v.Options.Size) / pdfScale)
		p.SetLineCapStyle("round")
		for i := 1; i < len(v.Points); i++ {
			p.Line(mm(v.Points[i-1].X), mm(v.Points[i-1].Y),
				mm(v.Points[i].X), mm(v.Points[i].Y))
		}

	case *item.Text:
		r, g, b := rgbOf(item.ParseColor(v.Options.FontColor))
		p.SetTextColor(r, g, b)
		p.SetFontSize(float64(v.Options.FontSize))
		// Text() anchors on the baseline; the item anchors on its top.
		p.Text(mm(v.X), mm(v.Y)+float64(v.Options.FontSize)/pdfScale, v.Content)

	case *item.Picture:
		img := v.Image()
		if img == nil {
			return nil
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return err
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		p.RegisterImageOptionsReader(v.ID(), opts, &buf)
		p.ImageOptions(v.ID(), mm(v.X), mm(v.Y), mm(v.Width), mm(v.Height), false, opts, 0, "")
	}
	return p.Error()
}

// applyShapeStyle sets stroke and fill state and returns the gofpdf
// draw style string for the shape calls that take one.
func applyShapeStyle(p *gofpdf.Fpdf, opts item.ShapeOptions) string {
	r, g, b := rgbOf(item.ParseColor(opts.StrokeColor))
	p.SetDrawColor(r, g, b)
	p.SetLineWidth(float64(opts.StrokeWidth) / pdfScale)

	style := "D"
	if opts.FillColor != "" {
		fill := item.ParseColor(opts.FillColor)
		if _, _, _, a := fill.RGBA(); a > 0 {
			fr, fg, fb := rgbOf(fill)
			p.SetFillColor(fr, fg, fb)
			style = "FD"
		}
	}
	return style
}

func mm(v float32) float64 { return float64(v) / pdfScale }

func rgbOf(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}
