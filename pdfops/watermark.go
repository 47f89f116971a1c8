package pdfops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Position anchors overlay text on a page.
type Position int

const (
	Center Position = iota
	TopLeft
	TopCenter
	TopRight
	BottomLeft
	BottomCenter
	BottomRight
)

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// hex renders the color as a pdfcpu hex color literal.
func (c RGBColor) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// anchor returns the pdfcpu position code for pos plus the offsets that
// inset corner and edge anchors from the page boundary by padding. Offsets
// are in points with y growing upward.
func anchor(pos Position, padding float64) (code string, dx, dy float64) {
	switch pos {
	case TopLeft:
		return "tl", padding, -padding
	case TopCenter:
		return "tc", 0, -padding
	case TopRight:
		return "tr", -padding, -padding
	case BottomLeft:
		return "bl", padding, padding
	case BottomCenter:
		return "bc", 0, padding
	case BottomRight:
		return "br", -padding, padding
	default: // Center
		return "c", 0, 0
	}
}

// escapePercents protects literal percent signs in overlay text from the
// stamping engine, which would otherwise treat them as variable markers.
func escapePercents(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}

// stampText stamps text over the content of every page, styled by the
// pdfcpu watermark description desc, and returns the new document.
func stampText(data []byte, text, desc, op string) ([]byte, error) {
	wm, err := api.TextWatermark(text, desc, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("pdfops: %s: %w", op, err)
	}

	in, cleanup, err := stage(data)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	out := filepath.Join(filepath.Dir(in), "out.pdf")
	if err := api.AddWatermarksFile(in, out, nil, wm, conf()); err != nil {
		return nil, fmt.Errorf("pdfops: %s: %w", op, err)
	}

	result, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("pdfops: reading result: %w", err)
	}
	return result, nil
}

// TextWatermark defines diagonal text stamped over page content.
type TextWatermark struct {
	Text     string
	Position Position // anchor on the page (default: Center)
	FontSize float64  // font size in points (default: 60)
	Color    RGBColor // text color (default: light gray)
	Opacity  float64  // 0.0 to 1.0 (default: 0.3)
	Angle    float64  // rotation in degrees (default: 45)
	Padding  float64  // inset from page edges in points (default: 30)
}

// AddTextWatermark stamps wm on every page and returns the new document.
// The text is set in Helvetica-Bold at its given size, rotated about its
// own midpoint at the anchor.
func AddTextWatermark(data []byte, wm TextWatermark) ([]byte, error) {
	if wm.FontSize == 0 {
		wm.FontSize = 60
	}
	if wm.Opacity == 0 {
		wm.Opacity = 0.3
	}
	if wm.Angle == 0 {
		wm.Angle = 45
	}
	if wm.Color == (RGBColor{}) {
		wm.Color = RGBColor{200, 200, 200}
	}
	if wm.Padding == 0 {
		wm.Padding = 30
	}

	pos, dx, dy := anchor(wm.Position, wm.Padding)
	desc := fmt.Sprintf(
		"fontname:Helvetica-Bold, points:%g, scalefactor:1 abs, rotation:%g, opacity:%g, fillcolor:%s, position:%s, offset:%g %g",
		wm.FontSize, wm.Angle, wm.Opacity, wm.Color.hex(), pos, dx, dy)

	return stampText(data, escapePercents(wm.Text), desc, "watermarking")
}

// PageNumberStyle defines the appearance and placement of page numbers.
// Format supports the {page} and {pages} placeholders.
type PageNumberStyle struct {
	Format   string // default: "Page {page} of {pages}"
	Position Position
	FontSize float64  // font size in points (default: 10)
	Color    RGBColor // text color (default: black)
	Padding  float64  // inset from page edges in points (default: 30)
}

// AddPageNumbers stamps a formatted page number on every page and returns
// the new document.
func AddPageNumbers(data []byte, style PageNumberStyle) ([]byte, error) {
	if style.Format == "" {
		style.Format = "Page {page} of {pages}"
	}
	if style.FontSize == 0 {
		style.FontSize = 10
	}
	if style.Padding == 0 {
		style.Padding = 30
	}

	pos, dx, dy := anchor(style.Position, style.Padding)
	desc := fmt.Sprintf(
		"fontname:Helvetica, points:%g, scalefactor:1 abs, rotation:0, opacity:1, fillcolor:%s, position:%s, offset:%g %g",
		style.FontSize, style.Color.hex(), pos, dx, dy)

	return stampText(data, formatPageNumber(style.Format), desc, "numbering pages")
}

// formatPageNumber translates the {page} and {pages} placeholders into the
// per-page variables the stamping engine substitutes while rendering.
func formatPageNumber(format string) string {
	s := escapePercents(format)
	s = strings.ReplaceAll(s, "{page}", "%p")
	return strings.ReplaceAll(s, "{pages}", "%P")
}
