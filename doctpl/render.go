package doctpl

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Layout constants in points.
const (
	pageMargin      = 54
	defaultBodySize = 11
	lineFactor      = 1.45
	defaultSpacer   = 12
)

// headingSizes maps heading levels 1-6 to font sizes in points.
var headingSizes = [...]float64{22, 18, 15, 13, 12, 11}

// Render parses a JSON template and writes the resulting PDF to w.
func Render(w io.Writer, template []byte) error {
	var doc Document
	if err := json.Unmarshal(template, &doc); err != nil {
		return fmt.Errorf("doctpl: parsing template: %w", err)
	}
	return RenderDocument(w, &doc)
}

// RenderDocument renders doc to a PDF written to w. The template must define
// at least one page.
func RenderDocument(w io.Writer, doc *Document) error {
	if len(doc.Pages) == 0 {
		return fmt.Errorf("doctpl: template has no pages")
	}

	r, err := newRenderer(doc)
	if err != nil {
		return err
	}

	for pageIdx, page := range doc.Pages {
		r.pdf.AddPage()
		r.pdf.SetFont("Helvetica", "", r.bodySize)
		for _, el := range page.Elements {
			if err := r.element(el); err != nil {
				return fmt.Errorf("doctpl: page %d: %w", pageIdx+1, err)
			}
		}
	}

	if r.pdf.Err() {
		return fmt.Errorf("doctpl: rendering: %w", r.pdf.Error())
	}
	return r.pdf.Output(w)
}

type renderer struct {
	pdf      *fpdf.Fpdf
	bodySize float64
}

func newRenderer(doc *Document) (*renderer, error) {
	size, err := pageSizeName(doc.PageSize)
	if err != nil {
		return nil, fmt.Errorf("doctpl: %w", err)
	}

	body := doc.FontSize
	if body == 0 {
		body = defaultBodySize
	}

	pdf := fpdf.New("P", "pt", size, "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}
	if doc.Author != "" {
		pdf.SetAuthor(doc.Author, true)
	}
	if doc.Subject != "" {
		pdf.SetSubject(doc.Subject, true)
	}

	return &renderer{pdf: pdf, bodySize: body}, nil
}

func pageSizeName(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "a4":
		return "A4", nil
	case "a3":
		return "A3", nil
	case "a5":
		return "A5", nil
	case "letter":
		return "Letter", nil
	case "legal":
		return "Legal", nil
	}
	return "", fmt.Errorf("unknown page size %q", name)
}

func (r *renderer) element(el Element) error {
	switch el.Type {
	case "heading":
		r.heading(el)
	case "paragraph", "text":
		r.paragraph(el)
	case "list":
		r.list(el)
	case "table":
		return r.table(el)
	case "rule":
		r.rule()
	case "spacer":
		r.spacer(el)
	default:
		return fmt.Errorf("unknown element type %q", el.Type)
	}
	return nil
}

func (r *renderer) heading(el Element) {
	level := el.Level
	if level < 1 {
		level = 1
	}
	if level > len(headingSizes) {
		level = len(headingSizes)
	}
	size := headingSizes[level-1]

	r.pdf.SetFont("Helvetica", "B", size)
	r.pdf.Ln(size * 0.4)
	r.pdf.MultiCell(r.contentWidth(), size*1.25, el.Text, "", align(el.Align), false)
	r.pdf.Ln(size * 0.25)
	r.pdf.SetFont("Helvetica", "", r.bodySize)
}

func (r *renderer) paragraph(el Element) {
	style := ""
	if el.Bold {
		style = "B"
	}
	r.pdf.SetFont("Helvetica", style, r.bodySize)
	r.pdf.MultiCell(r.contentWidth(), r.bodySize*lineFactor, el.Text, "", align(el.Align), false)
	r.pdf.Ln(r.bodySize * 0.6)
	r.pdf.SetFont("Helvetica", "", r.bodySize)
}

func (r *renderer) list(el Element) {
	r.pdf.SetFont("Helvetica", "", r.bodySize)
	lineH := r.bodySize * lineFactor
	lm, _, _, _ := r.pdf.GetMargins()

	for i, item := range el.Items {
		prefix := "• "
		if el.Ordered {
			prefix = fmt.Sprintf("%d. ", i+1)
		}
		r.pdf.SetX(lm + 8)
		r.pdf.MultiCell(r.contentWidth()-8, lineH, prefix+item, "", "L", false)
	}
	r.pdf.Ln(lineH / 2)
}

func (r *renderer) table(el Element) error {
	if len(el.Columns) == 0 {
		return fmt.Errorf("table element requires columns")
	}

	colW := r.contentWidth() / float64(len(el.Columns))
	lineH := r.bodySize * lineFactor * 1.2

	r.pdf.SetFont("Helvetica", "B", r.bodySize)
	r.pdf.SetFillColor(225, 228, 233)
	for _, h := range el.Columns {
		r.pdf.CellFormat(colW, lineH, h, "1", 0, "L", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Helvetica", "", r.bodySize)
	r.pdf.SetFillColor(245, 245, 245)
	fill := false
	for _, row := range el.Rows {
		for i := 0; i < len(el.Columns); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			r.pdf.CellFormat(colW, lineH, cell, "1", 0, "L", fill, 0, "")
		}
		r.pdf.Ln(-1)
		fill = !fill
	}

	r.pdf.Ln(lineH / 2)
	return nil
}

func (r *renderer) rule() {
	r.pdf.Ln(4)
	y := r.pdf.GetY()
	lm, _, rm, _ := r.pdf.GetMargins()
	pageW, _ := r.pdf.GetPageSize()

	r.pdf.SetDrawColor(180, 180, 180)
	r.pdf.Line(lm, y, pageW-rm, y)
	r.pdf.SetDrawColor(0, 0, 0)
	r.pdf.Ln(8)
}

func (r *renderer) spacer(el Element) {
	h := el.Height
	if h == 0 {
		h = defaultSpacer
	}
	r.pdf.Ln(h)
}

func (r *renderer) contentWidth() float64 {
	pageW, _ := r.pdf.GetPageSize()
	lm, _, rm, _ := r.pdf.GetMargins()
	return pageW - lm - rm
}

func align(s string) string {
	switch strings.ToUpper(s) {
	case "C":
		return "C"
	case "R":
		return "R"
	}
	return "L"
}
