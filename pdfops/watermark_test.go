package pdfops_test

import (
	"strings"
	"testing"

	"github.com/alanhe421/mcp-pdf-tools/pdfops"
)

func TestAddTextWatermark(t *testing.T) {
	data := makeTestPDF(t, 2)

	out, err := pdfops.AddTextWatermark(data, pdfops.TextWatermark{Text: "CONFIDENTIAL"})
	if err != nil {
		t.Fatalf("watermark: %v", err)
	}
	if n := pageCount(t, out); n != 2 {
		t.Errorf("expected 2 pages, got %d", n)
	}

	// The watermark text lands on every page alongside the original content.
	texts, err := pdfops.ExtractText(out, nil)
	if err != nil {
		t.Fatalf("extracting text: %v", err)
	}
	for _, pt := range texts {
		if !strings.Contains(pt.Text, "CONFIDENTIAL") {
			t.Errorf("page %d is missing the watermark", pt.Page)
		}
	}
	if !strings.Contains(texts[0].Text, "Test document page 1") {
		t.Error("watermarking dropped the original page content")
	}
}

func TestAddTextWatermarkPositions(t *testing.T) {
	data := makeTestPDF(t, 1)

	positions := []pdfops.Position{
		pdfops.Center,
		pdfops.TopLeft,
		pdfops.TopCenter,
		pdfops.TopRight,
		pdfops.BottomLeft,
		pdfops.BottomCenter,
		pdfops.BottomRight,
	}
	for _, pos := range positions {
		out, err := pdfops.AddTextWatermark(data, pdfops.TextWatermark{Text: "DRAFT", Position: pos})
		if err != nil {
			t.Fatalf("position %d: %v", pos, err)
		}
		if n := pageCount(t, out); n != 1 {
			t.Errorf("position %d: expected 1 page, got %d", pos, n)
		}
	}
}

func TestAddTextWatermarkCustomStyle(t *testing.T) {
	data := makeTestPDF(t, 1)

	wm := pdfops.TextWatermark{
		Text:     "REVIEW COPY",
		Position: pdfops.TopCenter,
		FontSize: 24,
		Color:    pdfops.RGBColor{R: 255, G: 0, B: 0},
		Opacity:  0.5,
		Angle:    0,
	}
	out, err := pdfops.AddTextWatermark(data, wm)
	if err != nil {
		t.Fatalf("watermark: %v", err)
	}

	texts, err := pdfops.ExtractText(out, nil)
	if err != nil {
		t.Fatalf("extracting text: %v", err)
	}
	if !strings.Contains(texts[0].Text, "REVIEW COPY") {
		t.Error("expected the custom watermark text on the page")
	}
}

func TestAddTextWatermarkLiteralPercent(t *testing.T) {
	data := makeTestPDF(t, 1)

	out, err := pdfops.AddTextWatermark(data, pdfops.TextWatermark{Text: "50% DRAFT"})
	if err != nil {
		t.Fatalf("watermark: %v", err)
	}

	// Percent signs are stamping-engine variable markers and must survive as is.
	texts, err := pdfops.ExtractText(out, nil)
	if err != nil {
		t.Fatalf("extracting text: %v", err)
	}
	if !strings.Contains(texts[0].Text, "50% DRAFT") {
		t.Errorf("expected the percent sign to survive, got %q", texts[0].Text)
	}
}

func TestAddTextWatermarkGarbage(t *testing.T) {
	if _, err := pdfops.AddTextWatermark([]byte("not a pdf"), pdfops.TextWatermark{Text: "X"}); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestAddPageNumbers(t *testing.T) {
	data := makeTestPDF(t, 3)

	out, err := pdfops.AddPageNumbers(data, pdfops.PageNumberStyle{Position: pdfops.BottomCenter})
	if err != nil {
		t.Fatalf("page numbers: %v", err)
	}
	if n := pageCount(t, out); n != 3 {
		t.Errorf("expected 3 pages, got %d", n)
	}

	texts, err := pdfops.ExtractText(out, []int{2})
	if err != nil {
		t.Fatalf("extracting text: %v", err)
	}
	if !strings.Contains(texts[0].Text, "Page 2 of 3") {
		t.Errorf("expected default page number on page 2, got %q", texts[0].Text)
	}
}

func TestAddPageNumbersCustomFormat(t *testing.T) {
	data := makeTestPDF(t, 2)

	style := pdfops.PageNumberStyle{
		Format:   "- {page}/{pages} -",
		Position: pdfops.TopRight,
	}
	out, err := pdfops.AddPageNumbers(data, style)
	if err != nil {
		t.Fatalf("page numbers: %v", err)
	}

	texts, err := pdfops.ExtractText(out, []int{1})
	if err != nil {
		t.Fatalf("extracting text: %v", err)
	}
	if !strings.Contains(texts[0].Text, "- 1/2 -") {
		t.Errorf("expected custom page number on page 1, got %q", texts[0].Text)
	}
}
