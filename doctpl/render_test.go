package doctpl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alanhe421/mcp-pdf-tools/doctpl"
	"github.com/alanhe421/mcp-pdf-tools/pdfops"
)

func render(t *testing.T, template string) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := doctpl.Render(&buf, []byte(template)); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.Bytes()
}

func TestRenderDocument(t *testing.T) {
	out := render(t, `{
		"title": "Quarterly Report",
		"author": "Finance",
		"pages": [
			{"elements": [
				{"type": "heading", "text": "Overview", "level": 1},
				{"type": "paragraph", "text": "Revenue grew in every region this quarter."},
				{"type": "list", "items": ["Europe", "Americas", "Asia"]},
				{"type": "rule"},
				{"type": "table", "columns": ["Region", "Revenue"], "rows": [["Europe", "1.2M"], ["Americas", "2.4M"]]}
			]},
			{"elements": [
				{"type": "heading", "text": "Outlook", "level": 2},
				{"type": "paragraph", "text": "Forecasts remain stable."}
			]}
		]
	}`)

	if n, err := pdfops.CountPages(out); err != nil {
		t.Fatalf("counting pages: %v", err)
	} else if n != 2 {
		t.Errorf("expected 2 pages, got %d", n)
	}

	texts, err := pdfops.ExtractText(out, nil)
	if err != nil {
		t.Fatalf("extracting text: %v", err)
	}
	if !strings.Contains(texts[0].Text, "Overview") {
		t.Error("expected the heading on page 1")
	}
	if !strings.Contains(texts[0].Text, "Europe") {
		t.Error("expected the table content on page 1")
	}
	if !strings.Contains(texts[1].Text, "Forecasts remain stable.") {
		t.Error("expected the paragraph on page 2")
	}
}

func TestRenderOrderedList(t *testing.T) {
	out := render(t, `{
		"pages": [
			{"elements": [{"type": "list", "ordered": true, "items": ["first", "second"]}]}
		]
	}`)

	texts, err := pdfops.ExtractText(out, nil)
	if err != nil {
		t.Fatalf("extracting text: %v", err)
	}
	if !strings.Contains(texts[0].Text, "1.") || !strings.Contains(texts[0].Text, "second") {
		t.Errorf("expected numbered items, got %q", texts[0].Text)
	}
}

func TestRenderPageSizes(t *testing.T) {
	out := render(t, `{
		"pageSize": "Letter",
		"pages": [{"elements": [{"type": "paragraph", "text": "hello"}]}]
	}`)

	info, err := pdfops.Inspect(out)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	// US Letter is 612x792 points.
	if w := info.Dimensions[0].Width; w < 611 || w > 613 {
		t.Errorf("expected Letter width around 612pt, got %.2f", w)
	}
}

func TestRenderSpacerAndDefaults(t *testing.T) {
	out := render(t, `{
		"pages": [
			{"elements": [
				{"type": "paragraph", "text": "above"},
				{"type": "spacer", "height": 40},
				{"type": "text", "text": "below"}
			]}
		]
	}`)

	if n, err := pdfops.CountPages(out); err != nil || n != 1 {
		t.Errorf("expected 1 page, got %d (err %v)", n, err)
	}
}

func TestRenderNoPages(t *testing.T) {
	var buf bytes.Buffer
	if err := doctpl.Render(&buf, []byte(`{"title": "empty"}`)); err == nil {
		t.Error("expected error for a template without pages")
	}
}

func TestRenderUnknownElement(t *testing.T) {
	var buf bytes.Buffer
	err := doctpl.Render(&buf, []byte(`{
		"pages": [{"elements": [{"type": "chart"}]}]
	}`))
	if err == nil {
		t.Fatal("expected error for unknown element type")
	}
	if !strings.Contains(err.Error(), "chart") {
		t.Errorf("expected the element type in the error, got %v", err)
	}
}

func TestRenderUnknownPageSize(t *testing.T) {
	var buf bytes.Buffer
	err := doctpl.Render(&buf, []byte(`{
		"pageSize": "tabloid",
		"pages": [{"elements": [{"type": "paragraph", "text": "x"}]}]
	}`))
	if err == nil {
		t.Error("expected error for unknown page size")
	}
}

func TestRenderInvalidJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := doctpl.Render(&buf, []byte(`{"pages": [`)); err == nil {
		t.Error("expected error for malformed template")
	}
}
