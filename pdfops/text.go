package pdfops

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// PageText is the extracted text of a single page.
type PageText struct {
	Page int
	Text string
}

// ExtractText returns the text of the selected 1-based pages, or of every
// page when pages is nil.
func ExtractText(data []byte, pages []int) ([]PageText, error) {
	path, cleanup, err := stage(data)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("pdfops: opening document: %w", err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	var selected []int
	if pages == nil {
		for i := 1; i <= pageCount; i++ {
			selected = append(selected, i)
		}
	} else {
		selected, err = normalizePages(pages, pageCount)
		if err != nil {
			return nil, err
		}
		if len(selected) == 0 {
			return nil, fmt.Errorf("pdfops: no pages selected")
		}
	}

	out := make([]PageText, 0, len(selected))
	for _, p := range selected {
		text, err := doc.Text(p - 1)
		if err != nil {
			return nil, fmt.Errorf("pdfops: extracting text from page %d: %w", p, err)
		}
		out = append(out, PageText{Page: p, Text: text})
	}
	return out, nil
}
