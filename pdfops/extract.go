package pdfops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ExtractPages copies the selected 1-based pages, in ascending order, into a
// new document and returns it with the number of pages copied. The source
// document is not modified. Out-of-range numbers reject the whole request
// with a PageRangeError.
func ExtractPages(data []byte, pages []int) ([]byte, int, error) {
	pageCount, err := CountPages(data)
	if err != nil {
		return nil, 0, err
	}

	selected, err := normalizePages(pages, pageCount)
	if err != nil {
		return nil, 0, err
	}
	if len(selected) == 0 {
		return nil, 0, fmt.Errorf("pdfops: no pages selected")
	}

	in, cleanup, err := stage(data)
	if err != nil {
		return nil, 0, err
	}
	defer cleanup()

	out := filepath.Join(filepath.Dir(in), "out.pdf")
	if err := api.CollectFile(in, out, pageSelection(selected), conf()); err != nil {
		return nil, 0, fmt.Errorf("pdfops: extracting pages: %w", err)
	}

	result, err := os.ReadFile(out)
	if err != nil {
		return nil, 0, fmt.Errorf("pdfops: reading result: %w", err)
	}
	return result, len(selected), nil
}
