package pdfops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// RemovePages deletes the given 1-based pages and returns the new document
// together with the number of pages removed. Duplicate page numbers count
// once. Out-of-range numbers reject the whole request with a PageRangeError
// before anything is removed.
func RemovePages(data []byte, pages []int) ([]byte, int, error) {
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
	if len(selected) == pageCount {
		return nil, 0, fmt.Errorf("pdfops: removing all %d pages would leave an empty document", pageCount)
	}

	in, cleanup, err := stage(data)
	if err != nil {
		return nil, 0, err
	}
	defer cleanup()

	out := filepath.Join(filepath.Dir(in), "out.pdf")
	if err := api.RemovePagesFile(in, out, pageSelection(selected), conf()); err != nil {
		return nil, 0, fmt.Errorf("pdfops: removing pages: %w", err)
	}

	result, err := os.ReadFile(out)
	if err != nil {
		return nil, 0, fmt.Errorf("pdfops: reading result: %w", err)
	}
	return result, len(selected), nil
}
