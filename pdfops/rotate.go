package pdfops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// RotatePages rotates the selected 1-based pages clockwise by angle degrees
// and returns the new document plus the number of pages rotated. Valid angles
// are 90, 180, and 270. A nil selection rotates every page.
func RotatePages(data []byte, angle int, pages []int) ([]byte, int, error) {
	if angle != 90 && angle != 180 && angle != 270 {
		return nil, 0, fmt.Errorf("pdfops: rotation angle must be 90, 180, or 270, got %d", angle)
	}

	pageCount, err := CountPages(data)
	if err != nil {
		return nil, 0, err
	}

	rotated := pageCount
	var sel []string
	if pages != nil {
		selected, err := normalizePages(pages, pageCount)
		if err != nil {
			return nil, 0, err
		}
		if len(selected) == 0 {
			return nil, 0, fmt.Errorf("pdfops: no pages selected")
		}
		sel = pageSelection(selected)
		rotated = len(selected)
	}

	in, cleanup, err := stage(data)
	if err != nil {
		return nil, 0, err
	}
	defer cleanup()

	out := filepath.Join(filepath.Dir(in), "out.pdf")
	if err := api.RotateFile(in, out, angle, sel, conf()); err != nil {
		return nil, 0, fmt.Errorf("pdfops: rotating pages: %w", err)
	}

	result, err := os.ReadFile(out)
	if err != nil {
		return nil, 0, fmt.Errorf("pdfops: reading result: %w", err)
	}
	return result, rotated, nil
}
