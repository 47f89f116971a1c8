// Package pdfops implements the PDF transformations behind the tool surface:
// page removal, watermarking, merging, extraction, rotation, text extraction,
// and optimization.
//
// All transformations run through pdfcpu except text extraction, which reads
// the document with MuPDF. Functions take and return raw PDF bytes, staging
// through temporary files where the underlying library works on paths. All
// page numbers are 1-based; translation to a library's own numbering happens
// at the point of consumption.
package pdfops

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PageRangeError reports 1-based page numbers outside the valid range of a
// document. Invalid preserves the first-seen order of the offending values.
type PageRangeError struct {
	Invalid   []int
	PageCount int
}

func (e *PageRangeError) Error() string {
	nums := make([]string, len(e.Invalid))
	for i, n := range e.Invalid {
		nums[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("pdfops: invalid page numbers %s for a %d-page document",
		strings.Join(nums, ", "), e.PageCount)
}

// CountPages returns the number of pages in the document.
func CountPages(data []byte) (int, error) {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf())
	if err != nil {
		return 0, fmt.Errorf("pdfops: reading document: %w", err)
	}
	return ctx.PageCount, nil
}

func conf() *model.Configuration {
	return model.NewDefaultConfiguration()
}

// normalizePages validates 1-based page numbers against pageCount and returns
// them deduplicated and sorted ascending. If any number is out of range the
// whole selection is rejected with a PageRangeError naming every offender.
func normalizePages(pages []int, pageCount int) ([]int, error) {
	seen := make(map[int]bool, len(pages))
	var valid, invalid []int
	for _, p := range pages {
		if seen[p] {
			continue
		}
		seen[p] = true
		if p < 1 || p > pageCount {
			invalid = append(invalid, p)
			continue
		}
		valid = append(valid, p)
	}
	if len(invalid) > 0 {
		return nil, &PageRangeError{Invalid: invalid, PageCount: pageCount}
	}
	sort.Ints(valid)
	return valid, nil
}

// pageSelection renders 1-based page numbers as a pdfcpu page selection.
func pageSelection(pages []int) []string {
	sel := make([]string, len(pages))
	for i, p := range pages {
		sel[i] = strconv.Itoa(p)
	}
	return sel
}

// stage writes data to a file inside a fresh temporary directory and returns
// its path together with a cleanup func removing the whole directory.
func stage(data []byte) (string, func(), error) {
	dir, err := os.MkdirTemp("", "pdfops-")
	if err != nil {
		return "", nil, fmt.Errorf("pdfops: creating temp dir: %w", err)
	}
	path := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(path, data, 0600); err != nil {
		os.RemoveAll(dir)
		return "", nil, fmt.Errorf("pdfops: staging document: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }
	return path, cleanup, nil
}
