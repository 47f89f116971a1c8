package pdfops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageDimension is a page's media box size in points.
type PageDimension struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Info summarizes a document's structure.
type Info struct {
	PageCount  int             `json:"pageCount"`
	Dimensions []PageDimension `json:"pageDimensions"`
}

// Inspect returns structural information about the document.
func Inspect(data []byte) (*Info, error) {
	path, cleanup, err := stage(data)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	count, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("pdfops: counting pages: %w", err)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("pdfops: reading page dimensions: %w", err)
	}

	info := &Info{PageCount: count}
	for _, d := range dims {
		info.Dimensions = append(info.Dimensions, PageDimension{Width: d.Width, Height: d.Height})
	}
	return info, nil
}

// Optimize rewrites the document through pdfcpu's optimizer, pruning unused
// objects and compacting resources.
func Optimize(data []byte) ([]byte, error) {
	in, cleanup, err := stage(data)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	out := filepath.Join(filepath.Dir(in), "out.pdf")
	if err := api.OptimizeFile(in, out, conf()); err != nil {
		return nil, fmt.Errorf("pdfops: optimizing: %w", err)
	}

	result, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("pdfops: reading result: %w", err)
	}
	return result, nil
}
