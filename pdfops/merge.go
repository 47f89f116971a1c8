package pdfops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merge concatenates the given documents into one. Inputs are processed
// strictly in order: the result holds every page of the first document, then
// every page of the second, and so on, each keeping its internal page order.
func Merge(inputs [][]byte) ([]byte, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("pdfops: no documents to merge")
	}

	dir, err := os.MkdirTemp("", "pdfops-")
	if err != nil {
		return nil, fmt.Errorf("pdfops: creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	files := make([]string, len(inputs))
	for i, data := range inputs {
		files[i] = filepath.Join(dir, fmt.Sprintf("in-%03d.pdf", i+1))
		if err := os.WriteFile(files[i], data, 0600); err != nil {
			return nil, fmt.Errorf("pdfops: staging document %d: %w", i+1, err)
		}
	}

	out := filepath.Join(dir, "out.pdf")
	if err := api.MergeCreateFile(files, out, false, conf()); err != nil {
		return nil, fmt.Errorf("pdfops: merging: %w", err)
	}

	result, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("pdfops: reading result: %w", err)
	}
	return result, nil
}
