package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/alanhe421/mcp-pdf-tools/pdfops"
)

func mergePDFsTool() mcp.Tool {
	return mcp.NewTool("merge-pdfs",
		mcp.WithDescription("Merge multiple PDF files into one. The merged file holds every page of the first input, then every page of the second, and so on."),
		mcp.WithArray("pdfPaths",
			mcp.Required(),
			mcp.Description("Paths of the PDF files to merge, in order"),
			mcp.Items(map[string]interface{}{"type": "string"}),
		),
		mcp.WithString("outputPath",
			mcp.Required(),
			mcp.Description("Path for the merged PDF; must not be one of the inputs"),
		),
	)
}

func (t *Toolbox) handleMergePDFs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	paths, err := stringListArg(req, "pdfPaths")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath, err := req.RequireString("outputPath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := t.mergeInto(paths, outputPath); err != nil {
		t.log.WithFields(logrus.Fields{"tool": "merge-pdfs", "error": err.Error()}).Error("tool call failed")
		return mcp.NewToolResultError("Error merging PDFs: " + err.Error()), nil
	}

	t.log.WithFields(logrus.Fields{"tool": "merge-pdfs", "inputs": len(paths), "output": outputPath}).Info("merged documents")
	return mcp.NewToolResultText(fmt.Sprintf("Successfully merged %d PDFs into %s.", len(paths), outputPath)), nil
}

// mergeInto reads every input before writing anything, so a bad input late
// in the list cannot leave a partial result behind.
func (t *Toolbox) mergeInto(paths []string, outputPath string) error {
	if len(paths) == 0 {
		return errors.New("no input files provided")
	}
	for _, p := range paths {
		if p == outputPath {
			return fmt.Errorf("output path %s is also an input", p)
		}
	}

	inputs := make([][]byte, len(paths))
	for i, p := range paths {
		data, err := t.store.Read(p)
		if err != nil {
			return err
		}
		inputs[i] = data
	}

	merged, err := pdfops.Merge(inputs)
	if err != nil {
		return err
	}
	return t.store.Write(outputPath, merged)
}
