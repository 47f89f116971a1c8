package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/alanhe421/mcp-pdf-tools/pdfops"
)

func removePagesTool() mcp.Tool {
	return mcp.NewTool("remove-pdf-pages",
		mcp.WithDescription("Remove pages from a PDF file. The file is modified in place."),
		mcp.WithString("pdfPath",
			mcp.Required(),
			mcp.Description("Path to the PDF file"),
		),
		mcp.WithArray("pageNumbers",
			mcp.Required(),
			mcp.Description("Page numbers to remove (1-based)"),
			mcp.Items(map[string]interface{}{"type": "number"}),
		),
	)
}

func (t *Toolbox) handleRemovePages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("pdfPath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pages, err := pageNumbersArg(req, "pageNumbers", true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	removed := 0
	err = t.store.Update(path, func(data []byte) ([]byte, error) {
		out, n, err := pdfops.RemovePages(data, pages)
		removed = n
		return out, err
	})
	if err != nil {
		return t.errorResult("remove-pdf-pages", err), nil
	}

	t.log.WithFields(logrus.Fields{"tool": "remove-pdf-pages", "path": path, "removed": removed}).Info("removed pages")
	return mcp.NewToolResultText(fmt.Sprintf("Successfully removed %d pages from the PDF.", removed)), nil
}

func extractPagesTool() mcp.Tool {
	return mcp.NewTool("extract-pdf-pages",
		mcp.WithDescription("Copy selected pages of a PDF into a new file. The source file is not modified."),
		mcp.WithString("pdfPath",
			mcp.Required(),
			mcp.Description("Path to the source PDF file"),
		),
		mcp.WithArray("pageNumbers",
			mcp.Required(),
			mcp.Description("Page numbers to extract (1-based)"),
			mcp.Items(map[string]interface{}{"type": "number"}),
		),
		mcp.WithString("outputPath",
			mcp.Required(),
			mcp.Description("Path for the new PDF"),
		),
	)
}

func (t *Toolbox) handleExtractPages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("pdfPath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pages, err := pageNumbersArg(req, "pageNumbers", true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath, err := req.RequireString("outputPath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := t.store.Read(path)
	if err != nil {
		return t.errorResult("extract-pdf-pages", err), nil
	}
	out, extracted, err := pdfops.ExtractPages(data, pages)
	if err != nil {
		return t.errorResult("extract-pdf-pages", err), nil
	}
	if err := t.store.Write(outputPath, out); err != nil {
		return t.errorResult("extract-pdf-pages", err), nil
	}

	t.log.WithFields(logrus.Fields{"tool": "extract-pdf-pages", "path": path, "output": outputPath, "extracted": extracted}).Info("extracted pages")
	return mcp.NewToolResultText(fmt.Sprintf("Successfully extracted %d pages into %s.", extracted, outputPath)), nil
}

func rotatePagesTool() mcp.Tool {
	return mcp.NewTool("rotate-pdf-pages",
		mcp.WithDescription("Rotate pages of a PDF file clockwise. The file is modified in place."),
		mcp.WithString("pdfPath",
			mcp.Required(),
			mcp.Description("Path to the PDF file"),
		),
		mcp.WithNumber("angle",
			mcp.Required(),
			mcp.Description("Rotation angle in degrees: 90, 180, or 270"),
		),
		mcp.WithArray("pageNumbers",
			mcp.Description("Page numbers to rotate (1-based). Omit to rotate every page."),
			mcp.Items(map[string]interface{}{"type": "number"}),
		),
	)
}

func (t *Toolbox) handleRotatePages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("pdfPath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	angle, err := intArg(req, "angle")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pages, err := pageNumbersArg(req, "pageNumbers", false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rotated := 0
	err = t.store.Update(path, func(data []byte) ([]byte, error) {
		out, n, err := pdfops.RotatePages(data, angle, pages)
		rotated = n
		return out, err
	})
	if err != nil {
		return t.errorResult("rotate-pdf-pages", err), nil
	}

	t.log.WithFields(logrus.Fields{"tool": "rotate-pdf-pages", "path": path, "angle": angle, "rotated": rotated}).Info("rotated pages")
	return mcp.NewToolResultText(fmt.Sprintf("Successfully rotated %d pages by %d degrees.", rotated, angle)), nil
}
