package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/alanhe421/mcp-pdf-tools/pdfops"
)

func addTextWatermarkTool() mcp.Tool {
	return mcp.NewTool("add-text-watermark",
		mcp.WithDescription("Add a diagonal text watermark to every page of a PDF file. The file is modified in place."),
		mcp.WithString("watermarkText",
			mcp.Required(),
			mcp.Description("Text to stamp on each page, e.g. 'CONFIDENTIAL' or 'DRAFT'"),
		),
		mcp.WithString("pdfPath",
			mcp.Required(),
			mcp.Description("Path to the PDF file"),
		),
		mcp.WithString("position",
			mcp.Description("Watermark anchor: center, top, bottom, top-left, top-right, bottom-left, or bottom-right"),
			mcp.DefaultString("center"),
		),
	)
}

func (t *Toolbox) handleAddTextWatermark(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("watermarkText")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := req.RequireString("pdfPath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pos := parsePosition(req.GetString("position", "center"))

	err = t.store.Update(path, func(data []byte) ([]byte, error) {
		return pdfops.AddTextWatermark(data, pdfops.TextWatermark{Text: text, Position: pos})
	})
	if err != nil {
		return t.errorResult("add-text-watermark", err), nil
	}

	t.log.WithFields(logrus.Fields{"tool": "add-text-watermark", "path": path}).Info("added watermark")
	return mcp.NewToolResultText("Successfully added text watermark to the PDF."), nil
}

func addPageNumbersTool() mcp.Tool {
	return mcp.NewTool("add-page-numbers",
		mcp.WithDescription("Stamp a page number on every page of a PDF file. The file is modified in place."),
		mcp.WithString("pdfPath",
			mcp.Required(),
			mcp.Description("Path to the PDF file"),
		),
		mcp.WithString("format",
			mcp.Description("Number format; {page} and {pages} are replaced with the page number and page count"),
			mcp.DefaultString("Page {page} of {pages}"),
		),
		mcp.WithString("position",
			mcp.Description("Number anchor: bottom-center, bottom-left, bottom-right, top-center, top-left, top-right, or center"),
			mcp.DefaultString("bottom-center"),
		),
	)
}

func (t *Toolbox) handleAddPageNumbers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("pdfPath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format := req.GetString("format", "")
	pos := parsePosition(req.GetString("position", "bottom-center"))

	err = t.store.Update(path, func(data []byte) ([]byte, error) {
		return pdfops.AddPageNumbers(data, pdfops.PageNumberStyle{Format: format, Position: pos})
	})
	if err != nil {
		return t.errorResult("add-page-numbers", err), nil
	}

	t.log.WithFields(logrus.Fields{"tool": "add-page-numbers", "path": path}).Info("added page numbers")
	return mcp.NewToolResultText("Successfully added page numbers to the PDF."), nil
}
