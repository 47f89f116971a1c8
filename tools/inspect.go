package tools

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/alanhe421/mcp-pdf-tools/pdfops"
)

func pdfInfoTool() mcp.Tool {
	return mcp.NewTool("pdf-info",
		mcp.WithDescription("Report the page count, file size, and page dimensions of a PDF file as JSON."),
		mcp.WithString("pdfPath",
			mcp.Required(),
			mcp.Description("Path to the PDF file"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *Toolbox) handlePDFInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("pdfPath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := t.store.Read(path)
	if err != nil {
		return t.errorResult("pdf-info", err), nil
	}
	info, err := pdfops.Inspect(data)
	if err != nil {
		return t.errorResult("pdf-info", err), nil
	}
	stat, err := os.Stat(path)
	if err != nil {
		return t.errorResult("pdf-info", err), nil
	}

	result, err := resultJSON(map[string]interface{}{
		"path":           path,
		"pageCount":      info.PageCount,
		"fileSize":       stat.Size(),
		"pdfSize":        len(data),
		"pageDimensions": info.Dimensions,
	})
	if err != nil {
		return t.errorResult("pdf-info", err), nil
	}
	return result, nil
}

func extractTextTool() mcp.Tool {
	return mcp.NewTool("extract-pdf-text",
		mcp.WithDescription("Extract the text content of a PDF file, from every page or a selection."),
		mcp.WithString("pdfPath",
			mcp.Required(),
			mcp.Description("Path to the PDF file"),
		),
		mcp.WithArray("pageNumbers",
			mcp.Description("Page numbers to extract text from (1-based). Omit for the whole document."),
			mcp.Items(map[string]interface{}{"type": "number"}),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func (t *Toolbox) handleExtractText(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("pdfPath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	pages, err := pageNumbersArg(req, "pageNumbers", false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := t.store.Read(path)
	if err != nil {
		return t.errorResult("extract-pdf-text", err), nil
	}
	pageTexts, err := pdfops.ExtractText(data, pages)
	if err != nil {
		return t.errorResult("extract-pdf-text", err), nil
	}

	var b strings.Builder
	for _, pt := range pageTexts {
		fmt.Fprintf(&b, "--- Page %d ---\n%s\n\n", pt.Page, pt.Text)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func compressPDFTool() mcp.Tool {
	return mcp.NewTool("compress-pdf",
		mcp.WithDescription("Optimize a PDF file, pruning redundant objects and compressing streams. The file is modified in place."),
		mcp.WithString("pdfPath",
			mcp.Required(),
			mcp.Description("Path to the PDF file"),
		),
	)
}

func (t *Toolbox) handleCompressPDF(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("pdfPath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	before, after := 0, 0
	err = t.store.Update(path, func(data []byte) ([]byte, error) {
		before = len(data)
		out, err := pdfops.Optimize(data)
		if err != nil {
			return nil, err
		}
		after = len(out)
		return out, nil
	})
	if err != nil {
		return t.errorResult("compress-pdf", err), nil
	}

	t.log.WithFields(logrus.Fields{"tool": "compress-pdf", "path": path, "before": before, "after": after}).Info("compressed document")
	return mcp.NewToolResultText(fmt.Sprintf("Successfully compressed the PDF from %d to %d bytes.", before, after)), nil
}
