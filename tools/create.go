package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/alanhe421/mcp-pdf-tools/doctpl"
)

func createPDFTool() mcp.Tool {
	return mcp.NewTool("create-pdf",
		mcp.WithDescription("Create a PDF document from a JSON template. Pages are built from headings, paragraphs, lists, tables, horizontal rules, and spacers."),
		mcp.WithObject("document",
			mcp.Required(),
			mcp.Description("Document template: optional title, author, subject, pageSize, and fontSize, plus a pages array where each page lists its elements"),
		),
		mcp.WithString("outputPath",
			mcp.Required(),
			mcp.Description("Path for the new PDF"),
		),
	)
}

func (t *Toolbox) handleCreatePDF(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := req.GetArguments()["document"]
	if !ok || raw == nil {
		return mcp.NewToolResultError("document parameter is required"), nil
	}
	outputPath, err := req.RequireString("outputPath")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	template, err := json.Marshal(raw)
	if err != nil {
		return t.errorResult("create-pdf", err), nil
	}

	var buf bytes.Buffer
	if err := doctpl.Render(&buf, template); err != nil {
		return t.errorResult("create-pdf", err), nil
	}
	if err := t.store.Write(outputPath, buf.Bytes()); err != nil {
		return t.errorResult("create-pdf", err), nil
	}

	t.log.WithFields(logrus.Fields{"tool": "create-pdf", "output": outputPath, "bytes": buf.Len()}).Info("created document")
	return mcp.NewToolResultText(fmt.Sprintf("Successfully created %s (%d bytes).", outputPath, buf.Len())), nil
}
