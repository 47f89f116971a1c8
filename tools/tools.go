// Package tools defines the MCP tool surface of the PDF server: tool
// schemas, argument decoding, and the handlers that map tool calls onto
// pdfops transformations and the pdffile store.
//
// Handlers never return a transport error for a failed operation. Anything
// that goes wrong while working on a document is reported to the client as
// an error-text tool result, so the conversation can continue.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/alanhe421/mcp-pdf-tools/pdffile"
	"github.com/alanhe421/mcp-pdf-tools/pdfops"
)

// Toolbox bundles the dependencies shared by every tool handler.
type Toolbox struct {
	store *pdffile.Store
	log   *logrus.Logger
}

// NewToolbox returns a tool set reading and writing PDFs through store and
// logging through log.
func NewToolbox(store *pdffile.Store, log *logrus.Logger) *Toolbox {
	return &Toolbox{store: store, log: log}
}

// Register adds every PDF tool to the MCP server.
func (t *Toolbox) Register(s *server.MCPServer) {
	s.AddTool(removePagesTool(), t.handleRemovePages)
	s.AddTool(addTextWatermarkTool(), t.handleAddTextWatermark)
	s.AddTool(mergePDFsTool(), t.handleMergePDFs)
	s.AddTool(extractPagesTool(), t.handleExtractPages)
	s.AddTool(extractTextTool(), t.handleExtractText)
	s.AddTool(rotatePagesTool(), t.handleRotatePages)
	s.AddTool(addPageNumbersTool(), t.handleAddPageNumbers)
	s.AddTool(pdfInfoTool(), t.handlePDFInfo)
	s.AddTool(compressPDFTool(), t.handleCompressPDF)
	s.AddTool(createPDFTool(), t.handleCreatePDF)
}

// errorResult logs a failed operation and converts it into the error payload
// sent back to the client. Page range violations get the detailed message
// listing the offending numbers; everything else is reported as a processing
// error.
func (t *Toolbox) errorResult(tool string, err error) *mcp.CallToolResult {
	t.log.WithFields(logrus.Fields{"tool": tool, "error": err.Error()}).Error("tool call failed")

	var rangeErr *pdfops.PageRangeError
	if errors.As(err, &rangeErr) {
		return mcp.NewToolResultError(fmt.Sprintf("Error: Invalid page numbers: %s. The PDF has %d pages.",
			joinInts(rangeErr.Invalid), rangeErr.PageCount))
	}
	return mcp.NewToolResultError("Error processing PDF: " + err.Error())
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// pageNumbersArg decodes an array argument of 1-based page numbers. A
// missing optional argument decodes to nil.
func pageNumbersArg(req mcp.CallToolRequest, key string, required bool) ([]int, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		if required {
			return nil, fmt.Errorf("%s parameter is required", key)
		}
		return nil, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an array of page numbers", key)
	}
	pages := make([]int, 0, len(list))
	for _, v := range list {
		switch n := v.(type) {
		case float64:
			pages = append(pages, int(n))
		case int:
			pages = append(pages, n)
		default:
			return nil, fmt.Errorf("%s must contain only numbers", key)
		}
	}
	return pages, nil
}

func stringListArg(req mcp.CallToolRequest, key string) ([]string, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%s parameter is required", key)
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s must be an array of file paths", key)
	}
	paths := make([]string, 0, len(list))
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s must contain only strings", key)
		}
		paths = append(paths, s)
	}
	return paths, nil
}

func intArg(req mcp.CallToolRequest, key string) (int, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%s parameter is required", key)
	}
	switch n := raw.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, fmt.Errorf("%s must be a number", key)
}

// parsePosition maps a position argument onto an anchor. Unrecognized
// values fall back to the center.
func parsePosition(s string) pdfops.Position {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "")) {
	case "topleft":
		return pdfops.TopLeft
	case "top", "topcenter":
		return pdfops.TopCenter
	case "topright":
		return pdfops.TopRight
	case "bottomleft":
		return pdfops.BottomLeft
	case "bottom", "bottomcenter":
		return pdfops.BottomCenter
	case "bottomright":
		return pdfops.BottomRight
	default:
		return pdfops.Center
	}
}

func resultJSON(v interface{}) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(out)), nil
}
