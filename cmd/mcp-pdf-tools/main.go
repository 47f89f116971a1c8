// Command mcp-pdf-tools is a Model Context Protocol server that lets MCP
// clients such as Claude Desktop read, edit, and assemble PDF files.
//
// The server speaks JSON-RPC over stdio. Stdout carries the protocol, so
// all logging goes to stderr.
//
// # Installation
//
//	go install github.com/alanhe421/mcp-pdf-tools/cmd/mcp-pdf-tools@latest
//
// # Configuration for Claude Desktop
//
//	{
//	  "mcpServers": {
//	    "pdf-tools": {
//	      "command": "mcp-pdf-tools"
//	    }
//	  }
//	}
//
// By default PDF files are stored base64-encoded on disk. Pass
// --encoding=raw to work with ordinary binary PDF files instead.
//
// # Available Tools
//
//   - remove-pdf-pages: delete pages from a PDF in place
//   - add-text-watermark: stamp watermark text across every page
//   - merge-pdfs: concatenate PDFs into a new file
//   - extract-pdf-pages: copy selected pages into a new file
//   - extract-pdf-text: pull the text content out of a PDF
//   - rotate-pdf-pages: rotate pages clockwise
//   - add-page-numbers: stamp page numbers on every page
//   - pdf-info: report page count, size, and page dimensions
//   - compress-pdf: optimize a PDF in place
//   - create-pdf: build a PDF from a JSON document template
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/alanhe421/mcp-pdf-tools/pdffile"
	"github.com/alanhe421/mcp-pdf-tools/tools"
)

var version = "1.0.0"

// CLI holds the command line flags.
type CLI struct {
	Encoding string           `kong:"default='base64',enum='base64,raw',help='How PDF files are stored on disk: base64 text or raw bytes.'"`
	LogLevel string           `kong:"name='log-level',default='info',enum='debug,info,warn,error',help='Minimum level for stderr logs.'"`
	Version  kong.VersionFlag `kong:"short='v',help='Print version information and quit.'"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mcp-pdf-tools"),
		kong.Description("Model Context Protocol server for reading, editing, and assembling PDF files."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cli.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	enc, err := pdffile.ParseEncoding(cli.Encoding)
	if err != nil {
		return err
	}

	s := server.NewMCPServer("mcp-pdf-tools", version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithRecovery(),
	)
	store := pdffile.NewStore(enc)
	tools.NewToolbox(store, log).Register(s)

	log.WithFields(logrus.Fields{"version": version, "encoding": store.Encoding().String()}).Info("PDF MCP Server running on stdio")
	return server.ServeStdio(s)
}
