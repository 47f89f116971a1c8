// Package pdffile reads and writes PDF documents persisted base64-encoded
// on disk.
//
// Stored files hold the standard, unwrapped base64 encoding of the PDF bytes
// rather than the raw binary, so callers of this package only ever see decoded
// PDF bytes. A raw passthrough mode exists for working with conventionally
// stored files.
package pdffile

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

// Encoding selects how PDF bytes are represented on disk.
type Encoding int

const (
	// EncodingBase64 stores PDFs as unwrapped standard base64 text.
	EncodingBase64 Encoding = iota
	// EncodingRaw stores PDFs as raw binary.
	EncodingRaw
)

// ParseEncoding maps an encoding name ("base64" or "raw") to an Encoding.
// The empty string means base64.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "base64":
		return EncodingBase64, nil
	case "raw":
		return EncodingRaw, nil
	}
	return 0, fmt.Errorf("pdffile: unknown encoding %q", s)
}

func (e Encoding) String() string {
	if e == EncodingRaw {
		return "raw"
	}
	return "base64"
}

// Store reads and writes PDF files in a fixed on-disk encoding.
type Store struct {
	encoding Encoding
}

// NewStore returns a store using the given on-disk encoding.
func NewStore(enc Encoding) *Store {
	return &Store{encoding: enc}
}

// Encoding reports the store's on-disk encoding.
func (s *Store) Encoding() Encoding {
	return s.encoding
}

// Read loads the file at path and returns the decoded PDF bytes.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pdffile: reading %s: %w", path, err)
	}
	if s.encoding == EncodingRaw {
		return data, nil
	}
	data = bytes.TrimSpace(data)
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(decoded, data)
	if err != nil {
		return nil, fmt.Errorf("pdffile: decoding %s: %w", path, err)
	}
	return decoded[:n], nil
}

// Write persists the PDF bytes to path in the store's encoding.
func (s *Store) Write(path string, data []byte) error {
	out := data
	if s.encoding == EncodingBase64 {
		out = make([]byte, base64.StdEncoding.EncodedLen(len(data)))
		base64.StdEncoding.Encode(out, data)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("pdffile: writing %s: %w", path, err)
	}
	return nil
}

// Update reads the document at path, applies transform to the decoded bytes,
// and writes the result back to the same path. The file is rewritten only
// after the transform succeeds; on error it is left untouched.
func (s *Store) Update(path string, transform func([]byte) ([]byte, error)) error {
	data, err := s.Read(path)
	if err != nil {
		return err
	}
	out, err := transform(data)
	if err != nil {
		return err
	}
	return s.Write(path, out)
}
