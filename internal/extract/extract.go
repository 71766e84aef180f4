// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract reads raw text blocks out of PDF files through
// pluggable backends.
package extract

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pdiddy/papertext/pkg/types"
)

// Extractor reads a PDF and returns its raw text blocks grouped by page.
// Implementations read the file and nothing else; failures (corrupt file,
// unsupported encoding, unreadable format) are returned as wrapped errors.
type Extractor interface {
	Extract(pdfPath string) (*types.Document, error)
}

// New returns the extractor for the named backend.
func New(backend types.ExtractionBackend) (Extractor, error) {
	switch backend {
	case types.BackendFitz:
		return &FitzExtractor{}, nil
	case types.BackendPdftotext:
		return &PopplerExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extraction backend %q (want fitz or pdftotext)", backend)
	}
}

// pageBlocks splits one page's raw text into blocks. Blocks are separated
// by blank lines; single newlines inside a block are line-wrap artifacts
// and collapse to spaces. Page numbers are 1-indexed.
func pageBlocks(text string, pageNum int) []types.Block {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var blocks []types.Block
	for _, chunk := range strings.Split(text, "\n\n") {
		chunk = strings.TrimSpace(strings.ReplaceAll(chunk, "\n", " "))
		if chunk == "" {
			continue
		}
		kind := types.BlockParagraph
		if looksLikeHeading(chunk) {
			kind = types.BlockHeading
		}
		blocks = append(blocks, types.Block{
			Text:  chunk,
			Page:  pageNum,
			Index: len(blocks),
			Kind:  kind,
		})
	}
	return blocks
}

// looksLikeHeading reports whether a block is likely a section heading:
// short, single-line, and either all-uppercase or very short without
// terminal punctuation.
func looksLikeHeading(text string) bool {
	if text == "" || strings.Contains(text, "\n") || len(text) >= 100 {
		return false
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, ",") {
		return false
	}
	if hasLetter(text) && text == strings.ToUpper(text) && len(text) > 3 {
		return true
	}
	return len(text) < 50
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
