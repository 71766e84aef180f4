// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"path/filepath"

	"github.com/gen2brain/go-fitz"

	"github.com/pdiddy/papertext/pkg/types"
)

// FitzExtractor extracts text in-process through go-fitz (MuPDF).
// This is the default backend; it needs no external binaries.
type FitzExtractor struct{}

// Extract opens the PDF at pdfPath and returns its pages of raw blocks.
// Pages whose text extraction fails individually yield an empty page so
// that page numbering stays aligned with the source.
func (e *FitzExtractor) Extract(pdfPath string) (*types.Document, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", filepath.Base(pdfPath), err)
	}
	defer doc.Close()

	meta := doc.Metadata()
	numPages := doc.NumPage()

	out := &types.Document{
		SourcePath: pdfPath,
		Meta: types.DocumentMeta{
			Title:  meta["title"],
			Author: meta["author"],
			Pages:  numPages,
		},
		Pages: make([]types.Page, 0, numPages),
	}

	for i := 0; i < numPages; i++ {
		page := types.Page{Number: i + 1}
		text, err := doc.Text(i)
		if err == nil {
			page.Blocks = pageBlocks(text, i+1)
		}
		// A page-level extraction error leaves the page empty; the
		// document as a whole still converts.
		out.Pages = append(out.Pages, page)
	}

	return out, nil
}
