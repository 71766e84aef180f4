// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/papertext/pkg/types"
)

// popplerBinary is the poppler text extraction binary looked up on PATH.
const popplerBinary = "pdftotext"

// PopplerExtractor extracts text by shelling out to the pdftotext binary.
// pdftotext writes form feeds between pages, which Extract uses to keep
// the page grouping.
type PopplerExtractor struct{}

// Extract runs pdftotext on pdfPath and returns its pages of raw blocks.
func (e *PopplerExtractor) Extract(pdfPath string) (*types.Document, error) {
	bin, err := exec.LookPath(popplerBinary)
	if err != nil {
		return nil, fmt.Errorf("pdftotext binary not found on PATH: %w", err)
	}

	var out, stderr bytes.Buffer
	cmd := exec.Command(bin, "-enc", "UTF-8", pdfPath, "-")
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("pdftotext failed for %s: %s: %w", filepath.Base(pdfPath), msg, err)
		}
		return nil, fmt.Errorf("pdftotext failed for %s: %w", filepath.Base(pdfPath), err)
	}

	return splitFormFeeds(pdfPath, out.String()), nil
}

// splitFormFeeds builds a Document from pdftotext output, splitting pages
// on the form-feed separators the binary emits.
func splitFormFeeds(pdfPath, text string) *types.Document {
	// pdftotext terminates the final page with a trailing form feed.
	text = strings.TrimSuffix(text, "\f")
	rawPages := strings.Split(text, "\f")

	doc := &types.Document{
		SourcePath: pdfPath,
		Meta:       types.DocumentMeta{Pages: len(rawPages)},
		Pages:      make([]types.Page, 0, len(rawPages)),
	}
	for i, raw := range rawPages {
		doc.Pages = append(doc.Pages, types.Page{
			Number: i + 1,
			Blocks: pageBlocks(raw, i+1),
		})
	}
	return doc
}
