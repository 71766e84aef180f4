// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/papertext/pkg/types"
)

// writeSidecar writes the YAML metadata record for a converted document.
func writeSidecar(doc *types.Document, text, path string) error {
	sc := types.Sidecar{
		Source:      filepath.Base(doc.SourcePath),
		Title:       doc.Meta.Title,
		Author:      doc.Meta.Author,
		Pages:       doc.Meta.Pages,
		Paragraphs:  countParagraphs(text),
		ConvertedAt: time.Now().UTC().Truncate(time.Second),
	}

	data, err := yaml.Marshal(sc)
	if err != nil {
		return fmt.Errorf("encoding sidecar: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing sidecar %s: %w", path, err)
	}
	return nil
}

// countParagraphs counts the non-header paragraphs in rendered output.
func countParagraphs(text string) int {
	n := 0
	for _, chunk := range strings.Split(text, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" || strings.HasPrefix(chunk, "# ") {
			continue
		}
		n++
	}
	return n
}
