// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the batch PDF-to-text pipeline: discover
// inputs, extract raw blocks, normalize, and write one text file per PDF.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/papertext/internal/extract"
	"github.com/pdiddy/papertext/internal/normalize"
	"github.com/pdiddy/papertext/pkg/types"
)

// FileStatus is the outcome of converting a single PDF.
type FileStatus string

const (
	StatusConverted FileStatus = "converted"
	StatusSkipped   FileStatus = "skipped"
	StatusFailed    FileStatus = "failed"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// DiscoverPDFs returns the PDFs under path in name order. The path may be
// a single .pdf file or a directory; a missing path is a batch-level error
// reported before any processing.
func DiscoverPDFs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input path %s: %w", path, err)
	}

	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil, fmt.Errorf("input file %s is not a PDF", path)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", path, err)
	}

	var pdfs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		pdfs = append(pdfs, filepath.Join(path, entry.Name()))
	}
	sort.Strings(pdfs)
	return pdfs, nil
}

// ConvertFile converts a single PDF, writing <stem>.txt into the output
// directory. If the output already exists and force is off, the file is
// skipped. Failures are reported as a status, not an error, so that the
// batch can continue.
func ConvertFile(e extract.Extractor, pdfPath string, cfg types.ConversionConfig, w io.Writer) FileStatus {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	txtPath := filepath.Join(cfg.OutputDir, base+".txt")

	if !cfg.Force {
		if _, err := os.Stat(txtPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
			return StatusSkipped
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return StatusFailed
	}

	doc, err := e.Extract(pdfPath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return StatusFailed
	}

	text := normalize.RenderDocument(doc, cfg.MinParagraphLen)

	// The skip check keys on the .txt, so the sidecar goes first: a
	// sidecar failure must not leave a .txt for the next run to skip.
	if cfg.Sidecar {
		if err := writeSidecar(doc, text, filepath.Join(cfg.OutputDir, base+".yaml")); err != nil {
			fmt.Fprintf(w, "failed:  %s (sidecar: %v)\n", base, err)
			return StatusFailed
		}
	}

	if err := os.WriteFile(txtPath, []byte(text), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return StatusFailed
	}

	fmt.Fprintf(w, "converted: %s\n", base)
	return StatusConverted
}

// ConvertBatch processes PDFs sequentially through the extractor,
// printing per-file status to w and returning a summary. A per-file
// failure does not stop the batch.
func ConvertBatch(e extract.Extractor, pdfPaths []string, cfg types.ConversionConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range pdfPaths {
		switch ConvertFile(e, p, cfg, w) {
		case StatusConverted:
			result.Converted++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
