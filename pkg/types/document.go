// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// BlockKind hints at the structural role of an extracted block.
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph"
	BlockHeading   BlockKind = "heading"
)

// Block is a unit of text returned by the extraction backend for one page.
type Block struct {
	// Text is the raw extracted content, untouched by normalization.
	Text string `json:"text" yaml:"text"`

	// Page is the 1-indexed page the block was extracted from.
	Page int `json:"page" yaml:"page"`

	// Index is the block's position within its page, starting at 0.
	Index int `json:"index" yaml:"index"`

	// Kind is the backend's structural guess for the block.
	Kind BlockKind `json:"kind" yaml:"kind"`
}

// Page holds the ordered blocks extracted from a single PDF page.
// Pages with no extractable text keep an empty Blocks slice so that
// page numbering stays aligned with the source document.
type Page struct {
	Number int     `json:"number" yaml:"number"`
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// DocumentMeta holds document-level metadata as reported by the
// extraction backend.
type DocumentMeta struct {
	// Title is the title from the PDF metadata dictionary, if present.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Author is the author from the PDF metadata dictionary, if present.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Pages is the page count of the source document.
	Pages int `json:"pages" yaml:"pages"`
}

// Document is one input PDF fully materialized: source path, metadata,
// and the ordered pages of raw blocks. A Document is built per input
// file, normalized, written, and released; nothing is shared across files.
type Document struct {
	// SourcePath is the filesystem path the document was read from.
	SourcePath string `json:"source_path" yaml:"source_path"`

	Meta  DocumentMeta `json:"meta" yaml:"meta"`
	Pages []Page       `json:"pages" yaml:"pages"`
}

// Blocks returns all blocks of the document in reading order.
func (d *Document) Blocks() []Block {
	var out []Block
	for _, p := range d.Pages {
		out = append(out, p.Blocks...)
	}
	return out
}

// Sidecar is the YAML metadata record written next to a converted text
// file when sidecar output is enabled.
type Sidecar struct {
	// Source is the base name of the input PDF.
	Source string `json:"source" yaml:"source"`

	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Pages is the page count of the source document.
	Pages int `json:"pages" yaml:"pages"`

	// Paragraphs is the number of paragraphs in the cleaned output.
	Paragraphs int `json:"paragraphs" yaml:"paragraphs"`

	// ConvertedAt is the UTC conversion timestamp.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`
}
