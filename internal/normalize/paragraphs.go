// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/papertext/pkg/types"
)

// substantialLen is the minimum block length for the new-paragraph
// heuristic in GroupParagraphs.
const substantialLen = 50

// GroupParagraphs merges raw blocks into paragraphs in reading order.
// Headings stand alone, a page break flushes the running paragraph, and
// narrative blocks merge into the running paragraph unless the block is
// substantial, starts a sentence with an uppercase letter, and the
// previous block ended one. Formula blocks are dropped.
func GroupParagraphs(blocks []types.Block) []string {
	var paragraphs []string
	var current []string
	lastPage := 0

	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	for _, block := range blocks {
		text := strings.TrimSpace(block.Text)
		if text == "" {
			continue
		}
		if IsFormula(text) {
			continue
		}

		// Crossing a page boundary ends the running paragraph.
		if block.Page != lastPage {
			if lastPage != 0 {
				flush()
			}
			lastPage = block.Page
		}

		if block.Kind == types.BlockHeading {
			flush()
			paragraphs = append(paragraphs, text)
			continue
		}

		if len(current) > 0 && startsNewParagraph(text, current[len(current)-1]) {
			flush()
		}
		current = append(current, text)
	}

	flush()
	return paragraphs
}

// startsNewParagraph reports whether text opens a fresh paragraph after
// prev: substantial length, an uppercase opening letter, and a completed
// sentence before it.
func startsNewParagraph(text, prev string) bool {
	if utf8.RuneCountInString(text) <= substantialLen {
		return false
	}
	first, _ := utf8.DecodeRuneInString(text)
	if !unicode.IsUpper(first) {
		return false
	}
	return strings.HasSuffix(prev, ".") ||
		strings.HasSuffix(prev, "!") ||
		strings.HasSuffix(prev, "?")
}

// RenderDocument produces the final cleaned text for one document: a
// "# <filename>" header followed by cleaned paragraphs separated by blank
// lines. Paragraphs that clean down to minLen runes or fewer, or that
// still look like formulas after cleaning, are dropped. The output ends
// with a single newline.
func RenderDocument(doc *types.Document, minLen int) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(filepath.Base(doc.SourcePath))
	b.WriteString("\n")

	for _, para := range GroupParagraphs(doc.Blocks()) {
		cleaned := CleanText(para)
		if cleaned == "" || IsFormula(cleaned) {
			continue
		}
		cleaned = FilterText(cleaned)
		if utf8.RuneCountInString(cleaned) <= minLen {
			continue
		}
		b.WriteString("\n")
		b.WriteString(cleaned)
		b.WriteString("\n")
	}

	return b.String()
}
