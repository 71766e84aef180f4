// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize turns raw extracted PDF text into cleaned plain text
// suitable for language-model consumption. All functions are pure and
// deterministic.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Hyphenated line breaks: "exam-\nple" and "exam- ple" join to "example".
	hyphenNewlineRe = regexp.MustCompile(`(\p{L})-\s*\n\s*(\p{L})`)
	hyphenSpaceRe   = regexp.MustCompile(`(\p{L})-\s+(\p{L})`)

	// Words merged during extraction: "wordWord" becomes "word Word".
	mergedWordRe = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)

	// List markers keep their own line with a single space after the marker.
	bulletRe   = regexp.MustCompile(`\s*•\s+`)
	numberedRe = regexp.MustCompile(`\n\s*(\d+\.)\s+`)

	spaceRunRe = regexp.MustCompile(`[ \t]+`)
)

// CleanText repairs common PDF extraction artifacts in a paragraph:
// hyphenated line breaks, words merged across a case boundary, redundant
// whitespace, and mangled list markers.
func CleanText(text string) string {
	text = hyphenNewlineRe.ReplaceAllString(text, "$1$2")
	text = hyphenSpaceRe.ReplaceAllString(text, "$1$2")
	text = mergedWordRe.ReplaceAllString(text, "$1 $2")
	text = bulletRe.ReplaceAllString(text, "\n• ")
	text = numberedRe.ReplaceAllString(text, "\n$1 ")
	text = spaceRunRe.ReplaceAllString(text, " ")
	return trimLines(text)
}

// trimLines trims surrounding whitespace from every line and from the
// text as a whole; no line may end in a space before a newline.
func trimLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// allowedPunct is the punctuation kept by FilterText beyond letters,
// digits, and whitespace.
const allowedPunct = ".,;:!?'\"`()[]{}<>-–—_/\\@#$%^&*+=|~’‘“”…•"

// FilterText applies NFKC folding (ligatures like ﬁ become plain letters)
// and drops every rune outside the allowed set: Latin letters, Greek
// letters (inline math in prose), digits, standard punctuation, and
// whitespace. Runs of spaces left behind by removals are collapsed.
func FilterText(text string) string {
	text = norm.NFKC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if allowedRune(r) {
			b.WriteRune(r)
		}
	}

	out := spaceRunRe.ReplaceAllString(b.String(), " ")
	return trimLines(out)
}

func allowedRune(r rune) bool {
	switch {
	case unicode.Is(unicode.Latin, r):
		return true
	case unicode.Is(unicode.Greek, r):
		return true
	case unicode.IsDigit(r):
		return true
	case unicode.IsSpace(r):
		return true
	default:
		return strings.ContainsRune(allowedPunct, r)
	}
}
