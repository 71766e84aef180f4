// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"regexp"
	"strings"
)

// formulaRes are the heuristics that mark a block as a mathematical
// formula or equation fragment. Academic PDFs shed equation fragments as
// standalone blocks; they are noise for language-model input.
var formulaRes = []*regexp.Regexp{
	// Variables with operators: "a = b", "x ≤ y".
	regexp.MustCompile(`\b[a-zA-Z]\s*[=<>≤≥≠]`),
	// Numbered equations: "(1)", "(23)".
	regexp.MustCompile(`\([0-9]+\)`),
	// Math symbols and Greek letters.
	regexp.MustCompile(`[∑∏∫∂∇αβγδεθλμπστφψω]`),
	// Math function calls.
	regexp.MustCompile(`\b(exp|log|sin|cos|tan|max|min|argmax|argmin)\s*\(`),
	// Probability notation: "p(x) =".
	regexp.MustCompile(`p\s*\([^)]*\)\s*[=<>]`),
	// Equation references: "Eq. 3".
	regexp.MustCompile(`\bEq\.?\s*[0-9]`),
	// Multinomial functions.
	regexp.MustCompile(`\bmult\s*\(`),
	// Normalization constants.
	regexp.MustCompile(`Z[αβγδε]|Z_`),
	// Distribution notation: "X ∼ ...".
	regexp.MustCompile(`[A-Z][A-Za-z]*\s*[⇠∼]`),
	// Optimization notation.
	regexp.MustCompile(`\b[A-Z][a-z]*\s*=\s*argmax`),
}

// mathCharRe counts characters that only appear in formulas.
var mathCharRe = regexp.MustCompile(`[=<>≤≥≠∑∏∫∂∇αβγδεθλμπστφψω⇠∼]`)

// mathDensityThreshold is the fraction of math characters above which a
// block is treated as a formula even when no pattern matches.
const mathDensityThreshold = 0.1

// IsFormula reports whether text is a mathematical formula or equation
// fragment. Text under 5 runes is never classified as a formula; fragments
// that short are handled by the minimum paragraph length instead.
func IsFormula(text string) bool {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) < 5 {
		return false
	}

	for _, re := range formulaRes {
		if re.MatchString(text) {
			return true
		}
	}

	mathChars := len(mathCharRe.FindAllString(text, -1))
	return float64(mathChars)/float64(len(runes)) > mathDensityThreshold
}
