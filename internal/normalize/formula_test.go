// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFormula(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"variable with operator", "a = b + c", true},
		{"inequality", "where x ≤ y holds", true},
		{"numbered equation reference", "as defined in (3) above", true},
		{"summation symbol", "∑ over all documents", true},
		{"math function call", "we compute argmax(p) here", true},
		{"probability notation", "p(x|z) = q(z)", true},
		{"equation reference", "see Eq. 4 for the derivation", true},
		{"greek letters", "with α and β fixed", true},
		{"distribution notation", "Z ∼ Normal", true},
		{"high math density", "x+y=z ≠ ∂w", true},
		{"plain narrative text", "The quick brown fox jumps over the lazy dog.", false},
		{"short text never a formula", "a=b", false},
		{"empty string", "", false},
		{"heading text", "3 Experimental Setup", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFormula(tt.in), "input: %q", tt.in)
		})
	}
}
