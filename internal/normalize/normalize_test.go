// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "hyphenated line break joins",
			in:   "exam-\nple",
			want: "example",
		},
		{
			name: "hyphen with trailing space joins",
			in:   "ex- tracting text",
			want: "extracting text",
		},
		{
			name: "intact hyphens survive",
			in:   "state-of-the-art results",
			want: "state-of-the-art results",
		},
		{
			name: "merged words split at case boundary",
			in:   "wordWord",
			want: "word Word",
		},
		{
			name: "whitespace runs collapse",
			in:   "hello \t  world",
			want: "hello world",
		},
		{
			name: "bullets keep their own line",
			in:   "Overview: • first item • second item",
			want: "Overview:\n• first item\n• second item",
		},
		{
			name: "numbered list markers normalized",
			in:   "Steps:\n1.   first\n2.   second",
			want: "Steps:\n1. first\n2. second",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  padded text here  ",
			want: "padded text here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestFilterText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "symbol noise removed, Greek and email kept",
			in:   "Alpha β test @email.com ✓",
			want: "Alpha β test @email.com",
		},
		{
			name: "ligatures fold to plain letters",
			in:   "ﬁnding eﬃcient workﬂows",
			want: "finding efficient workflows",
		},
		{
			name: "non-Latin scripts removed",
			in:   "hello 世界 world",
			want: "hello world",
		},
		{
			name: "standard punctuation kept",
			in:   `He said: "wait, (really?)" — 50% sure.`,
			want: `He said: "wait, (really?)" — 50% sure.`,
		},
		{
			name: "dingbats and arrows removed",
			in:   "done ✔ next → step",
			want: "done next step",
		},
		{
			name: "symbol removed at line end leaves no trailing space",
			in:   "Overview:\n• first item ✓\n• second item follows here",
			want: "Overview:\n• first item\n• second item follows here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterText(tt.in))
		})
	}
}

func TestFilterText_AfterCleanText(t *testing.T) {
	got := FilterText(CleanText("Overview: • first item ✓ • second item follows here"))
	assert.Equal(t, "Overview:\n• first item\n• second item follows here", got)
}
