// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/papertext/pkg/types"
)

func block(text string, page int, kind types.BlockKind) types.Block {
	return types.Block{Text: text, Page: page, Kind: kind}
}

func TestGroupParagraphs_HeadingsStandAlone(t *testing.T) {
	blocks := []types.Block{
		block("1 Introduction To The Problem", 1, types.BlockHeading),
		block("This work studies batch conversion of papers.", 1, types.BlockParagraph),
		block("It focuses on cleanup.", 1, types.BlockParagraph),
	}

	paras := GroupParagraphs(blocks)

	require.Len(t, paras, 2)
	assert.Equal(t, "1 Introduction To The Problem", paras[0])
	assert.Equal(t, "This work studies batch conversion of papers. It focuses on cleanup.", paras[1])
}

func TestGroupParagraphs_PageBreakFlushes(t *testing.T) {
	blocks := []types.Block{
		block("Text that ends mid-sentence and continues", 1, types.BlockParagraph),
		block("on the following page without a sentence break.", 2, types.BlockParagraph),
	}

	paras := GroupParagraphs(blocks)

	// A page boundary ends the running paragraph even mid-sentence.
	require.Len(t, paras, 2)
	assert.Equal(t, "Text that ends mid-sentence and continues", paras[0])
}

func TestGroupParagraphs_SentenceBoundaryStartsNewParagraph(t *testing.T) {
	first := "The first paragraph ends with a complete sentence here."
	second := "Clearly a brand new paragraph because it is long and starts uppercase."

	paras := GroupParagraphs([]types.Block{
		block(first, 1, types.BlockParagraph),
		block(second, 1, types.BlockParagraph),
	})

	require.Len(t, paras, 2)
	assert.Equal(t, first, paras[0])
	assert.Equal(t, second, paras[1])
}

func TestGroupParagraphs_ShortContinuationMerges(t *testing.T) {
	paras := GroupParagraphs([]types.Block{
		block("The method was evaluated on three corpora.", 1, types.BlockParagraph),
		block("Results follow below.", 1, types.BlockParagraph),
	})

	require.Len(t, paras, 1)
	assert.Equal(t, "The method was evaluated on three corpora. Results follow below.", paras[0])
}

func TestGroupParagraphs_DropsFormulasAndEmptyBlocks(t *testing.T) {
	paras := GroupParagraphs([]types.Block{
		block("", 1, types.BlockParagraph),
		block("p(x|z) = q(z) exp(w)", 1, types.BlockParagraph),
		block("Only the narrative block should survive grouping.", 1, types.BlockParagraph),
	})

	require.Len(t, paras, 1)
	assert.Equal(t, "Only the narrative block should survive grouping.", paras[0])
}

func TestRenderDocument_Golden(t *testing.T) {
	doc := &types.Document{
		SourcePath: "/papers/raw/sample.pdf",
		Meta:       types.DocumentMeta{Pages: 2},
		Pages: []types.Page{
			{Number: 1, Blocks: []types.Block{
				block("1 INTRODUCTION TO PARSING", 1, types.BlockHeading),
				block("We present a method for ex- tracting text from PDF files.", 1, types.BlockParagraph),
				block("It works well in practice.", 1, types.BlockParagraph),
			}},
			{Number: 2, Blocks: []types.Block{
				block("x = y + z", 2, types.BlockParagraph),
				block("The evaluation shows strong results across all benchmark collections.", 2, types.BlockParagraph),
			}},
		},
	}

	want := `# sample.pdf

1 INTRODUCTION TO PARSING

We present a method for extracting text from PDF files. It works well in practice.

The evaluation shows strong results across all benchmark collections.
`

	assert.Equal(t, want, RenderDocument(doc, 10))
}

func TestRenderDocument_DropsShortParagraphs(t *testing.T) {
	doc := &types.Document{
		SourcePath: "short.pdf",
		Pages: []types.Page{
			{Number: 1, Blocks: []types.Block{
				block("Tiny bit.", 1, types.BlockParagraph),
			}},
		},
	}

	assert.Equal(t, "# short.pdf\n", RenderDocument(doc, 10))
}
