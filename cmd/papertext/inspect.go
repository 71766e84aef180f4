package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/papertext/internal/extract"
	"github.com/pdiddy/papertext/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf>",
	Short: "Print the raw block breakdown of a PDF",
	Long: `Inspect extracts a single PDF and prints its per-page block breakdown
(page, index, kind, text snippet) together with the document metadata.
Useful for tuning the normalizer against a misbehaving paper.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("backend", "fitz", "extraction backend: fitz or pdftotext")
	inspectCmd.Flags().Bool("json", false, "output the full document as JSON")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	backend, _ := cmd.Flags().GetString("backend")
	asJSON, _ := cmd.Flags().GetBool("json")

	extractor, err := extract.New(types.ExtractionBackend(backend))
	if err != nil {
		return err
	}

	doc, err := extractor.Extract(args[0])
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	fmt.Printf("source: %s\n", doc.SourcePath)
	if doc.Meta.Title != "" {
		fmt.Printf("title:  %s\n", doc.Meta.Title)
	}
	if doc.Meta.Author != "" {
		fmt.Printf("author: %s\n", doc.Meta.Author)
	}
	fmt.Printf("pages:  %d\n\n", doc.Meta.Pages)

	for _, page := range doc.Pages {
		for _, block := range page.Blocks {
			fmt.Printf("p%03d/%02d %-9s %s\n", block.Page, block.Index, block.Kind, snippet(block.Text, 70))
		}
	}
	return nil
}

// snippet truncates s to at most n runes for one-line display.
func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
