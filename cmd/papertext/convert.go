package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/papertext/internal/convert"
	"github.com/pdiddy/papertext/internal/extract"
	"github.com/pdiddy/papertext/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [pdfs...]",
	Short: "Convert PDF files to cleaned plain text",
	Long: `Convert extracts text from PDF files, normalizes it, and writes one
.txt file per input to the output directory. With no arguments, all PDFs
under the input path are processed; explicit PDF paths bypass discovery.

Existing outputs are skipped unless --force is set. A file that fails to
convert is reported and the batch continues.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("input", "", "input PDF file or directory (default \"pdf\")")
	convertCmd.Flags().String("output", "", "output directory for text files (default \"text\")")
	convertCmd.Flags().String("backend", "", "extraction backend: fitz or pdftotext (default \"fitz\")")
	convertCmd.Flags().Bool("force", false, "overwrite existing output files")
	convertCmd.Flags().Bool("metadata", false, "write a YAML metadata sidecar per converted file")
	convertCmd.Flags().Int("min-paragraph", 0, "drop cleaned paragraphs at or below this length (default 10)")

	rootCmd.AddCommand(convertCmd)
}

// conversionConfig merges defaults, the viper config file, and command
// flags, in ascending precedence.
func conversionConfig(cmd *cobra.Command) types.ConversionConfig {
	cfg := types.DefaultConversionConfig()

	if v := viper.GetString("convert.backend"); v != "" {
		cfg.Backend = types.ExtractionBackend(v)
	}
	if v := viper.GetString("convert.input_path"); v != "" {
		cfg.InputPath = v
	}
	if v := viper.GetString("convert.output_dir"); v != "" {
		cfg.OutputDir = v
	}
	if viper.IsSet("convert.force") {
		cfg.Force = viper.GetBool("convert.force")
	}
	if viper.IsSet("convert.sidecar") {
		cfg.Sidecar = viper.GetBool("convert.sidecar")
	}
	if viper.IsSet("convert.min_paragraph_len") {
		cfg.MinParagraphLen = viper.GetInt("convert.min_paragraph_len")
	}

	if v, _ := cmd.Flags().GetString("backend"); v != "" {
		cfg.Backend = types.ExtractionBackend(v)
	}
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.InputPath = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.OutputDir = v
	}
	if cmd.Flags().Changed("force") {
		cfg.Force, _ = cmd.Flags().GetBool("force")
	}
	if cmd.Flags().Changed("metadata") {
		cfg.Sidecar, _ = cmd.Flags().GetBool("metadata")
	}
	if cmd.Flags().Changed("min-paragraph") {
		cfg.MinParagraphLen, _ = cmd.Flags().GetInt("min-paragraph")
	}

	return cfg
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := conversionConfig(cmd)

	extractor, err := extract.New(cfg.Backend)
	if err != nil {
		return err
	}

	pdfs := args
	if len(pdfs) == 0 {
		pdfs, err = convert.DiscoverPDFs(cfg.InputPath)
		if err != nil {
			return err
		}
		if len(pdfs) == 0 {
			return fmt.Errorf("no PDF files found in %s", cfg.InputPath)
		}
	}

	fmt.Fprintf(os.Stdout, "Converting %d PDF file(s) to %s\n\n", len(pdfs), cfg.OutputDir)

	result := convert.ConvertBatch(extractor, pdfs, cfg, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}
