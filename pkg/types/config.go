package types

// ExtractionBackend identifies the PDF extraction library.
type ExtractionBackend string

const (
	// BackendFitz extracts text in-process through go-fitz (MuPDF).
	BackendFitz ExtractionBackend = "fitz"

	// BackendPdftotext shells out to the poppler pdftotext binary.
	BackendPdftotext ExtractionBackend = "pdftotext"
)

// ConversionConfig holds settings for a batch conversion run.
type ConversionConfig struct {
	// Backend selects the extraction library: fitz or pdftotext.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// InputPath is a PDF file or a directory of PDFs (default "pdf").
	InputPath string `json:"input_path" yaml:"input_path"`

	// OutputDir receives one .txt file per input (default "text").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Force overwrites existing output files instead of skipping them.
	Force bool `json:"force" yaml:"force"`

	// Sidecar writes a YAML metadata file next to each converted text file.
	Sidecar bool `json:"sidecar" yaml:"sidecar"`

	// MinParagraphLen drops cleaned paragraphs at or below this rune
	// count (default 10).
	MinParagraphLen int `json:"min_paragraph_len" yaml:"min_paragraph_len"`
}

// DefaultConversionConfig returns the conversion defaults used when
// neither flags nor the config file set a value.
func DefaultConversionConfig() ConversionConfig {
	return ConversionConfig{
		Backend:         BackendFitz,
		InputPath:       "pdf",
		OutputDir:       "text",
		MinParagraphLen: 10,
	}
}
