// Package extract converts resume documents (PDF, DOCX, plain text) into
// flat text.
//
// Extraction failures are not errors for callers of PDFText, DocxText and
// Text: an unreadable document yields an empty string and a log entry.
package extract

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-matcher/internal/logging"
)

const previewLength = 100

// Format identifies a supported document type.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatDocx    Format = "docx"
	FormatText    Format = "text"
	FormatUnknown Format = ""
)

// DetectFormat picks a Format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDocx
	case ".txt", ".text", ".md":
		return FormatText
	default:
		return FormatUnknown
	}
}

// Text extracts text from any supported document, dispatching on the file
// extension. Unsupported extensions yield "".
func Text(path string) string {
	switch DetectFormat(path) {
	case FormatPDF:
		return PDFText(path)
	case FormatDocx:
		return DocxText(path)
	case FormatText:
		data, err := os.ReadFile(path)
		if err != nil {
			logging.L().Warn().Err(err).Str("path", path).Msg("text extraction failed")
			return ""
		}
		return string(data)
	default:
		logging.L().Warn().Str("path", path).Msg("unsupported document format")
		return ""
	}
}

func logPreview(kind, path, text string) {
	logging.L().Debug().
		Str("path", path).
		Int("length", len(text)).
		Str("preview", logging.Preview(text, previewLength)).
		Msgf("extracted text from %s", kind)
}
