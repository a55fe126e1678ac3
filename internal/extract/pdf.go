package extract

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/ledongthuc/pdf"
)

// PDFText returns the text of every page, each followed by a newline.
// Pages without extractable text are skipped. Any failure yields "".
func PDFText(path string) string {
	text, err := readPDF(path)
	if err != nil {
		logging.L().Warn().Err(err).Str("path", path).Msg("PDF extraction failed")
		return ""
	}
	logPreview("PDF", path, text)
	return text
}

func readPDF(path string) (text string, err error) {
	// The PDF reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", &Error{Path: path, Message: "malformed PDF", Cause: fmt.Errorf("%v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &Error{Path: path, Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
