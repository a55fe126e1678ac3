package extract

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/nguyenthenguyen/docx"
)

// wordNamespace is the WordprocessingML main namespace.
const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// DocxText returns the non-blank paragraphs of a DOCX document, each
// followed by a newline. Any failure yields "".
func DocxText(path string) string {
	paragraphs, err := DocxParagraphs(path)
	if err != nil {
		logging.L().Warn().Err(err).Str("path", path).Msg("DOCX extraction failed")
		return ""
	}

	var sb strings.Builder
	for _, p := range paragraphs {
		if strings.TrimSpace(p) == "" {
			continue
		}
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	text := sb.String()
	logPreview("DOCX", path, text)
	return text
}

// DocxParagraphs returns the text of every body paragraph in document order,
// blank paragraphs included. Paragraphs inside tables are not returned. Tabs
// and line breaks inside a paragraph are kept as "\t" and "\n".
func DocxParagraphs(path string) ([]string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, &Error{Path: path, Message: "failed to open DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	paragraphs, err := parseParagraphs(doc.Editable().GetContent())
	if err != nil {
		return nil, &Error{Path: path, Message: "failed to decode document XML", Cause: err}
	}
	return paragraphs, nil
}

// parseParagraphs walks document.xml and collects the text of each w:p
// outside a w:tbl. Paragraphs nested in another paragraph (text boxes) are
// folded into the outer one.
func parseParagraphs(content string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var (
		paragraphs []string
		current    strings.Builder
		depth      int
		tables     int
		inText     bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if !isWordElement(el.Name) {
				continue
			}
			if el.Name.Local == "tbl" {
				tables++
			}
			if tables > 0 {
				continue
			}
			switch el.Name.Local {
			case "p":
				if depth == 0 {
					current.Reset()
				}
				depth++
			case "t":
				inText = depth > 0
			case "tab":
				if depth > 0 {
					current.WriteString("\t")
				}
			case "br", "cr":
				if depth > 0 {
					current.WriteString("\n")
				}
			}
		case xml.EndElement:
			if !isWordElement(el.Name) {
				continue
			}
			if el.Name.Local == "tbl" {
				tables--
				continue
			}
			if tables > 0 {
				continue
			}
			switch el.Name.Local {
			case "p":
				if depth == 0 {
					continue
				}
				depth--
				if depth == 0 {
					paragraphs = append(paragraphs, current.String())
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(el)
			}
		}
	}

	return paragraphs, nil
}

func isWordElement(name xml.Name) bool {
	return name.Space == wordNamespace || name.Space == "w"
}
