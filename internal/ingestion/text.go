// Package ingestion loads job postings from text and HTML files and
// normalizes their text before analysis.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	blankLineRun  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and spacing while keeping headings,
// bullets and paragraph breaks. At most one blank line separates blocks.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankLineRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses inner whitespace and keeps leading indentation.
// Markdown headings lose their indentation; bullets keep theirs verbatim.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	body := strings.TrimLeft(line, " \t")
	if body == "" {
		return ""
	}
	indent := len(line) - len(body)

	switch {
	case strings.HasPrefix(body, "#"):
		return body
	case strings.HasPrefix(body, "- "), strings.HasPrefix(body, "* "):
		return strings.Repeat(" ", indent) + body
	default:
		return strings.Repeat(" ", indent) + whitespaceRun.ReplaceAllString(body, " ")
	}
}

// IngestFromFile reads a job posting from a text or HTML file and returns
// its text with metadata. Text files are returned verbatim. HTML is reduced
// to its posting body and cleaned. The metadata hash is always taken over
// the cleaned text, so whitespace-only edits keep the same hash.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text := string(content)
	if !isHTMLFile(path) {
		return text, NewMetadata(CleanText(text), path, FormatText), nil
	}

	body, err := FromHTML(text)
	if err != nil {
		return "", nil, err
	}
	cleanedText := CleanText(body)
	return cleanedText, NewMetadata(cleanedText, path, FormatHTML), nil
}

// Input formats recorded in Metadata.
const (
	FormatText = "text"
	FormatHTML = "html"
)

func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
