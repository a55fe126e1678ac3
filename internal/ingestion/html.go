package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches page chrome that never belongs to a posting.
const noiseSelector = "nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// JobPostingSelectors returns selectors for the posting body on common job
// boards, most specific first.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}

// FromHTML returns the visible text of a job posting page, one block per
// line. It uses the first of JobPostingSelectors that matches and falls
// back to the body.
func FromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var content *goquery.Selection
	for _, selector := range JobPostingSelectors() {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	// Block elements end a line so list items and headings stay apart.
	content.Find("br").ReplaceWithHtml("\n")
	content.Find("p, li, h1, h2, h3, h4, h5, h6, div, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return nonBlankLines(content.Text()), nil
}

func nonBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
