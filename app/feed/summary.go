package feed

import (
	"fmt"
	"log/slog"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

const defaultSummaryLength = 280

// SummaryExtractor derives the plain-text summary of a feed entry from
// an article body fragment.
type SummaryExtractor struct {
	maxLength int
}

func NewSummaryExtractor() *SummaryExtractor {
	return &SummaryExtractor{maxLength: defaultSummaryLength}
}

// Run extracts readable text from the markup fragment and truncates it
// to a summary-sized excerpt on a word boundary.
func (e *SummaryExtractor) Run(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", fmt.Errorf("body fragment is empty")
	}

	page := "<html><body>" + fragment + "</body></html>"
	article, err := readability.FromReader(strings.NewReader(page), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract summary: %w", err)
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	if text == "" {
		return "", fmt.Errorf("no text extracted from body fragment")
	}

	slog.Debug("Summary extracted", "length", len(text))

	return truncate(text, e.maxLength), nil
}

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}

	cut := text[:max]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}
