package feed

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
)

// Importer converts a local RSS/Atom file into feed store entries.
// Nothing is fetched over the network; the input is always a file.
type Importer struct {
	gofeedParser *gofeed.Parser
	store        *Store
}

func NewImporter(store *Store) *Importer {
	return &Importer{
		gofeedParser: gofeed.NewParser(),
		store:        store,
	}
}

// Run parses the RSS/Atom file at path and appends its items to the
// named feed store file. Items whose link is already present in the
// target file are skipped. Returns the number of entries appended.
//
// Category precedence: the defaultCategory argument, then the item's
// first category, then "News" (stored entries must never have an empty
// category).
func (i *Importer) Run(path, feedName, defaultCategory, source string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open feed file: %w", err)
	}
	defer f.Close()

	parsed, err := i.gofeedParser.Parse(f)
	if err != nil {
		return 0, fmt.Errorf("failed to parse feed %s: %w", path, err)
	}

	existing, err := i.store.LoadIfExists(feedName)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, entry := range existing {
		if entry.SourceURL != "" {
			seen[entry.SourceURL] = true
		}
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		link := cmp.Or(item.Link, item.GUID)
		if link != "" && seen[link] {
			slog.Debug("Skipping duplicate item", "link", link)
			continue
		}

		entry := Entry{
			ID:        "imp-" + uuid.NewString()[:8],
			Title:     item.Title,
			Summary:   htmlText(item.Description),
			Source:    cmp.Or(source, parsed.Title),
			SourceURL: link,
			Category:  defaultCategory,
		}

		if entry.Category == "" && len(item.Categories) > 0 {
			entry.Category = item.Categories[0]
		}
		if entry.Category == "" {
			entry.Category = "News"
		}

		if item.PublishedParsed != nil {
			entry.Date = item.PublishedParsed.UTC().Format(time.RFC3339)
		} else {
			entry.Date = time.Now().UTC().Format(time.RFC3339)
		}

		if link != "" {
			seen[link] = true
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return 0, nil
	}

	if err := i.store.Append(feedName, entries...); err != nil {
		return 0, err
	}

	slog.Info("Feed imported", "file", path, "feed", feedName, "appended", len(entries))
	return len(entries), nil
}

// htmlText strips markup from a description, collapsing whitespace.
func htmlText(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
