package feed

import (
	"strings"
	"testing"

	"github.com/countywatch/sitegen/app/cfg"
	"github.com/countywatch/sitegen/app/config"
)

func testSiteConfig() *config.SiteConfig {
	cfg.Init(&cfg.Opts{Timezone: "UTC"})

	return &config.SiteConfig{
		Site: config.SiteInfo{
			Title:       "Calver County Watch",
			Description: "Independent county coverage",
			BaseURL:     "https://calverwatch.example.org",
		},
	}
}

func TestRSSGeneratorRun(t *testing.T) {
	site := testSiteConfig()
	generator := NewRSSGenerator(site)

	entries := []Entry{
		{
			ID:        "cn-002",
			Date:      "2026-02-08T09:00:00Z",
			Title:     "Linnartz files for county clerk race",
			Summary:   "Filed candidacy paperwork.",
			Source:    "Calver Ledger",
			SourceURL: "https://ledger.example.com/linnartz-files",
			Category:  "Elections",
		},
		{
			ID:        "cn-001",
			Date:      "2026-01-27T16:30:00Z",
			Title:     "Road levy approved",
			SourceURL: "articles/road-levy-ballot.html",
			Category:  "County Commission",
		},
	}

	rss, err := generator.Run("county-news.json", entries)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(rss, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("RSS should contain XML declaration")
	}
	if !strings.Contains(rss, `<rss version="2.0"`) {
		t.Error("RSS should contain RSS 2.0 declaration")
	}
	if !strings.Contains(rss, "<title>Calver County Watch</title>") {
		t.Error("RSS should contain the site title")
	}
	if !strings.Contains(rss, `<atom:link href="https://calverwatch.example.org/feeds/county-news.xml" rel="self" type="application/rss+xml" />`) {
		t.Error("RSS should contain atom:link self reference")
	}
	if !strings.Contains(rss, `<guid isPermaLink="false">cn-002</guid>`) {
		t.Error("RSS should carry entry ids as guids")
	}
	if !strings.Contains(rss, "<pubDate>Sun, 08 Feb 2026 09:00:00 +0000</pubDate>") {
		t.Error("RSS should contain the entry pubDate")
	}
	if !strings.Contains(rss, "<category>Elections</category>") {
		t.Error("RSS should contain the entry category")
	}

	// Relative article links are resolved against the base URL
	if !strings.Contains(rss, "<link>https://calverwatch.example.org/articles/road-levy-ballot.html</link>") {
		t.Error("RSS should resolve relative source URLs")
	}
	// Absolute links pass through
	if !strings.Contains(rss, "<link>https://ledger.example.com/linnartz-files</link>") {
		t.Error("RSS should keep absolute source URLs")
	}
	// Entries without a summary fall back to a placeholder description
	if !strings.Contains(rss, "<description>No summary available</description>") {
		t.Error("RSS should fall back to a placeholder description")
	}
	// lastBuildDate comes from the newest (first) entry
	if !strings.Contains(rss, "<lastBuildDate>Sun, 08 Feb 2026 09:00:00 +0000</lastBuildDate>") {
		t.Error("RSS lastBuildDate should come from the first entry")
	}
}

func TestRSSGeneratorEscapesContent(t *testing.T) {
	site := testSiteConfig()
	generator := NewRSSGenerator(site)

	entries := []Entry{
		{
			ID:       "x-1",
			Date:     "2026-02-08",
			Title:    "Budget & levy <update>",
			Summary:  `He said "no" & left`,
			Category: "News",
		},
	}

	rss, err := generator.Run("county-news.json", entries)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(rss, "Budget &amp; levy &lt;update&gt;") {
		t.Error("RSS should escape markup in titles")
	}
	if strings.Contains(rss, "<update>") {
		t.Error("Unescaped title markup leaked into RSS")
	}
}

func TestRSSGeneratorEmptyFeed(t *testing.T) {
	site := testSiteConfig()
	generator := NewRSSGenerator(site)

	rss, err := generator.Run("county-news.json", nil)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(rss, "<channel>") || !strings.Contains(rss, "</rss>") {
		t.Error("RSS should be structurally complete even with no entries")
	}
	if strings.Contains(rss, "<item>") {
		t.Error("RSS should contain no items for an empty feed")
	}
}
