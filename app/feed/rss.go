package feed

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/countywatch/sitegen/app/cfg"
	"github.com/countywatch/sitegen/app/config"
)

// RSSGenerator produces an RSS 2.0 document from the entries of a feed
// store file. Entries are expected newest first; callers pre-sort.
type RSSGenerator struct {
	site *config.SiteConfig
}

func NewRSSGenerator(site *config.SiteConfig) *RSSGenerator {
	return &RSSGenerator{site: site}
}

func (g *RSSGenerator) Run(feedName string, entries []Entry) (string, error) {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", g.site.Site.Title, 4)
	g.writeElement(&buf, "link", g.site.Site.ResolveURL(""), 4)
	description := g.site.Site.Description
	if description == "" {
		description = fmt.Sprintf("News feed from %s", g.site.Site.Title)
	}
	g.writeElement(&buf, "description", description, 4)

	selfLink := g.site.Site.ResolveURL("feeds/" + rssName(feedName))
	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(selfLink)))

	lastBuildDate := time.Now().In(time.Local)
	if len(entries) > 0 {
		if published := entries[0].PublishedAt(); !published.IsZero() {
			lastBuildDate = published
		}
	}
	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("sitegen/%s", cfg.Get().Version), 4)

	for _, entry := range entries {
		g.writeItem(&buf, entry)
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *RSSGenerator) writeItem(buf *bytes.Buffer, entry Entry) {
	buf.WriteString("    <item>\n")

	buf.WriteString(`      <guid isPermaLink="false">`)
	xml.EscapeText(buf, []byte(entry.ID))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "title", entry.Title, 6)

	if entry.SourceURL != "" {
		g.writeElement(buf, "link", g.site.Site.ResolveURL(entry.SourceURL), 6)
	}

	g.writeElement(buf, "description", cmp.Or(entry.Summary, "No summary available"), 6)

	if published := entry.PublishedAt(); !published.IsZero() {
		g.writeElement(buf, "pubDate", published.Format(time.RFC1123Z), 6)
	}

	g.writeElement(buf, "category", entry.Category, 6)
	g.writeElement(buf, "source", entry.Source, 6)

	buf.WriteString("    </item>\n")
}

func (g *RSSGenerator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

// rssName maps a feed store file name to its published RSS name
// (county-news.json -> county-news.xml).
func rssName(feedName string) string {
	return strings.TrimSuffix(feedName, ".json") + ".xml"
}
