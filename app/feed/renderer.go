package feed

import (
	"bytes"
	"html"
)

// Container is an optional render sink: when one is supplied its
// content slot is overwritten with the produced markup. Rendering
// output never depends on container presence.
type Container interface {
	SetContent(markup string)
}

// Renderer turns feed entries into HTML card fragments.
//
// Escaping policy: every entry-supplied text field (title, summary,
// source name) is HTML-escaped before insertion, and sourceUrl is
// escaped for attribute context, so entry content can never introduce
// markup of its own.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Run renders one card per entry in the order given; callers are
// responsible for pre-sorting. Empty input produces the "no recent
// activity" fragment instead. The same markup is returned whether or
// not a container is supplied.
func (r *Renderer) Run(entries []Entry, container Container) string {
	var buf bytes.Buffer

	if len(entries) == 0 {
		buf.WriteString(`<p class="feed-empty">No recent activity.</p>`)
		buf.WriteString("\n")
	} else {
		for _, entry := range entries {
			r.writeCard(&buf, entry)
		}
	}

	markup := buf.String()
	if container != nil {
		container.SetContent(markup)
	}

	return markup
}

func (r *Renderer) writeCard(buf *bytes.Buffer, entry Entry) {
	buf.WriteString(`<article class="feed-card">` + "\n")

	buf.WriteString(`  <h3 class="feed-card-title">`)
	buf.WriteString(html.EscapeString(entry.Title))
	buf.WriteString("</h3>\n")

	if published := entry.PublishedAt(); !published.IsZero() {
		buf.WriteString(`  <time class="feed-card-date" datetime="`)
		buf.WriteString(html.EscapeString(entry.Date))
		buf.WriteString(`">`)
		buf.WriteString(published.Format("January 2, 2006"))
		buf.WriteString("</time>\n")
	}

	if entry.Summary != "" {
		buf.WriteString(`  <p class="feed-card-summary">`)
		buf.WriteString(html.EscapeString(entry.Summary))
		buf.WriteString("</p>\n")
	}

	if entry.Source != "" {
		buf.WriteString(`  <p class="feed-card-source">`)
		if entry.SourceURL != "" {
			buf.WriteString(`<a href="`)
			buf.WriteString(html.EscapeString(entry.SourceURL))
			buf.WriteString(`">`)
			buf.WriteString(html.EscapeString(entry.Source))
			buf.WriteString("</a>")
		} else {
			buf.WriteString(html.EscapeString(entry.Source))
		}
		buf.WriteString("</p>\n")
	}

	buf.WriteString("</article>\n")
}
