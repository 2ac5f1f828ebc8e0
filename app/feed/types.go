package feed

import (
	"time"
)

// Entry is a single record of a feed store file. Entries are immutable
// once published; the generator only ever appends new ones.
type Entry struct {
	ID               string   `json:"id"`
	Date             string   `json:"date"`
	Title            string   `json:"title"`
	Summary          string   `json:"summary"`
	Source           string   `json:"source"`
	SourceURL        string   `json:"sourceUrl,omitempty"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags,omitempty"`
	RelatedCandidate string   `json:"relatedCandidate,omitempty"`
}

// PublishedAt parses the entry date. RFC 3339 timestamps and bare
// YYYY-MM-DD dates are both accepted; anything else sorts as zero time.
func (e Entry) PublishedAt() time.Time {
	if t, err := time.Parse(time.RFC3339, e.Date); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", e.Date); err == nil {
		return t
	}
	return time.Time{}
}

// Document is the page context a feed is rendered for, used to resolve
// which candidate profile the feed belongs to.
type Document struct {
	CandidateSlug string // explicit document-level attribute, wins when set
	Path          string // document location, e.g. "candidates/neal-linnartz.html"
}
