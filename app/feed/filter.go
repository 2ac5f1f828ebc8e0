package feed

import (
	"path"
	"sort"
	"strings"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// ByCategory returns the entries whose category equals the given one,
// preserving relative order. An empty category or the "all" sentinel
// returns the input unchanged; an unknown category yields an empty
// result, never an error.
func ByCategory(entries []Entry, category string) []Entry {
	if category == "" || category == CategoryAll {
		return entries
	}

	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Category == category {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// ByCandidate returns the entries tied to the given profile slug,
// newest first. Entries with equal dates keep their original relative
// order.
func ByCandidate(entries []Entry, slug string) []Entry {
	filtered := make([]Entry, 0)
	if slug == "" {
		return filtered
	}

	for _, entry := range entries {
		if entry.RelatedCandidate == slug {
			filtered = append(filtered, entry)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PublishedAt().After(filtered[j].PublishedAt())
	})

	return filtered
}

// ResolveCandidateSlug determines the active profile slug for a
// document. An explicit document attribute wins; otherwise the slug is
// the last path segment of the document location with its extension
// stripped. Returns "" when neither source yields a slug.
func ResolveCandidateSlug(doc *Document) string {
	if doc == nil {
		return ""
	}
	if doc.CandidateSlug != "" {
		return doc.CandidateSlug
	}
	if doc.Path == "" {
		return ""
	}

	base := path.Base(doc.Path)
	return strings.TrimSuffix(base, path.Ext(base))
}
