package article

import (
	"fmt"
	"html"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Fields are the inputs of one article generation.
type Fields struct {
	Slug    string // output file basename, normalized before use
	Title   string
	Date    string // YYYY-MM-DD
	Body    string // pre-authored markup fragment, substituted literally
	Tags    string // comma-separated, optional
	Sources string // comma-separated, items optionally Name|URL, optional
}

// Source is one parsed citation. A bare name produces a plain list
// item; a Name|URL pair produces a link.
type Source struct {
	Name string
	URL  string
}

// Generator fills the article template with supplied fields and writes
// the output document.
type Generator struct {
	templatePath string
	articlesDir  string
}

func NewGenerator(templatePath, articlesDir string) *Generator {
	return &Generator{
		templatePath: templatePath,
		articlesDir:  articlesDir,
	}
}

// Run validates the fields, fills the template and writes
// <articles dir>/<slug>.html, returning the path written. An existing
// file at that path is overwritten silently. On any error no file is
// written.
func (g *Generator) Run(fields Fields) (string, error) {
	if err := validateFields(fields); err != nil {
		return "", err
	}

	slug := Slugify(fields.Slug)
	if slug == "" {
		return "", &MissingFieldError{Field: "slug"}
	}

	date, err := ParseDate(fields.Date)
	if err != nil {
		return "", err
	}

	tmpl, err := LoadTemplate(g.templatePath)
	if err != nil {
		return "", err
	}

	tmpl.Substitute("TITLE", fields.Title)
	tmpl.Substitute("DATE_ISO", fields.Date)
	tmpl.Substitute("DATE_FORMATTED", date.Format("January 2, 2006"))
	tmpl.Substitute("BODY", fields.Body)

	tmpl.SubstituteRegion("TAGS", renderTags(ParseTags(fields.Tags)))
	tmpl.SubstituteRegion("SOURCES", renderSources(ParseSources(fields.Sources)))

	outPath := filepath.Join(g.articlesDir, slug+".html")
	if err := os.MkdirAll(g.articlesDir, 0755); err != nil {
		return "", &FilesystemError{Path: outPath, Err: err}
	}
	if err := os.WriteFile(outPath, []byte(tmpl.String()), 0644); err != nil {
		return "", &FilesystemError{Path: outPath, Err: err}
	}

	slog.Debug("Article written", "slug", slug, "path", outPath)

	return outPath, nil
}

// ParseDate parses a YYYY-MM-DD date pinned to 12:00 UTC, so the
// formatted long form never shifts across timezones.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", value, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC), nil
}

// ParseTags splits a comma-separated tag list. An empty string yields
// an empty list, not a single empty tag.
func ParseTags(raw string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParseSources splits a comma-separated citation list. Whitespace
// around names and URLs is trimmed.
func ParseSources(raw string) []Source {
	sources := make([]Source, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, url, found := strings.Cut(part, "|")
		source := Source{Name: strings.TrimSpace(name)}
		if found {
			source.URL = strings.TrimSpace(url)
		}
		if source.Name == "" && source.URL == "" {
			continue
		}
		sources = append(sources, source)
	}
	return sources
}

func validateFields(fields Fields) error {
	required := []struct {
		name  string
		value string
	}{
		{"slug", fields.Slug},
		{"title", fields.Title},
		{"date", fields.Date},
		{"body", fields.Body},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}

func renderTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}

	items := make([]string, 0, len(tags))
	for _, tag := range tags {
		items = append(items, `      <li class="tag">`+html.EscapeString(tag)+"</li>")
	}
	return strings.Join(items, "\n")
}

func renderSources(sources []Source) string {
	if len(sources) == 0 {
		return ""
	}

	items := make([]string, 0, len(sources))
	for _, source := range sources {
		if source.URL != "" {
			items = append(items, `      <li><a href="`+html.EscapeString(source.URL)+
				`" rel="external">`+html.EscapeString(source.Name)+"</a></li>")
		} else {
			items = append(items, "      <li>"+html.EscapeString(source.Name)+"</li>")
		}
	}
	return strings.Join(items, "\n")
}
