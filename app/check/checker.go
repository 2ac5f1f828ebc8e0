package check

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/countywatch/sitegen/app/article"
	"github.com/countywatch/sitegen/app/config"
	"github.com/countywatch/sitegen/app/feed"
)

// Official is one record of the profile registry: a known person with
// a stable slug that must have a matching profile document.
type Official struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Problem is a single integrity failure found by the checker.
type Problem struct {
	File    string
	Message string
}

func (p Problem) String() string {
	if p.File == "" {
		return p.Message
	}
	return fmt.Sprintf("%s: %s", p.File, p.Message)
}

// Checker validates the produced documents: internal links must
// resolve on disk, every slug referenced by the registry or by a feed
// entry must have a profile document, and no document may carry
// leftover template tokens.
type Checker struct {
	root string // site root that all configured paths resolve against
	site *config.SiteConfig
}

func NewChecker(root string, site *config.SiteConfig) *Checker {
	return &Checker{root: root, site: site}
}

// Run performs every check and returns the problems found. An empty
// result means the site is consistent.
func (c *Checker) Run() ([]Problem, error) {
	problems := []Problem{}

	problems = append(problems, c.checkRegistry()...)
	problems = append(problems, c.checkFeeds()...)

	docProblems, err := c.checkDocuments()
	if err != nil {
		return nil, err
	}
	problems = append(problems, docProblems...)

	return problems, nil
}

// checkRegistry verifies that every slug listed in the officials
// registry has a profile document. A missing registry file is not an
// error; sites without profiles simply skip the check.
func (c *Checker) checkRegistry() []Problem {
	path := filepath.Join(c.root, c.site.Paths.Registry)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return []Problem{{File: c.site.Paths.Registry, Message: err.Error()}}
	}

	var officials []Official
	if err := json.Unmarshal(data, &officials); err != nil {
		return []Problem{{File: c.site.Paths.Registry, Message: "failed to parse registry: " + err.Error()}}
	}

	var problems []Problem
	for _, official := range officials {
		if official.Slug == "" {
			problems = append(problems, Problem{
				File:    c.site.Paths.Registry,
				Message: fmt.Sprintf("official %q has no slug", official.Name),
			})
			continue
		}
		if !c.profileExists(official.Slug) {
			problems = append(problems, Problem{
				File:    c.site.Paths.Registry,
				Message: fmt.Sprintf("no profile document for registered slug %q", official.Slug),
			})
		}
	}
	return problems
}

// checkFeeds verifies feed store invariants and that every
// relatedCandidate slug has a profile document.
func (c *Checker) checkFeeds() []Problem {
	store := feed.NewStore(filepath.Join(c.root, c.site.Paths.Feeds))

	feeds, err := store.LoadAll()
	if err != nil {
		return []Problem{{File: c.site.Paths.Feeds, Message: err.Error()}}
	}

	var problems []Problem
	for name, entries := range feeds {
		for _, entry := range entries {
			if entry.RelatedCandidate == "" {
				continue
			}
			if !c.profileExists(entry.RelatedCandidate) {
				problems = append(problems, Problem{
					File:    name,
					Message: fmt.Sprintf("entry %s references unknown candidate %q", entry.ID, entry.RelatedCandidate),
				})
			}
		}
	}
	return problems
}

// checkDocuments walks the article and profile documents, flagging
// residual template tokens and internal links that do not resolve.
func (c *Checker) checkDocuments() ([]Problem, error) {
	var problems []Problem

	for _, dir := range []string{c.site.Paths.Articles, c.site.Paths.Profiles} {
		files, err := filepath.Glob(filepath.Join(c.root, dir, "*.html"))
		if err != nil {
			return nil, fmt.Errorf("failed to list documents in %s: %w", dir, err)
		}

		for _, file := range files {
			rel, err := filepath.Rel(c.root, file)
			if err != nil {
				rel = file
			}

			docProblems, err := c.checkDocument(file, rel)
			if err != nil {
				return nil, err
			}
			problems = append(problems, docProblems...)
		}
	}

	return problems, nil
}

func (c *Checker) checkDocument(path, rel string) ([]Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", rel, err)
	}

	var problems []Problem

	if article.HasResidualTokens(string(data)) {
		problems = append(problems, Problem{File: rel, Message: "document carries residual template tokens"})
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", rel, err)
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		target, internal := c.resolveInternal(path, href)
		if !internal {
			return
		}
		if _, err := os.Stat(target); err != nil {
			problems = append(problems, Problem{
				File:    rel,
				Message: fmt.Sprintf("broken internal link %q", href),
			})
		}
	})

	return problems, nil
}

// resolveInternal maps an internal href to a filesystem path. External
// schemes, bare fragments and mail/tel links are not internal.
func (c *Checker) resolveInternal(docPath, href string) (string, bool) {
	if href == "" {
		return "", false
	}
	for _, prefix := range []string{"http://", "https://", "//", "mailto:", "tel:", "#"} {
		if strings.HasPrefix(href, prefix) {
			return "", false
		}
	}

	// Strip query string and fragment
	if idx := strings.IndexAny(href, "?#"); idx >= 0 {
		href = href[:idx]
	}
	if href == "" {
		return "", false
	}

	if strings.HasPrefix(href, "/") {
		return filepath.Join(c.root, filepath.FromSlash(href)), true
	}
	return filepath.Join(filepath.Dir(docPath), filepath.FromSlash(href)), true
}

func (c *Checker) profileExists(slug string) bool {
	path := filepath.Join(c.root, c.site.Paths.Profiles, slug+".html")
	_, err := os.Stat(path)
	return err == nil
}
