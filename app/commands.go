package main

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"

	"github.com/countywatch/sitegen/app/article"
	"github.com/countywatch/sitegen/app/cfg"
	"github.com/countywatch/sitegen/app/check"
	"github.com/countywatch/sitegen/app/config"
	"github.com/countywatch/sitegen/app/feed"
)

func addCommands(parser *flags.Parser) {
	parser.AddCommand("article", "Generate an article page",
		"Fill the article template with the supplied fields and write a new article document.",
		&articleCommand{})
	parser.AddCommand("render", "Render feed cards",
		"Render a feed store file into HTML card fragments, optionally into a page element.",
		&renderCommand{})
	parser.AddCommand("import", "Import a local RSS/Atom file",
		"Append the items of a local RSS/Atom file to a feed store file.",
		&importCommand{})
	parser.AddCommand("export", "Export a feed as RSS",
		"Generate an RSS 2.0 document from a feed store file.",
		&exportCommand{})
	parser.AddCommand("check", "Check site integrity",
		"Validate internal links, profile coverage and leftover template tokens.",
		&checkCommand{})
}

func loadSite() (*config.SiteConfig, error) {
	return config.Load(cfg.Get().ConfigPath)
}

type articleCommand struct {
	Slug    string `long:"slug" description:"Output file basename (required)"`
	Title   string `long:"title" description:"Article title (required)"`
	Date    string `long:"date" description:"Publication date, YYYY-MM-DD (required)"`
	Body    string `long:"body" description:"Pre-authored article body markup (required)"`
	Tags    string `long:"tags" description:"Comma-separated tags"`
	Sources string `long:"sources" description:"Comma-separated citations, each optionally Name|URL"`

	Feed      string `long:"feed" description:"Feed store file to append an entry for the new article to"`
	Category  string `long:"category" description:"Feed entry category (required with --feed)"`
	Candidate string `long:"candidate" description:"Related profile slug for the feed entry"`
	Summary   string `long:"summary" description:"Feed entry summary; extracted from the body when omitted"`
	Source    string `long:"source" description:"Feed entry source name; defaults to the site title"`
}

func (c *articleCommand) Execute(args []string) error {
	site, err := loadSite()
	if err != nil {
		return err
	}

	generator := article.NewGenerator(site.Paths.Template, site.Paths.Articles)
	written, err := generator.Run(article.Fields{
		Slug:    c.Slug,
		Title:   c.Title,
		Date:    c.Date,
		Body:    c.Body,
		Tags:    c.Tags,
		Sources: c.Sources,
	})
	if err != nil {
		return err
	}

	if c.Feed != "" {
		if err := c.appendFeedEntry(site, written); err != nil {
			return err
		}
	}

	fmt.Println(filepath.ToSlash(written))
	return nil
}

func (c *articleCommand) appendFeedEntry(site *config.SiteConfig, written string) error {
	if c.Category == "" {
		return fmt.Errorf("--category is required with --feed")
	}

	summary := c.Summary
	if summary == "" {
		extracted, err := feed.NewSummaryExtractor().Run(c.Body)
		if err != nil {
			slog.Warn("Summary extraction failed, storing entry without one", "error", err)
		} else {
			summary = extracted
		}
	}

	// Date was validated by the generator already
	date, err := article.ParseDate(c.Date)
	if err != nil {
		return err
	}

	entry := feed.Entry{
		ID:               "art-" + uuid.NewString()[:8],
		Date:             date.Format(time.RFC3339),
		Title:            c.Title,
		Summary:          summary,
		Source:           cmp.Or(c.Source, site.Site.Title),
		SourceURL:        filepath.ToSlash(written),
		Category:         c.Category,
		RelatedCandidate: c.Candidate,
	}

	store := feed.NewStore(site.Paths.Feeds)
	if err := store.Append(c.Feed, entry); err != nil {
		return err
	}

	slog.Info("Feed entry appended", "feed", c.Feed, "id", entry.ID)
	return nil
}

type renderCommand struct {
	Feed      string `long:"feed" required:"true" description:"Feed store file to render"`
	Category  string `long:"category" description:"Filter by category; \"all\" or empty disables filtering"`
	Candidate string `long:"candidate" description:"Filter by related profile slug, newest first"`
	Page      string `long:"page" description:"Static page to inject the rendered cards into"`
	Slot      string `long:"slot" default:"feed" description:"Element id of the page's feed container"`
}

func (c *renderCommand) Execute(args []string) error {
	site, err := loadSite()
	if err != nil {
		return err
	}

	store := feed.NewStore(site.Paths.Feeds)
	entries, err := store.Load(c.Feed)
	if err != nil {
		return err
	}

	if c.Candidate != "" {
		entries = feed.ByCandidate(entries, c.Candidate)
	} else {
		entries = feed.ByCategory(entries, c.Category)
	}

	var slot *feed.PageSlot
	var container feed.Container
	if c.Page != "" {
		slot = feed.NewPageSlot(c.Page, c.Slot)
		container = slot
	}

	markup := feed.NewRenderer().Run(entries, container)

	if slot != nil {
		if err := slot.Save(); err != nil {
			return err
		}
		slog.Info("Page updated", "page", c.Page, "slot", c.Slot, "cards", len(entries))
		return nil
	}

	fmt.Print(markup)
	return nil
}

type importCommand struct {
	File     string `long:"file" required:"true" description:"Local RSS/Atom file to import"`
	Feed     string `long:"feed" required:"true" description:"Feed store file to append to"`
	Category string `long:"category" description:"Category for imported entries; falls back to item categories"`
	Source   string `long:"source" description:"Source name for imported entries; falls back to the feed title"`
}

func (c *importCommand) Execute(args []string) error {
	site, err := loadSite()
	if err != nil {
		return err
	}

	store := feed.NewStore(site.Paths.Feeds)
	count, err := feed.NewImporter(store).Run(c.File, c.Feed, c.Category, c.Source)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d entries into %s\n", count, c.Feed)
	return nil
}

type exportCommand struct {
	Feed string `long:"feed" required:"true" description:"Feed store file to export"`
	Out  string `long:"out" description:"Output file; stdout when omitted"`
}

func (c *exportCommand) Execute(args []string) error {
	site, err := loadSite()
	if err != nil {
		return err
	}

	entries, err := feed.NewStore(site.Paths.Feeds).Load(c.Feed)
	if err != nil {
		return err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PublishedAt().After(entries[j].PublishedAt())
	})

	rss, err := feed.NewRSSGenerator(site).Run(c.Feed, entries)
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Println(rss)
		return nil
	}

	if err := os.WriteFile(c.Out, []byte(rss+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write RSS file: %w", err)
	}
	fmt.Println(c.Out)
	return nil
}

type checkCommand struct {
	Root string `long:"root" default:"." description:"Site root directory"`
}

func (c *checkCommand) Execute(args []string) error {
	site, err := loadSite()
	if err != nil {
		return err
	}

	problems, err := check.NewChecker(c.Root, site).Run()
	if err != nil {
		return err
	}

	if len(problems) == 0 {
		fmt.Println("OK")
		return nil
	}

	for _, problem := range problems {
		fmt.Fprintln(os.Stderr, problem.String())
	}
	return fmt.Errorf("%d problems found", len(problems))
}
