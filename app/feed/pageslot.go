package feed

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageSlot is a Container backed by an element of a static page. The
// rendered markup replaces the element's inner content when Save is
// called; the rest of the page is left untouched.
type PageSlot struct {
	path   string
	slotID string

	content string
	set     bool
}

func NewPageSlot(path, slotID string) *PageSlot {
	return &PageSlot{path: path, slotID: slotID}
}

func (p *PageSlot) SetContent(markup string) {
	p.content = markup
	p.set = true
}

// Save rewrites the page with the slot element's content replaced.
// Calling Save before any content was set is an error.
func (p *PageSlot) Save() error {
	if !p.set {
		return fmt.Errorf("no content set for page slot %q", p.slotID)
	}

	f, err := os.Open(p.path)
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("failed to parse page %s: %w", p.path, err)
	}

	slot := doc.Find("#" + p.slotID)
	if slot.Length() == 0 {
		return fmt.Errorf("page %s has no element with id %q", p.path, p.slotID)
	}
	slot.SetHtml(p.content)

	rendered, err := doc.Html()
	if err != nil {
		return fmt.Errorf("failed to serialize page %s: %w", p.path, err)
	}
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}

	if err := os.WriteFile(p.path, []byte(rendered), 0644); err != nil {
		return fmt.Errorf("failed to write page %s: %w", p.path, err)
	}

	return nil
}
