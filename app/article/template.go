package article

import (
	"fmt"
	"os"
	"strings"
)

// Conditional region marker formats of the article template document.
const (
	beginMarkerFormat = "<!-- BEGIN:%s -->"
	endMarkerFormat   = "<!-- END:%s -->"
)

// Template is an article template document loaded into memory. It is
// mutated through successive substitution passes and serialized once.
type Template struct {
	content string
}

// LoadTemplate reads the template document. The document is re-read on
// every generation call, which is fine for a one-shot CLI; a
// long-running variant should load it once at startup.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateNotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return &Template{content: string(data)}, nil
}

// Substitute replaces every occurrence of the {{NAME}} placeholder
// with the literal value. Values are not escaped; callers own
// sanitization.
func (t *Template) Substitute(name, value string) {
	t.content = strings.ReplaceAll(t.content, "{{"+name+"}}", value)
}

// SubstituteRegion resolves the conditional regions keyed by name.
// When content is non-empty the region body is kept, with the region's
// own {{NAME}} placeholder replaced by content; otherwise the whole
// region is removed along with the line break it occupied. Markers are
// consumed exactly once, so re-running substitution on the result
// never finds them again. An unterminated region is left untouched.
func (t *Template) SubstituteRegion(name, content string) {
	begin := fmt.Sprintf(beginMarkerFormat, name)
	end := fmt.Sprintf(endMarkerFormat, name)

	for {
		start := strings.Index(t.content, begin)
		if start < 0 {
			return
		}
		stop := strings.Index(t.content[start:], end)
		if stop < 0 {
			return
		}
		stop += start

		body := t.content[start+len(begin) : stop]
		tail := t.content[stop+len(end):]

		var replacement string
		if content != "" {
			replacement = strings.ReplaceAll(body, "{{"+name+"}}", content)
			replacement = strings.TrimPrefix(replacement, "\n")
			replacement = strings.TrimSuffix(replacement, "\n")
		} else {
			tail = strings.TrimPrefix(tail, "\n")
		}

		t.content = t.content[:start] + replacement + tail
	}
}

// Residual reports whether the document still carries placeholder
// tokens or region markers.
func (t *Template) Residual() bool {
	return HasResidualTokens(t.content)
}

func (t *Template) String() string {
	return t.content
}

// HasResidualTokens reports whether a produced document still carries
// placeholder tokens or conditional region markers.
func HasResidualTokens(doc string) bool {
	return strings.Contains(doc, "{{") ||
		strings.Contains(doc, "<!-- BEGIN:") ||
		strings.Contains(doc, "<!-- END:")
}
