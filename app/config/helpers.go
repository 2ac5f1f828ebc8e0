package config

import (
	"strings"
)

// ResolveURL resolves a possibly-relative reference against the site
// base URL. Absolute references are returned unchanged; when no base
// URL is configured the reference is returned as-is.
func (s *SiteInfo) ResolveURL(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}

	base := strings.TrimRight(s.BaseURL, "/")
	if base == "" {
		return ref
	}
	if ref == "" {
		return base
	}

	return base + "/" + strings.TrimLeft(ref, "/")
}
