package config

// SiteConfig is the parsed site configuration file (site.yml).
type SiteConfig struct {
	Site  SiteInfo  `yaml:"site"`
	Paths SitePaths `yaml:"paths"`
}

type SiteInfo struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	BaseURL     string `yaml:"base_url"`
}

type SitePaths struct {
	Feeds    string `yaml:"feeds"`    // directory of feed store files
	Articles string `yaml:"articles"` // directory generated articles are written to
	Profiles string `yaml:"profiles"` // directory of candidate profile pages
	Template string `yaml:"template"` // article template document
	Registry string `yaml:"registry"` // officials registry JSON file
}
