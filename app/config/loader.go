package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the site configuration file.
func Load(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config %s: %w", path, err)
	}

	var config SiteConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse site config %s: %w", path, err)
	}

	setDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid site config %s: %w", path, err)
	}

	return &config, nil
}

// setDefaults applies default values to configuration
func setDefaults(config *SiteConfig) {
	if config.Paths.Feeds == "" {
		config.Paths.Feeds = "data/feeds"
	}
	if config.Paths.Articles == "" {
		config.Paths.Articles = "articles"
	}
	if config.Paths.Profiles == "" {
		config.Paths.Profiles = "candidates"
	}
	if config.Paths.Template == "" {
		config.Paths.Template = "templates/article.html"
	}
	if config.Paths.Registry == "" {
		config.Paths.Registry = "data/officials.json"
	}
}

// validate validates the configuration
func validate(config *SiteConfig) error {
	if config.Site.Title == "" {
		return fmt.Errorf("site title is required")
	}
	return nil
}
