package cfg

type Cfg struct {
	// Path to the site configuration file (site.yml)
	ConfigPath string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
