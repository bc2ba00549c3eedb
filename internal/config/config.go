package config

// Config holds the application configuration. Every field can also be set
// from the command line; flags override file values.
type Config struct {
	Theme         string  `yaml:"theme"`           // chroma syntax style name
	Pager         string  `yaml:"pager"`           // overrides GLINT_PAGER / PAGER
	TrueColor     bool    `yaml:"true_color"`      // 24-bit color output; ANSI-256 otherwise
	TabWidth      int     `yaml:"tab_width"`       // spaces per tab in content lines
	MinSimilarity float64 `yaml:"min_similarity"`  // pairing threshold in [0,1]
	MaxLineLength int     `yaml:"max_line_length"` // longest line eligible for intra-line diffing
	Width         int     `yaml:"width"`           // pad changed-line backgrounds to this width; 0 disables
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:         "monokai",
		TrueColor:     true,
		TabWidth:      4,
		MinSimilarity: 0.3,
		MaxLineLength: 512,
	}
}
