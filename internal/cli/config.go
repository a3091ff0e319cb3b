package cli

import "fmt"

// Config holds all configuration for a litgrep search.
// It is constructed once at startup and read-only afterwards.
type Config struct {
	Pattern        string
	Paths          []string
	IgnoreCase     bool // -i
	LineNumbers    bool // -n
	Invert         bool // -v
	Recursive      bool // -r / -R
	FileNames      bool // -f
	Color          bool // -c
	RespectIgnores bool // --respect-ignores
}

// Validate checks that the config is complete enough to search.
// A missing or empty pattern and missing paths are rejected; the caller
// falls back to usage text rather than reporting an error.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("no pattern specified")
	}
	if len(c.Paths) == 0 {
		return fmt.Errorf("no paths specified")
	}
	return nil
}
