package ui

// Config contains window/input related settings for the debug frontend.
type Config struct {
	Title string // window title
	Scale int    // integer upscaling factor applied to the debug panel
}

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.Title == "" {
		c.Title = "sm83core"
	}
	if c.Scale <= 0 {
		c.Scale = 3
	}
}
