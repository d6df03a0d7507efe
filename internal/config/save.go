package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the config back to the file it came from, or to the
// user's config directory.
func (c *Config) Save() error {
	path := c.source
	if path == "" {
		path = filepath.Join(ConfigDir(), FileName)
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RememberWindow records the window geometry for the next start.
func (c *Config) RememberWindow(x, y, width, height int, maximized bool) {
	c.Window.X, c.Window.Y = &x, &y
	c.Window.Maximized = maximized
	if !maximized {
		c.Window.Width, c.Window.Height = width, height
	}
}
