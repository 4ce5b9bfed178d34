// Package config reads and writes the daymark YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Flyrell/daymark/internal/board"
	"gopkg.in/yaml.v3"
)

// ErrGroupNotFound is returned when a preset group does not exist.
var ErrGroupNotFound = errors.New("group not found")

// Config holds user preferences and the preset groups loaded into new boards.
type Config struct {
	Title     string        `yaml:"title"`
	PickCount int           `yaml:"pick_count"`
	CSVBOM    bool          `yaml:"csv_bom"`
	Groups    []board.Group `yaml:"groups"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Title:     "Random Calendar Marker",
		PickCount: 5,
		CSVBOM:    true,
		Groups: []board.Group{
			{Name: "flag", Options: []string{"yes", "no"}},
		},
	}
}

// Dir returns the daymark data directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".daymark")
}

// Path returns the default config file path.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.yaml")
}

// DBPath returns the default session database path.
func DBPath(homeDir string) string {
	return filepath.Join(Dir(homeDir), "sessions.db")
}

// Load reads the config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.PickCount < 1 {
		cfg.PickCount = 1
	}
	return cfg, nil
}

// Save writes the config file, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// FindGroup returns the preset with the given name, or nil.
func (c *Config) FindGroup(name string) *board.Group {
	for i := range c.Groups {
		if c.Groups[i].Name == name {
			return &c.Groups[i]
		}
	}
	return nil
}

// PutGroup adds a preset or replaces the options of an existing one.
// It returns the stored group and reports whether it was newly created.
func (c *Config) PutGroup(name string, options []string) (*board.Group, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, board.ErrEmptyGroupName
	}
	var opts []string
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			opts = append(opts, o)
		}
	}
	if len(opts) == 0 {
		return nil, false, board.ErrNoOptions
	}

	if g := c.FindGroup(name); g != nil {
		g.Options = opts
		return g, false, nil
	}
	c.Groups = append(c.Groups, board.Group{Name: name, Options: opts})
	return &c.Groups[len(c.Groups)-1], true, nil
}

// RemoveGroup deletes a preset by name.
func (c *Config) RemoveGroup(name string) error {
	for i, g := range c.Groups {
		if g.Name == name {
			c.Groups = append(c.Groups[:i], c.Groups[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: '%s'", ErrGroupNotFound, name)
}
