package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/ploneconf-schedule/internal/schedule"
	"github.com/pfrederiksen/ploneconf-schedule/internal/scraper"
)

const (
	// AppName is used for the XDG configuration directory
	AppName = "ploneconf-schedule"

	// DefaultConfigFile is looked up under the XDG config directory
	DefaultConfigFile = "config.yaml"

	DefaultOutput = "schedule.csv"
	DefaultFormat = "text"
)

// Config holds all settings for one export run
type Config struct {
	// BaseURL is the schedule page address without the trailing -<day>
	BaseURL string `yaml:"base_url"`

	// Days are fetched and written in this order
	Days []int `yaml:"days"`

	// Output is the CSV path, overwritten on every run
	Output string `yaml:"output"`

	// Root is the Plone site path prefixed to every item path
	Root string `yaml:"root"`

	// PagesDir, when set, reads saved pages instead of fetching them
	PagesDir string `yaml:"pages_dir"`

	Timeout time.Duration `yaml:"timeout"`

	// Format of the run summary printed on stdout
	Format string `yaml:"format"`

	Verbose bool `yaml:"verbose"`
}

// Default returns the settings for the 2018 conference site
func Default() *Config {
	return &Config{
		BaseURL: scraper.DefaultBaseURL,
		Days:    append([]int(nil), scraper.DefaultDays...),
		Output:  DefaultOutput,
		Root:    schedule.DefaultRoot,
		Timeout: scraper.Timeout,
		Format:  DefaultFormat,
	}
}

// DefaultPath returns where the configuration file is looked up when none is named
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, DefaultConfigFile)
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value. A missing file yields ErrConfigNotFound.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the settings a run depends on
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrEmptyBaseURL
	}
	if len(c.Days) == 0 {
		return ErrNoDays
	}
	for _, day := range c.Days {
		if day < 1 || day > 31 {
			return fmt.Errorf("%w: %d", ErrInvalidDay, day)
		}
	}
	if c.Output == "" {
		return ErrEmptyOutput
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, c.Format)
	}
	return nil
}
