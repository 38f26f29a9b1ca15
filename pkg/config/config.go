package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

// FileName is the config file looked up in the working directory.
const FileName = "lbl.yaml"

type Config struct {
	// Output is the default PDF path for generate/watch.
	Output string `yaml:"output"`

	// DateFormat is the Go layout printed on labels and in QR payloads.
	DateFormat string `yaml:"date_format"`

	// Logo is an optional branding image for the identity panel.
	Logo string `yaml:"logo"`

	// PDFViewer overrides the OS default when opening generated files.
	PDFViewer string `yaml:"pdf_viewer"`

	// Theme selects the terminal color theme ("auto", "dark", "light").
	Theme string `yaml:"theme"`

	// LocationWidths are the five width fractions of the location
	// panel: header box plus four segment boxes. Must sum to 1.0.
	LocationWidths []float64 `yaml:"location_widths"`

	// Aliases adds extra column-name candidates per logical field,
	// tried after the built-in ones. Keys are logical field names
	// (e.g. "bin_type").
	Aliases map[string][]string `yaml:"aliases"`
}

// DefaultConfig returns the stock configuration
func DefaultConfig() *Config {
	layout := domain.DefaultLayoutConfig()
	return &Config{
		Output:         "labels.pdf",
		DateFormat:     "02-01-2006",
		Theme:          "auto",
		LocationWidths: layout.LocationWidths[:],
		Aliases:        map[string][]string{},
	}
}

// DefaultPath returns the user-level config location
// (~/.config/lbl/lbl.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lbl", FileName), nil
}

// FindPath returns the config file that Load would use: the explicit
// path when given, else ./lbl.yaml, else the user-level file. Empty
// when none exists.
func FindPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if userPath, err := DefaultPath(); err == nil {
		if _, err := os.Stat(userPath); err == nil {
			return userPath
		}
	}
	return ""
}

// Load reads the config at path, or searches the standard locations
// when path is empty. A missing file yields the defaults; a present but
// invalid file is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	found := FindPath(path)
	if found == "" {
		if path != "" {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(found)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", found, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", found, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", found, err)
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the parts of the config the core depends on.
func (c *Config) Validate() error {
	if _, err := c.LayoutConfig(); err != nil {
		return err
	}
	if _, err := c.AliasTable(); err != nil {
		return err
	}
	if c.DateFormat == "" {
		return fmt.Errorf("date_format cannot be empty")
	}
	// A layout that cannot round-trip a reference date would print
	// garbage on every label.
	ref := time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)
	if _, err := time.Parse(c.DateFormat, ref.Format(c.DateFormat)); err != nil {
		return fmt.Errorf("invalid date_format %q: %w", c.DateFormat, err)
	}
	return nil
}

// LayoutConfig converts the configured widths into a validated layout.
func (c *Config) LayoutConfig() (domain.LayoutConfig, error) {
	layout := domain.DefaultLayoutConfig()
	if len(c.LocationWidths) > 0 {
		if len(c.LocationWidths) != len(layout.LocationWidths) {
			return layout, fmt.Errorf("location_widths must have exactly %d entries, got %d",
				len(layout.LocationWidths), len(c.LocationWidths))
		}
		copy(layout.LocationWidths[:], c.LocationWidths)
	}
	if err := layout.Validate(); err != nil {
		return layout, err
	}
	return layout, nil
}

// AliasTable returns the built-in alias dictionary extended with the
// configured extras.
func (c *Config) AliasTable() (domain.AliasTable, error) {
	extra := make(map[domain.LogicalField][]string, len(c.Aliases))
	for name, names := range c.Aliases {
		field, ok := domain.ParseField(name)
		if !ok {
			return nil, fmt.Errorf("unknown logical field %q in aliases", name)
		}
		extra[field] = names
	}
	return domain.DefaultAliases().Extend(extra), nil
}
