// Package config loads tagrec settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Catalog source kinds.
const (
	SourceAuto   = "auto"
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Catalog locates the title/tags dataset.
type Catalog struct {
	Path   string `toml:"path"`
	Source string `toml:"source"`
}

// Features controls vocabulary construction.
type Features struct {
	MaxFeatures    int `toml:"max_features"`
	MinTokenLength int `toml:"min_token_length"`
}

// Recommend controls query defaults.
type Recommend struct {
	K int `toml:"k"`
}

// Logging controls the CLI logger.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full tagrec configuration.
type Config struct {
	Catalog   Catalog   `toml:"catalog"`
	Features  Features  `toml:"features"`
	Recommend Recommend `toml:"recommend"`
	Logging   Logging   `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Catalog:   Catalog{Path: "movies_cleaned.csv", Source: SourceAuto},
		Features:  Features{MaxFeatures: 3000, MinTokenLength: 1},
		Recommend: Recommend{K: 5},
		Logging:   Logging{Level: "info", Format: "text"},
	}
}

// Load reads path on top of Default. A missing file is not an error; the
// returned flag reports whether the file existed.
func Load(path string) (*Config, bool, error) {
	cfg := Default()
	exists := false
	if strings.TrimSpace(path) != "" {
		file, err := os.Open(path)
		switch {
		case err == nil:
			defer file.Close()
			exists = true
			if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(&cfg); err != nil {
				return nil, false, fmt.Errorf("parse config: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, false, fmt.Errorf("open config: %w", err)
		}
	}
	if err := cfg.normalize(); err != nil {
		return nil, false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return &cfg, exists, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return errors.New("config: catalog.path is required")
	}
	switch c.Catalog.Source {
	case SourceAuto, SourceCSV, SourceSQLite:
	default:
		return fmt.Errorf("config: catalog.source %q must be auto, csv or sqlite", c.Catalog.Source)
	}
	if c.Features.MaxFeatures <= 0 {
		return fmt.Errorf("config: features.max_features must be positive, got %d", c.Features.MaxFeatures)
	}
	if c.Features.MinTokenLength < 1 {
		return fmt.Errorf("config: features.min_token_length must be at least 1, got %d", c.Features.MinTokenLength)
	}
	if c.Recommend.K <= 0 {
		return fmt.Errorf("config: recommend.k must be positive, got %d", c.Recommend.K)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: logging.format %q must be text or json", c.Logging.Format)
	}
	return nil
}

// SourceKind resolves SourceAuto from the catalog file extension.
func (c *Config) SourceKind() string {
	if c.Catalog.Source != SourceAuto {
		return c.Catalog.Source
	}
	switch strings.ToLower(filepath.Ext(c.Catalog.Path)) {
	case ".db", ".sqlite", ".sqlite3":
		return SourceSQLite
	default:
		return SourceCSV
	}
}

func (c *Config) normalize() error {
	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))
	if c.Catalog.Source == "" {
		c.Catalog.Source = SourceAuto
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	path, err := ExpandPath(c.Catalog.Path)
	if err != nil {
		return err
	}
	c.Catalog.Path = path
	return nil
}

// ExpandPath expands a leading ~ and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
