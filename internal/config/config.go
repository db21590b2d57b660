// Package config loads converter settings from JSON or YAML and applies
// command-line overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"udim-wireframe/internal/encode"
	"udim-wireframe/internal/raster"
)

// Limits for the render settings.
const (
	MaxTileSize  = 16384
	MaxLineWidth = 64
)

// Config holds output paths and render settings.
type Config struct {
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	BaseName  string `json:"base_name" yaml:"base_name"`

	// Render settings
	TileSize  int    `json:"tile_size" yaml:"tile_size"`
	LineWidth int    `json:"line_width" yaml:"line_width"`
	AntiAlias bool   `json:"anti_alias" yaml:"anti_alias"`
	Invert    bool   `json:"invert" yaml:"invert"`
	Format    string `json:"format" yaml:"format"`
	Backend   string `json:"backend" yaml:"backend"`

	// Extra outputs
	Preview  bool `json:"preview" yaml:"preview"`
	Manifest bool `json:"manifest" yaml:"manifest"`

	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `json:"level" yaml:"level"`
	LogFile string `json:"log_file" yaml:"log_file"`
}

// Default returns the settings used when neither file nor flags say otherwise.
func Default() Config {
	return Config{
		OutputDir: ".",
		TileSize:  4096,
		LineWidth: 1,
		AntiAlias: true,
		Format:    string(encode.PNG),
		Backend:   raster.BackendVector,
		Preview:   true,
		Manifest:  true,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a config file over the defaults. Files ending in .yaml or .yml
// are YAML, anything else is JSON. Fields not set in the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean "not given".
type Flags struct {
	OutputDir string
	BaseName  string
	TileSize  int
	LineWidth int
	NoAA      bool
	Invert    bool
	Format    string
	Backend   string
	NoPreview bool
	Debug     bool
	LogFile   string
}

// Resolve applies flag overrides and fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.BaseName != "" {
		c.BaseName = flags.BaseName
	}
	if flags.TileSize > 0 {
		c.TileSize = flags.TileSize
	}
	if flags.LineWidth > 0 {
		c.LineWidth = flags.LineWidth
	}
	if flags.NoAA {
		c.AntiAlias = false
	}
	if flags.Invert {
		c.Invert = true
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Backend != "" {
		c.Backend = flags.Backend
	}
	if flags.NoPreview {
		c.Preview = false
	}
	if flags.Debug {
		c.Logging.Level = "debug"
	}
	if flags.LogFile != "" {
		c.Logging.LogFile = flags.LogFile
	}

	c.BaseName = strings.TrimSpace(c.BaseName)
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Format == "" {
		c.Format = string(encode.PNG)
	}
	if c.Backend == "" {
		c.Backend = raster.BackendVector
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate reports settings the renderer cannot honour.
func (c Config) Validate() error {
	if c.TileSize < 1 || c.TileSize > MaxTileSize {
		return fmt.Errorf("config: tile_size %d out of range 1..%d", c.TileSize, MaxTileSize)
	}
	if c.LineWidth < 1 || c.LineWidth > MaxLineWidth {
		return fmt.Errorf("config: line_width %d out of range 1..%d", c.LineWidth, MaxLineWidth)
	}
	if _, err := encode.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := raster.NewBackend(c.Backend); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if strings.ContainsAny(c.BaseName, `/\`) {
		return fmt.Errorf("config: base_name %q must not contain path separators", c.BaseName)
	}
	return nil
}
