package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.TileSize != 4096 {
		t.Errorf("expected tile size 4096, got %d", cfg.TileSize)
	}
	if cfg.LineWidth != 1 {
		t.Errorf("expected line width 1, got %d", cfg.LineWidth)
	}
	if !cfg.AntiAlias {
		t.Error("expected anti-aliasing on by default")
	}
	if cfg.Invert {
		t.Error("expected default colour scheme")
	}
	if cfg.Format != "png" {
		t.Errorf("expected png, got %s", cfg.Format)
	}
	if cfg.Backend != "vector" {
		t.Errorf("expected vector backend, got %s", cfg.Backend)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "udim.yaml")
	content := `
output_dir: renders
base_name: body
tile_size: 2048
line_width: 3
anti_alias: false
invert: true
format: webp
backend: gg
logging:
  level: debug
  log_file: udim.log
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.OutputDir != "renders" || cfg.BaseName != "body" {
		t.Errorf("unexpected paths: %+v", cfg)
	}
	if cfg.TileSize != 2048 || cfg.LineWidth != 3 {
		t.Errorf("unexpected sizes: %d, %d", cfg.TileSize, cfg.LineWidth)
	}
	if cfg.AntiAlias || !cfg.Invert {
		t.Errorf("unexpected flags: aa=%v invert=%v", cfg.AntiAlias, cfg.Invert)
	}
	if cfg.Format != "webp" || cfg.Backend != "gg" {
		t.Errorf("unexpected format/backend: %s/%s", cfg.Format, cfg.Backend)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "udim.log" {
		t.Errorf("unexpected logging: %+v", cfg.Logging)
	}
	// Untouched keys keep defaults.
	if !cfg.Preview || !cfg.Manifest {
		t.Error("expected preview and manifest to keep their defaults")
	}
}

func TestLoad_JSONPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "udim.json")
	if err := os.WriteFile(path, []byte(`{"tile_size": 1024, "preview": false}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TileSize != 1024 {
		t.Errorf("expected tile size 1024, got %d", cfg.TileSize)
	}
	if cfg.Preview {
		t.Error("expected preview disabled")
	}
	if !cfg.AntiAlias || cfg.LineWidth != 1 {
		t.Error("expected unset fields to keep defaults")
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{tile_size:"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "config: parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestResolve_FlagsOverride(t *testing.T) {
	cfg := Default()
	cfg.Resolve(Flags{
		OutputDir: "out",
		BaseName:  "  head ",
		TileSize:  512,
		LineWidth: 2,
		NoAA:      true,
		Invert:    true,
		Format:    "tga",
		Backend:   "gg",
		NoPreview: true,
		Debug:     true,
		LogFile:   "run.log",
	})

	if cfg.OutputDir != "out" || cfg.BaseName != "head" {
		t.Errorf("unexpected paths: %q %q", cfg.OutputDir, cfg.BaseName)
	}
	if cfg.TileSize != 512 || cfg.LineWidth != 2 {
		t.Errorf("unexpected sizes: %d %d", cfg.TileSize, cfg.LineWidth)
	}
	if cfg.AntiAlias || !cfg.Invert || cfg.Preview {
		t.Error("expected boolean overrides to apply")
	}
	if cfg.Format != "tga" || cfg.Backend != "gg" {
		t.Errorf("unexpected format/backend: %s/%s", cfg.Format, cfg.Backend)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "run.log" {
		t.Errorf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestResolve_FillsEmpty(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.OutputDir != "." || cfg.Format != "png" || cfg.Backend != "vector" || cfg.Logging.Level != "info" {
		t.Errorf("expected empty fields filled, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero tile", func(c *Config) { c.TileSize = 0 }},
		{"huge tile", func(c *Config) { c.TileSize = MaxTileSize + 1 }},
		{"zero width", func(c *Config) { c.LineWidth = 0 }},
		{"wide line", func(c *Config) { c.LineWidth = MaxLineWidth + 1 }},
		{"bad format", func(c *Config) { c.Format = "bmp" }},
		{"bad backend", func(c *Config) { c.Backend = "opengl" }},
		{"separator in base", func(c *Config) { c.BaseName = "a/b" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
