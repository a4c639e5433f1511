// Package config loads the menumaker configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ealfonsov89/menu-maker/pkg/menu/export"
	"github.com/ealfonsov89/menu-maker/pkg/menu/render"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up next to the executable.
const FileName = "menumaker.yaml"

// PDF engines.
const (
	EngineRod  = export.EngineRod
	EngineExec = export.EngineExec
	EngineNone = "none"
)

// Config is the application configuration.
type Config struct {
	Templates TemplatesConfig `yaml:"templates"`
	Output    OutputConfig    `yaml:"output"`
	PDF       PDFConfig       `yaml:"pdf"`
	Log       LogConfig       `yaml:"log"`
	// Currency is appended to formatted prices.
	Currency string `yaml:"currency"`
}

// TemplatesConfig locates the template set.
type TemplatesConfig struct {
	// Glob matches the template files.
	Glob         string `yaml:"glob"`
	render.Names `yaml:",inline"`
}

// OutputConfig locates the generated artifacts.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	HTML string `yaml:"html"`
}

// PDFConfig selects how the HTML artifact is rasterized.
type PDFConfig struct {
	// Engine is one of rod, exec or none.
	Engine string `yaml:"engine"`
	// Browser is the Chrome/Chromium binary. Empty searches PATH.
	Browser string        `yaml:"browser"`
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig configures the log sink.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration. Relative paths are
// resolved against the executable directory by Load.
func DefaultConfig() *Config {
	return &Config{
		Templates: TemplatesConfig{
			Glob:  "template/*.html",
			Names: render.DefaultNames(),
		},
		Output: OutputConfig{
			Dir:  "dist",
			HTML: "menu_output.html",
		},
		PDF: PDFConfig{
			Engine:  EngineExec,
			Timeout: 2 * time.Minute,
		},
		Log: LogConfig{
			File:  "output.log",
			Level: "info",
		},
		Currency: "€",
	}
}

// GetExeDir returns the directory holding the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// Load reads the configuration at path. An empty path reads FileName from
// the executable directory, and a missing default file yields defaults.
// Environment overrides are applied, then relative paths are made absolute
// against the directory of the executable.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	baseDir, err := GetExeDir()
	if err != nil {
		baseDir = "."
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(baseDir, FileName)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, err
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Resolve(baseDir)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MENUMAKER_TEMPLATES"); v != "" {
		cfg.Templates.Glob = v
	}
	if v := os.Getenv("MENUMAKER_BROWSER"); v != "" {
		cfg.PDF.Browser = v
	}
	if v := os.Getenv("MENUMAKER_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch c.PDF.Engine {
	case EngineRod, EngineExec, EngineNone:
	default:
		return fmt.Errorf("invalid pdf engine: %s (must be rod, exec, or none)", c.PDF.Engine)
	}
	if c.Templates.Glob == "" {
		return fmt.Errorf("templates.glob must not be empty")
	}
	return nil
}

// Resolve makes relative paths absolute against baseDir.
func (c *Config) Resolve(baseDir string) {
	c.Templates.Glob = resolve(baseDir, c.Templates.Glob)
	c.Output.Dir = resolve(baseDir, c.Output.Dir)
	c.Log.File = resolve(baseDir, c.Log.File)
}

func resolve(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
