package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arran4/pogreport"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration for the CLI and server.
type Config struct {
	Page    PageConfig           `yaml:"page"`
	Margins MarginConfig         `yaml:"margins"`
	Fonts   pogreport.FontConfig `yaml:"fonts"`

	Header string `yaml:"header"`
	Footer string `yaml:"footer"`
	Author string `yaml:"author"`

	Server ServerConfig `yaml:"server"`
}

// PageConfig is the paper size in millimetres.
type PageConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MarginConfig is in millimetres.
type MarginConfig struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// ServerConfig configures the HTTP API. An empty APIKey disables auth.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	APIKey       string `yaml:"api_key"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// Default returns A4 with the report margins and the stock labels.
func Default() Config {
	m := pogreport.DefaultMetrics
	return Config{
		Page:    PageConfig{Width: m.PageW, Height: m.PageH},
		Margins: MarginConfig{Top: m.Top, Bottom: m.Bottom, Left: m.Left, Right: m.Right},
		Header:  "Security Assessment Report",
		Footer:  "Confidential",
		Server: ServerConfig{
			Addr:         ":8090",
			MaxBodyBytes: 10 << 20,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if cfg.Server.MaxBodyBytes <= 0 {
		cfg.Server.MaxBodyBytes = 10 << 20
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Header = envOr("POGREPORT_HEADER", c.Header)
	c.Footer = envOr("POGREPORT_FOOTER", c.Footer)
	c.Author = envOr("POGREPORT_AUTHOR", c.Author)
	c.Server.Addr = envOr("POGREPORT_ADDR", c.Server.Addr)
	c.Server.APIKey = envOr("POGREPORT_API_KEY", c.Server.APIKey)
	c.Server.MaxBodyBytes = envInt64("POGREPORT_MAX_BODY_BYTES", c.Server.MaxBodyBytes)
}

// Metrics converts the page settings for the renderer.
func (c Config) Metrics() pogreport.Metrics {
	return pogreport.Metrics{
		PageW:  c.Page.Width,
		PageH:  c.Page.Height,
		Top:    c.Margins.Top,
		Bottom: c.Margins.Bottom,
		Left:   c.Margins.Left,
		Right:  c.Margins.Right,
	}
}

// Validate checks the page geometry and that configured font files exist.
func (c Config) Validate() error {
	if err := c.Metrics().Validate(); err != nil {
		return fmt.Errorf("page: %w", err)
	}
	for _, p := range []string{c.Fonts.RegularPath, c.Fonts.BoldPath, c.Fonts.ItalicPath, c.Fonts.BoldItalicPath, c.Fonts.MonoPath} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("font: %w", err)
		}
	}
	return nil
}

// Options builds renderer options from the config.
func (c Config) Options(log *zap.Logger) pogreport.Options {
	return pogreport.Options{
		Metrics: c.Metrics(),
		Fonts:   c.Fonts,
		Header:  c.Header,
		Footer:  c.Footer,
		Author:  c.Author,
		Logger:  log,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
