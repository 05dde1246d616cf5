package triangle

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/gogpu/wgpu"
	"gopkg.in/yaml.v3"
)

// Topology selects how the three triangle vertices are assembled.
type Topology string

const (
	// TopologyList draws three unindexed vertices as a triangle list.
	TopologyList Topology = "list"

	// TopologyStrip draws a triangle strip through a three-entry index buffer.
	TopologyStrip Topology = "strip"
)

// Shader variant names registered in the shader registry.
const (
	ShaderSetPrecompiled = "precompiled"
	ShaderSetSource      = "source"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfig   = "TRIANGLE_CONFIG"
	EnvShader   = "TRIANGLE_SHADER"
	EnvTopology = "TRIANGLE_TOPOLOGY"
	EnvLogLevel = "TRIANGLE_LOG"
)

// maxConfigSize bounds the config file read by LoadConfig.
const maxConfigSize = 64 * 1024

// Config holds everything needed to bootstrap the renderer.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`

	// Shader is the shader variant name: "precompiled" or "source".
	Shader string `yaml:"shader"`

	Topology Topology `yaml:"topology"`

	// PowerPreference is "high-performance", "low-power" or "none".
	PowerPreference string `yaml:"power_preference"`

	// ForceFallbackAdapter requests the software fallback adapter.
	ForceFallbackAdapter bool `yaml:"force_fallback_adapter"`

	ClearColor [4]float64 `yaml:"clear_color"`

	// LogLevel is "debug", "info", "warn", "error" or "off".
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration of the stock triangle program.
func DefaultConfig() Config {
	return Config{
		Title:           "triangle",
		Width:           800,
		Height:          600,
		Shader:          ShaderSetPrecompiled,
		Topology:        TopologyList,
		PowerPreference: "high-performance",
		ClearColor:      [4]float64{0.3, 0.3, 0.3, 1.0},
		LogLevel:        "off",
	}
}

// Option modifies a Config.
type Option func(*Config)

// WithSize sets the window and surface size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width, c.Height = width, height
	}
}

// WithShader selects the shader variant by name.
func WithShader(name string) Option {
	return func(c *Config) { c.Shader = name }
}

// WithTopology selects the primitive topology.
func WithTopology(t Topology) Option {
	return func(c *Config) { c.Topology = t }
}

// WithFallbackAdapter forces the software fallback adapter.
func WithFallbackAdapter(force bool) Option {
	return func(c *Config) { c.ForceFallbackAdapter = force }
}

// WithClearColor sets the background color.
func WithClearColor(r, g, b, a float64) Option {
	return func(c *Config) { c.ClearColor = [4]float64{r, g, b, a} }
}

// Apply returns a copy of c with opts applied.
func (c Config) Apply(opts ...Option) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LoadConfig reads a YAML file on top of DefaultConfig.
// Fields missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	info, err := os.Stat(path)
	if err != nil {
		return cfg, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return cfg, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrInvalidConfig, path, info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables looked up with
// lookup (os.LookupEnv in production).
func (c Config) ApplyEnv(lookup func(string) (string, bool)) Config {
	if v, ok := lookup(EnvShader); ok && v != "" {
		c.Shader = strings.ToLower(v)
	}
	if v, ok := lookup(EnvTopology); ok && v != "" {
		c.Topology = Topology(strings.ToLower(v))
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Shader != "" && !shaderRegistry.Has(c.Shader) {
		return fmt.Errorf("%w: unknown shader variant %q (available %v)",
			ErrInvalidConfig, c.Shader, shaderRegistry.Available())
	}
	switch c.Topology {
	case TopologyList, TopologyStrip:
	default:
		return fmt.Errorf("%w: unknown topology %q", ErrInvalidConfig, c.Topology)
	}
	if _, err := c.powerPreference(); err != nil {
		return err
	}
	if _, _, err := c.Level(); err != nil {
		return err
	}
	for i, v := range c.ClearColor {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: clear color component %d = %g", ErrInvalidConfig, i, v)
		}
	}
	return nil
}

func (c Config) powerPreference() (wgpu.PowerPreference, error) {
	switch c.PowerPreference {
	case "high-performance", "":
		return wgpu.PowerPreferenceHighPerformance, nil
	case "low-power":
		return wgpu.PowerPreferenceLowPower, nil
	case "none":
		return wgpu.PowerPreferenceNone, nil
	}
	return wgpu.PowerPreferenceNone, fmt.Errorf("%w: unknown power preference %q", ErrInvalidConfig, c.PowerPreference)
}

// Level maps LogLevel to a slog level. enabled is false for "off".
func (c Config) Level() (level slog.Level, enabled bool, err error) {
	switch c.LogLevel {
	case "off", "":
		return 0, false, nil
	case "debug":
		return slog.LevelDebug, true, nil
	case "info":
		return slog.LevelInfo, true, nil
	case "warn":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	}
	return 0, false, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
}
