package spark

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds window settings, the engine tick period, and named emitter
// presets, loaded from YAML.
type Config struct {
	Window   WindowConfig             `yaml:"window"`
	Engine   EngineConfig             `yaml:"engine"`
	Emitters map[string]EmitterPreset `yaml:"emitters"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"show_fps"`
}

// EngineConfig holds loop timing settings.
type EngineConfig struct {
	TickMillis int `yaml:"tick_millis"`
}

// EmitterPreset is the on-disk form of an emitter configuration.
type EmitterPreset struct {
	Capacity int       `yaml:"capacity"`
	Colors   []string  `yaml:"colors"` // hex, e.g. "#e5484d"
	Position []float64 `yaml:"position"`
	Size     float64   `yaml:"size"`
	Speed    float64   `yaml:"speed"`
	Spread   struct {
		Low  float64 `yaml:"low"`
		High float64 `yaml:"high"`
	} `yaml:"spread"`
	Seed bool `yaml:"seed"`
}

// LoadConfig parses the embedded defaults, then overlays the YAML file at
// path if one is given. Fields present in the file overwrite the defaults;
// everything else keeps its default value.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("spark: parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("spark: reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("spark: parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// TickInterval returns the configured engine tick period.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Engine.TickMillis) * time.Millisecond
}

// RunConfig returns the window settings as a RunConfig for Run.
func (c *Config) RunConfig() RunConfig {
	return RunConfig{
		Title:   c.Window.Title,
		Width:   c.Window.Width,
		Height:  c.Window.Height,
		ShowFPS: c.Window.ShowFPS,
	}
}

// Emitter resolves a named preset into a capacity and EmitterSettings.
// Returns a ConfigError if the preset does not exist or a color fails to
// parse.
func (c *Config) Emitter(name string) (int, EmitterSettings, error) {
	preset, ok := c.Emitters[name]
	if !ok {
		return 0, EmitterSettings{}, configErrorf("unknown emitter preset %q", name)
	}

	settings := EmitterSettings{
		Size:   preset.Size,
		Speed:  preset.Speed,
		Spread: Range{Min: preset.Spread.Low, Max: preset.Spread.High},
		Seed:   preset.Seed,
	}
	if len(preset.Position) >= 2 {
		settings.Position = Vec2{X: preset.Position[0], Y: preset.Position[1]}
	}
	for _, hex := range preset.Colors {
		col, err := ParseHexColor(hex)
		if err != nil {
			return 0, EmitterSettings{}, err
		}
		settings.Colors = append(settings.Colors, col)
	}
	return preset.Capacity, settings, nil
}

// ParseHexColor parses "#rgb" or "#rrggbb" into a Color with full alpha.
// Returns a ConfigError for anything else.
func ParseHexColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, configErrorf("invalid hex color %q", s)
	}
	digits := s[1:]
	if len(digits) == 3 {
		// Expand #rgb shorthand to #rrggbb.
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	if len(digits) != 6 {
		return Color{}, configErrorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, configErrorf("invalid hex color %q", s)
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: 1,
	}, nil
}
