package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Grid shapes.
const (
	ShapeHexagon       = "hexagon"
	ShapeParallelogram = "parallelogram"
)

// Config holds all renderer configuration
type Config struct {
	Image  ImageConfig  `yaml:"image"`
	Grid   GridConfig   `yaml:"grid"`
	Finder FinderConfig `yaml:"finder"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// ImageConfig holds raster settings
type ImageConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Background  string `yaml:"background"`  // #RRGGBB
	Supersample int    `yaml:"supersample"` // render scale before downsampling
	Margin      int    `yaml:"margin"`      // pixels kept free around a fitted grid, 0 allowed
}

// GridConfig holds grid geometry settings
type GridConfig struct {
	Shape      string  `yaml:"shape"`  // hexagon | parallelogram
	Radius     int     `yaml:"radius"` // hexagon shape, 0 is a single cell
	QMin       int     `yaml:"q_min"`  // parallelogram shape
	QMax       int     `yaml:"q_max"`
	RMin       int     `yaml:"r_min"`
	RMax       int     `yaml:"r_max"`
	HexSize    float64 `yaml:"hex_size"` // 0 fits the grid to the image
	DrawCoords *bool   `yaml:"draw_coords"`
	Outline    string  `yaml:"outline"`
	LabelColor string  `yaml:"label_color"` // empty picks by contrast
	LineWidth  float64 `yaml:"line_width"` // 0 draws no outlines
}

// FinderConfig holds finder pattern settings
type FinderConfig struct {
	Disabled bool `yaml:"disabled"`
	Radius   int  `yaml:"radius"` // 0 uses grid radius
}

// OutputConfig holds output settings
type OutputConfig struct {
	Path        string `yaml:"path"` // .png, .jpg/.jpeg or .bmp
	JPEGQuality int    `yaml:"jpeg_quality"`
	ExportPath  string `yaml:"export_path"` // optional JSON geometry dump
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Labels reports whether cell coordinates are drawn.
func (g GridConfig) Labels() bool { return g.DrawCoords == nil || *g.DrawCoords }

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := preset()
	cfg.applyDefaults()
	return &cfg
}

// preset holds the defaults for fields where zero is a meaningful value.
// They are set before decoding so an explicit 0 in the file survives.
func preset() Config {
	var cfg Config
	cfg.Image.Margin = 10
	cfg.Grid.Radius = 10
	cfg.Grid.LineWidth = 1
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := preset()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Image.Width == 0 {
		cfg.Image.Width = 600
	}
	if cfg.Image.Height == 0 {
		cfg.Image.Height = 600
	}
	if cfg.Image.Background == "" {
		cfg.Image.Background = "#FFFFFF"
	}
	if cfg.Image.Supersample == 0 {
		cfg.Image.Supersample = 2
	}
	cfg.Grid.Shape = strings.ToLower(strings.TrimSpace(cfg.Grid.Shape))
	if cfg.Grid.Shape == "" {
		cfg.Grid.Shape = ShapeHexagon
	}
	if cfg.Grid.Outline == "" {
		cfg.Grid.Outline = "#000000"
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = "hex_grid_visualization.png"
	}
	if cfg.Output.JPEGQuality == 0 {
		cfg.Output.JPEGQuality = 95
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate checks value ranges after defaults have been applied.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Image.Width < 1 || cfg.Image.Height < 1 {
		errs = append(errs, fmt.Errorf("image size %dx%d must be positive", cfg.Image.Width, cfg.Image.Height))
	}
	if cfg.Image.Supersample < 1 || cfg.Image.Supersample > 8 {
		errs = append(errs, fmt.Errorf("image.supersample %d must be within 1..8", cfg.Image.Supersample))
	}
	if cfg.Image.Margin < 0 {
		errs = append(errs, fmt.Errorf("image.margin %d must not be negative", cfg.Image.Margin))
	}
	switch cfg.Grid.Shape {
	case ShapeHexagon:
		if cfg.Grid.Radius < 0 {
			errs = append(errs, fmt.Errorf("grid.radius %d must not be negative", cfg.Grid.Radius))
		}
	case ShapeParallelogram:
		if cfg.Grid.QMax < cfg.Grid.QMin || cfg.Grid.RMax < cfg.Grid.RMin {
			errs = append(errs, fmt.Errorf("grid range q[%d,%d] r[%d,%d] is empty",
				cfg.Grid.QMin, cfg.Grid.QMax, cfg.Grid.RMin, cfg.Grid.RMax))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown grid.shape %q", cfg.Grid.Shape))
	}
	if cfg.Grid.HexSize < 0 {
		errs = append(errs, fmt.Errorf("grid.hex_size %v must not be negative", cfg.Grid.HexSize))
	}
	if cfg.Grid.LineWidth < 0 {
		errs = append(errs, fmt.Errorf("grid.line_width %v must not be negative", cfg.Grid.LineWidth))
	}
	if cfg.Finder.Radius < 0 {
		errs = append(errs, fmt.Errorf("finder.radius %d must not be negative", cfg.Finder.Radius))
	}
	if cfg.Output.JPEGQuality < 1 || cfg.Output.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("output.jpeg_quality %d must be within 1..100", cfg.Output.JPEGQuality))
	}
	return errors.Join(errs...)
}

// FinderRadius returns the grid radius the finder patterns are placed for.
func (cfg *Config) FinderRadius() int {
	if cfg.Finder.Radius > 0 {
		return cfg.Finder.Radius
	}
	if cfg.Grid.Shape == ShapeParallelogram {
		return min(-cfg.Grid.QMin, cfg.Grid.QMax, -cfg.Grid.RMin, cfg.Grid.RMax)
	}
	return cfg.Grid.Radius
}
