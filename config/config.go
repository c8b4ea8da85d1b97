package config

import (
	"encoding/json"
	"image"
	"os"

	"github.com/adrg/xdg"
)

// Config holds runtime configuration for display and crop persistence.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Window geometry at startup.
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`

	// Crop persistence
	OutputDir       string `json:"output_dir"`
	TimestampFormat string `json:"timestamp_format"`

	// Overlay appearance
	Background     string `json:"background"`
	CircleColor    string `json:"circle_color"`
	RectangleColor string `json:"rectangle_color"`
	ProjectedColor string `json:"projected_color"`

	// Accept dialog preview bounds
	PreviewMaxWidth  int `json:"preview_max_width"`
	PreviewMaxHeight int `json:"preview_max_height"`

	// Screen region for screenshot sessions. A zero width or height
	// captures the whole screen.
	CaptureX      int `json:"capture_x"`
	CaptureY      int `json:"capture_y"`
	CaptureWidth  int `json:"capture_width"`
	CaptureHeight int `json:"capture_height"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		WindowWidth:      400,
		WindowHeight:     600,
		OutputDir:        ".",
		TimestampFormat:  "20060102-150405",
		Background:       "black",
		CircleColor:      "#ff0000",
		RectangleColor:   "#0000ff",
		ProjectedColor:   "#ffff00",
		PreviewMaxWidth:  480,
		PreviewMaxHeight: 360,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	p, err := xdg.ConfigFile("blitzcrop/config.json")
	if err != nil {
		return "blitzcrop.json"
	}
	return p
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.WindowWidth < 100 {
		c.WindowWidth = 400
	}
	if c.WindowHeight < 100 {
		c.WindowHeight = 600
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.TimestampFormat == "" {
		c.TimestampFormat = "20060102-150405"
	}
	if c.Background == "" {
		c.Background = "black"
	}
	if c.CircleColor == "" {
		c.CircleColor = "#ff0000"
	}
	if c.RectangleColor == "" {
		c.RectangleColor = "#0000ff"
	}
	if c.ProjectedColor == "" {
		c.ProjectedColor = "#ffff00"
	}
	if c.PreviewMaxWidth < 50 {
		c.PreviewMaxWidth = 480
	}
	if c.PreviewMaxHeight < 50 {
		c.PreviewMaxHeight = 360
	}
	if c.CaptureWidth < 0 {
		c.CaptureWidth = 0
	}
	if c.CaptureHeight < 0 {
		c.CaptureHeight = 0
	}
	return nil
}

// CaptureRect returns the configured screenshot region. ok is false when no
// region is set and the whole screen should be captured instead.
func (c *Config) CaptureRect() (area image.Rectangle, ok bool) {
	if c.CaptureWidth <= 0 || c.CaptureHeight <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(c.CaptureX, c.CaptureY, c.CaptureX+c.CaptureWidth, c.CaptureY+c.CaptureHeight), true
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
