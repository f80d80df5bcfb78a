package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the selection tool. Fields may be
// loaded from a JSON file and overridden by command-line flags. The selection
// rectangle itself is deliberately never persisted.
type Config struct {
	Debug bool `json:"debug"`

	// Selection appearance
	FillColor   string `json:"fill_color"`
	BorderColor string `json:"border_color"`

	// Output template; placeholders like {abs.left} and {rel.width} are
	// substituted from the latest selection snapshot.
	Template string `json:"template"`

	// Playback / preview
	FPS         int  `json:"fps"`
	MaxPreviewW int  `json:"max_preview_w"`
	MaxPreviewH int  `json:"max_preview_h"`
	DarkMode    bool `json:"dark_mode"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:       false,
		FillColor:   "#ff0000",
		BorderColor: "#ff0000",
		Template:    "crop={abs.width}:{abs.height}:{abs.left}:{abs.top}",
		FPS:         10,
		MaxPreviewW: 800,
		MaxPreviewH: 450,
		DarkMode:    false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.FillColor == "" {
		c.FillColor = "#ff0000"
	}
	if c.BorderColor == "" {
		c.BorderColor = "#ff0000"
	}
	if c.Template == "" {
		c.Template = DefaultConfig().Template
	}
	if c.FPS < 1 || c.FPS > 60 {
		c.FPS = 10
	}
	if c.MaxPreviewW < 100 {
		c.MaxPreviewW = 800
	}
	if c.MaxPreviewH < 100 {
		c.MaxPreviewH = 450
	}
	return nil
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
