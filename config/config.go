// Package config loads the user configuration file.
package config

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config is the on-disk configuration. All fields are optional;
// missing values fall back to defaults.
type Config struct {
	// StoreDir is the directory the sketch store lives in.
	StoreDir string `yaml:"storeDir"`

	// Canvas size in pixels, matching the drawing surface.
	CanvasWidth  int `yaml:"canvasWidth"`
	CanvasHeight int `yaml:"canvasHeight"`

	Pen     Pen     `yaml:"pen"`
	Gesture Gesture `yaml:"gesture"`
}

// Pen is the default pen used for imported strokes that carry no
// style of their own.
type Pen struct {
	Color    string  `yaml:"color"` // hex, e.g. "#009b00"
	Style    string  `yaml:"style"` // solid, dashed, dotted
	MaxWidth float32 `yaml:"maxWidth"`
}

// Gesture configures the normalization pipeline.
type Gesture struct {
	SampleCount   int     `yaml:"sampleCount"`
	CanonicalSize float64 `yaml:"canonicalSize"`
}

func Default() Config {
	return Config{
		CanvasWidth:  1920,
		CanvasHeight: 1080,
		Pen: Pen{
			Color:    "#009b00",
			Style:    "solid",
			MaxWidth: 10,
		},
		Gesture: Gesture{
			SampleCount:   24,
			CanonicalSize: 100,
		},
	}
}

// Path returns the configuration file location, honoring the
// INKPAD_CONFIG environment override.
func Path() (string, error) {
	if p := os.Getenv("INKPAD_CONFIG"); p != "" {
		return p, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return path.Join(home, ".inkpad", "config.yaml"), nil
	}
	return path.Join(configDir, "inkpad", "config.yaml"), nil
}

// Load reads the configuration file, returning defaults when the file
// does not exist.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(p)
}

// LoadFile reads a configuration file from an explicit path.
func LoadFile(p string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, errors.Wrap(err, "can't read config file")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "can't parse config file")
	}

	return cfg, nil
}

// Save writes the configuration back to its file, creating the
// directory when needed.
func Save(cfg Config) error {
	p, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(path.Dir(p), 0700); err != nil {
		return errors.Wrap(err, "can't create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "can't serialize config")
	}

	return os.WriteFile(p, data, 0600)
}
