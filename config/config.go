// Package config holds the viewer settings. Defaults are compiled in and a TOML or YAML
// file can override any of them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int32  `toml:"width" yaml:"width"`
	Height int32  `toml:"height" yaml:"height"`
	VSync  bool   `toml:"vsync" yaml:"vsync"`
	MSAA   bool   `toml:"msaa" yaml:"msaa"`
}

type Camera struct {
	FovDeg   float32 `toml:"fov_deg" yaml:"fov_deg"`
	Near     float32 `toml:"near" yaml:"near"`
	Far      float32 `toml:"far" yaml:"far"`
	Pitch    float32 `toml:"pitch" yaml:"pitch"`
	Yaw      float32 `toml:"yaw" yaml:"yaw"`
	RotSpeed float32 `toml:"rot_speed" yaml:"rot_speed"`
	// Distance is how far from the scene center the camera starts, in scene radii
	Distance float32 `toml:"distance" yaml:"distance"`
}

const (
	SceneSource_Ring  = "ring"
	SceneSource_Model = "model"
)

type Scene struct {
	// Source is either "ring" or "model"
	Source string `toml:"source" yaml:"source"`

	RingCount  int        `toml:"ring_count" yaml:"ring_count"`
	RingRadius float64    `toml:"ring_radius" yaml:"ring_radius"`
	RingCenter [3]float64 `toml:"ring_center" yaml:"ring_center"`

	ModelPath string `toml:"model_path" yaml:"model_path"`
}

type Config struct {
	Window Window `toml:"window" yaml:"window"`
	Camera Camera `toml:"camera" yaml:"camera"`
	Scene  Scene  `toml:"scene" yaml:"scene"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "Vorton Viewer",
			Width:  1280,
			Height: 720,
			VSync:  true,
			MSAA:   true,
		},
		Camera: Camera{
			FovDeg:   45,
			Near:     0.01,
			Far:      1000,
			Pitch:    -0.4,
			Yaw:      -1.57,
			RotSpeed: 0.5,
			Distance: 3,
		},
		Scene: Scene{
			Source:     SceneSource_Ring,
			RingCount:  2000,
			RingRadius: 1,
		},
	}
}

// Load reads the file at path over the defaults. The format is picked by extension:
// .toml, or .yaml/.yml. Unknown keys are an error so typos don't go unnoticed.
func Load(path string) (Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	conf := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&conf)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&conf)
		// An empty document leaves the defaults
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format '%s' for file '%s'. Use .toml, .yaml or .yml", ext, path)
	}

	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config file '%s'. Err: %w", path, err)
	}

	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file '%s'. Err: %w", path, err)
	}

	return conf, nil
}

func (c *Config) Validate() error {

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Camera.FovDeg <= 0 || c.Camera.FovDeg >= 180 {
		return fmt.Errorf("camera fov_deg must be in (0, 180), got %v", c.Camera.FovDeg)
	}

	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera needs 0 < near < far, got near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}

	if c.Camera.Distance <= 0 {
		return fmt.Errorf("camera distance must be positive, got %v", c.Camera.Distance)
	}

	switch c.Scene.Source {
	case SceneSource_Ring:
		if c.Scene.RingCount < 0 {
			return fmt.Errorf("scene ring_count can't be negative, got %d", c.Scene.RingCount)
		}
	case SceneSource_Model:
		if c.Scene.ModelPath == "" {
			return errors.New("scene source is 'model' but model_path is empty")
		}
	default:
		return fmt.Errorf("unknown scene source '%s'. Must be '%s' or '%s'", c.Scene.Source, SceneSource_Ring, SceneSource_Model)
	}

	return nil
}
