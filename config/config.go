// Package config loads the renderer's TOML configuration file, creating one
// with sane defaults the first time it's missing — grounded on the
// init-if-missing pattern used by desktop Go tools in the wild.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds everything a headless render driven by cmd/pathtrace needs.
type Config struct {
	Bounces    int `toml:"bounces"`
	RRStart    int `toml:"rr_start"`
	TileSize   int `toml:"tile_size"`
	Workers    int `toml:"workers"`
	Width      int `toml:"width"`
	Height     int `toml:"height"`
	OutputPath string `toml:"output_path"`
}

// Default returns the configuration the renderer ships with.
func Default() Config {
	return Config{
		Bounces:    8,
		RRStart:    4,
		TileSize:   64,
		Workers:    4,
		Width:      512,
		Height:     512,
		OutputPath: "render.png",
	}
}

// Load reads path, writing a default config file there first if it doesn't
// exist yet.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, Default()); err != nil {
			return Config{}, fmt.Errorf("config: initializing default at %s: %w", path, err)
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path in TOML form, creating parent directories as
// needed.
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: creating %s: %w", dir, err)
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(&cfg); err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
