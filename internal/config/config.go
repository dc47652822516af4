// Package config assembles the application configuration from built-in
// defaults, an optional YAML file and ROULETTE_* environment variables, in
// that order of precedence (later wins).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"vertical-roulette/internal/roulette"
)

const (
	EnvConfig   = "ROULETTE_CONFIG"
	EnvLogLevel = "ROULETTE_LOG_LEVEL"
	EnvLogFile  = "ROULETTE_LOG_FILE"
	EnvSeed     = "ROULETTE_SEED"
	EnvPeriod   = "ROULETTE_PERIOD"

	DotEnvFile = ".env"
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Roulette RouletteConfig `yaml:"roulette"`
	Log      LogConfig      `yaml:"log"`
}

type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type RouletteConfig struct {
	Labels         []string      `yaml:"labels"`
	Winner         string        `yaml:"winner"`
	Period         time.Duration `yaml:"period"`
	WinProbability float64       `yaml:"win_probability"`
	Seed           uint64        `yaml:"seed"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "ルーレット",
			Width:  600,
			Height: 500,
		},
		Roulette: RouletteConfig{
			Labels: []string{
				"+90 kg", "-70 kg", "+70 kg", "-90 kg", "+80 kg",
				"-60 kg", "+60 kg", "-80 kg", "+50 kg", "-50 kg",
			},
			Winner:         "+90 kg",
			Period:         roulette.DefaultPeriod,
			WinProbability: roulette.DefaultWinProbability,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads .env (if present), then the YAML file at path, falling back to
// $ROULETTE_CONFIG when path is empty, then environment overrides.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", DotEnvFile, err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Roulette.Seed = seed
	}
	if v := os.Getenv(EnvPeriod); v != "" {
		period, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPeriod, err)
		}
		c.Roulette.Period = period
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	if err := c.Options().Validate(); err != nil {
		return err
	}
	if _, err := c.Catalog(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Catalog() (*roulette.Catalog, error) {
	catalog, err := roulette.NewCatalog(c.Roulette.Labels, c.Roulette.Winner)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}

func (c *Config) Options() roulette.Options {
	return roulette.Options{
		Period:         c.Roulette.Period,
		WinProbability: c.Roulette.WinProbability,
		Seed:           c.Roulette.Seed,
	}
}
