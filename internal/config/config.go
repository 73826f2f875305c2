package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/eve-anki/shipdeck/internal/sde"
	"github.com/eve-anki/shipdeck/internal/ships"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings
const (
	EnvConfig   = "SHIPDECK_CONFIG"
	EnvSDE      = "SHIPDECK_SDE"
	EnvRenders  = "SHIPDECK_RENDERS"
	EnvCatalog  = "SHIPDECK_CATALOG"
	EnvCards    = "SHIPDECK_CARDS"
	EnvLogLevel = "SHIPDECK_LOG_LEVEL"
)

// Config holds settings shared by all commands
type Config struct {
	Paths          Paths          `yaml:"paths"`
	LogLevel       string         `yaml:"log_level"`
	Attributes     Attributes     `yaml:"attributes"`
	Classification Classification `yaml:"classification"`
	TechLevels     map[int]string `yaml:"tech_levels"`
}

// Paths locates inputs and outputs, relative to the working directory
type Paths struct {
	SDE     string `yaml:"sde"`
	Renders string `yaml:"renders"`
	Catalog string `yaml:"catalog"`
	Cards   string `yaml:"cards"`
}

// Attributes holds the dogma attribute IDs read for every ship
type Attributes struct {
	MetaLevel int64 `yaml:"meta_level"`
	TechLevel int64 `yaml:"tech_level"`
}

// Classification holds the name lists used to flag skinned ships
type Classification struct {
	SkinnedShips    []string `yaml:"skinned_ships"`
	NotSkinnedShips []string `yaml:"not_skinned_ships"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Paths: Paths{
			SDE:     "data/eve.sqlite",
			Renders: "data/Renders",
			Catalog: "output/ships.csv",
			Cards:   "output/anki",
		},
		LogLevel: "info",
		Attributes: Attributes{
			MetaLevel: sde.AttributeMetaLevel,
			TechLevel: sde.AttributeTechLevel,
		},
		Classification: Classification{
			SkinnedShips:    append([]string(nil), ships.DefaultSkinnedShips...),
			NotSkinnedShips: append([]string(nil), ships.DefaultNotSkinnedShips...),
		},
		TechLevels: map[int]string{
			1: "Tech I",
			2: "Tech II",
			3: "Tech III",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// any) and environment overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		slog.Debug("Loaded config file", "path", path)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	overrides := []struct {
		env    string
		target *string
	}{
		{EnvSDE, &c.Paths.SDE},
		{EnvRenders, &c.Paths.Renders},
		{EnvCatalog, &c.Paths.Catalog},
		{EnvCards, &c.Paths.Cards},
		{EnvLogLevel, &c.LogLevel},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(os.Getenv(o.env)); v != "" {
			*o.target = v
		}
	}
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	var errs []error
	if c.Paths.SDE == "" {
		errs = append(errs, errors.New("paths.sde must not be empty"))
	}
	if c.Paths.Renders == "" {
		errs = append(errs, errors.New("paths.renders must not be empty"))
	}
	if c.Paths.Catalog == "" {
		errs = append(errs, errors.New("paths.catalog must not be empty"))
	}
	if c.Paths.Cards == "" {
		errs = append(errs, errors.New("paths.cards must not be empty"))
	}
	if c.Attributes.MetaLevel <= 0 || c.Attributes.TechLevel <= 0 {
		errs = append(errs, errors.New("attributes.meta_level and attributes.tech_level must be positive"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Rules returns the classification rules built from the configured name lists
func (c *Config) Rules() ships.Rules {
	return ships.NewRules(c.Classification.SkinnedShips, c.Classification.NotSkinnedShips)
}

// TechLevelNames returns the configured tech level to meta group mapping
func (c *Config) TechLevelNames() ships.TechLevelNames {
	return ships.NewTechLevelNames(c.TechLevels)
}

// ShipAttributes returns the configured attribute IDs
func (c *Config) ShipAttributes() ships.Attributes {
	return ships.Attributes{
		MetaLevel: c.Attributes.MetaLevel,
		TechLevel: c.Attributes.TechLevel,
	}
}
