package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/2beens/liftload/internal/plates"
	"github.com/2beens/liftload/internal/workout"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

const (
	defaultLogLevel          = "info"
	defaultBarbellWeightKg   = 20
	defaultBarbellWeightLbs  = 45
	defaultUnknownBrandRatio = 1.0
	defaultMetricsNamespace  = "liftload"
)

type Config struct {
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// training
	WeightUnit    workout.WeightUnit `toml:"weight_unit"`
	BarbellWeight float64            `toml:"barbell_weight"`
	Plates        []float64          `toml:"plates"`
	// UnknownBrandRatio is assumed for equipment brands without an equivalency
	UnknownBrandRatio float64 `toml:"unknown_brand_ratio"`
	// metrics
	MetricsNamespace string `toml:"metrics_namespace"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config at path from the OS filesystem.
func Load(env, path string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), env, path)
}

// LoadFs reads the config table of env, then applies LIFTLOAD_* environment
// overrides and defaults, and validates the result.
func LoadFs(fs afero.Fs, env, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var t Toml
	if _, err := toml.Decode(string(data), &t); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s not found", env)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides reads:
//
//	LIFTLOAD_LOG_LEVEL, LIFTLOAD_LOGS_PATH, LIFTLOAD_LOG_TO_STDOUT,
//	LIFTLOAD_LOG_FORMAT_JSON, LIFTLOAD_SENTRY_ENABLED, LIFTLOAD_WEIGHT_UNIT,
//	LIFTLOAD_BARBELL_WEIGHT, LIFTLOAD_UNKNOWN_BRAND_RATIO
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LIFTLOAD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LIFTLOAD_LOGS_PATH"); v != "" {
		cfg.LogsPath = v
	}
	if v := os.Getenv("LIFTLOAD_WEIGHT_UNIT"); v != "" {
		cfg.WeightUnit = workout.WeightUnit(strings.ToLower(v))
	}
	return multierr.Combine(
		envBool("LIFTLOAD_LOG_TO_STDOUT", &cfg.LogToStdout),
		envBool("LIFTLOAD_LOG_FORMAT_JSON", &cfg.LogFormatJSON),
		envBool("LIFTLOAD_SENTRY_ENABLED", &cfg.SentryEnabled),
		envFloat("LIFTLOAD_BARBELL_WEIGHT", &cfg.BarbellWeight),
		envFloat("LIFTLOAD_UNKNOWN_BRAND_RATIO", &cfg.UnknownBrandRatio),
	)
}

func envBool(name string, dst *bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}

func envFloat(name string, dst *float64) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = f
	return nil
}

// Default is the config used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.WeightUnit == "" {
		c.WeightUnit = workout.UnitKg
	}
	if c.BarbellWeight == 0 {
		c.BarbellWeight = defaultBarbellWeightKg
		if c.WeightUnit == workout.UnitLbs {
			c.BarbellWeight = defaultBarbellWeightLbs
		}
	}
	if c.UnknownBrandRatio == 0 {
		c.UnknownBrandRatio = defaultUnknownBrandRatio
	}
	if c.MetricsNamespace == "" {
		c.MetricsNamespace = defaultMetricsNamespace
	}
}

func (c *Config) Validate() error {
	var err error
	if !c.WeightUnit.IsValid() {
		err = multierr.Append(err, fmt.Errorf("weight_unit: unknown unit %q", c.WeightUnit))
	}
	if c.BarbellWeight < 0 {
		err = multierr.Append(err, errors.New("barbell_weight: must not be negative"))
	}
	for _, p := range c.Plates {
		if p <= 0 {
			err = multierr.Append(err, fmt.Errorf("plates: invalid plate %g", p))
		}
	}
	if c.UnknownBrandRatio <= 0 {
		err = multierr.Append(err, errors.New("unknown_brand_ratio: must be positive"))
	}
	return err
}

// Settings returns the engine settings: the configured plates, or the
// standard plates of the weight unit.
func (c *Config) Settings() workout.Settings {
	p := c.Plates
	if len(p) == 0 {
		p = plates.Denominations(c.WeightUnit)
	}
	return workout.Settings{
		WeightUnit:    c.WeightUnit,
		BarbellWeight: c.BarbellWeight,
		Plates:        p,
	}
}
