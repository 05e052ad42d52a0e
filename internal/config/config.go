// SPDX-License-Identifier: MIT

// Package config resolves solver and CLI settings with viper.
//
// Precedence, highest first: command-line flags, GAUSS_* environment
// variables (dashes become underscores, e.g. GAUSS_INFINITE_POLICY), the
// YAML file named by --config, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gausselim/format"
	"github.com/katalvlaran/gausselim/gauss"
	"github.com/spf13/viper"
)

// Setting keys. Flag names are identical so BindPFlags maps them one to one.
const (
	KeyEpsilon        = "epsilon"
	KeyDecimals       = "decimals"
	KeyInfinitePolicy = "infinite-policy"
	KeyConcurrency    = "concurrency"
	KeyDebug          = "debug"

	EnvPrefix = "GAUSS"
)

// ErrInvalid is returned when a setting holds an unusable value.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the resolved, validated configuration.
type Config struct {
	Epsilon        float64 `mapstructure:"epsilon"`
	Decimals       int     `mapstructure:"decimals"`
	InfinitePolicy string  `mapstructure:"infinite-policy"`
	Concurrency    int     `mapstructure:"concurrency"`
	Debug          bool    `mapstructure:"debug"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyEpsilon, gauss.DefaultEpsilon)
	v.SetDefault(KeyDecimals, format.DefaultDecimals)
	v.SetDefault(KeyInfinitePolicy, gauss.FreeVariables.String())
	v.SetDefault(KeyConcurrency, 0)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile merges the YAML config file at path into v.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against the ranges the solver and formatter accept.
func (c Config) Validate() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%s=%v must be finite and non-negative: %w", KeyEpsilon, c.Epsilon, ErrInvalid)
	}
	if c.Decimals < 0 || c.Decimals > 15 {
		return fmt.Errorf("%s=%d must be in [0, 15]: %w", KeyDecimals, c.Decimals, ErrInvalid)
	}
	if _, err := ParsePolicy(c.InfinitePolicy); err != nil {
		return err
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%s=%d must be >= 0: %w", KeyConcurrency, c.Concurrency, ErrInvalid)
	}

	return nil
}

// ParsePolicy maps a policy name to its gauss value. Matching ignores case.
func ParsePolicy(name string) (gauss.InfinitePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case gauss.FreeVariables.String():
		return gauss.FreeVariables, nil
	case gauss.ExactZero.String():
		return gauss.ExactZero, nil
	default:
		return 0, fmt.Errorf("%s=%q (want %s or %s): %w",
			KeyInfinitePolicy, name, gauss.FreeVariables, gauss.ExactZero, ErrInvalid)
	}
}

// SolverOptions converts c into gauss options. c must be valid.
func (c Config) SolverOptions() []gauss.Option {
	policy, _ := ParsePolicy(c.InfinitePolicy)
	opts := []gauss.Option{
		gauss.WithEpsilon(c.Epsilon),
		gauss.WithInfinitePolicy(policy),
	}
	if c.Concurrency > 0 {
		opts = append(opts, gauss.WithConcurrency(c.Concurrency))
	}

	return opts
}

// FormatOptions converts c into format options. c must be valid.
func (c Config) FormatOptions() []format.Option {
	return []format.Option{format.WithDecimals(c.Decimals)}
}
