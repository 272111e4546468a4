package config

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/refcode/pkg/httpserver"
	"github.com/dmitrymomot/refcode/pkg/reference"
)

// Config is the refgen application configuration.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"refgen"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Reference Reference
	HTTP      httpserver.Config
}

// Reference holds generation defaults and the limits enforced on untrusted callers.
type Reference struct {
	DefaultKind   reference.Kind `env:"REFGEN_DEFAULT_KIND" envDefault:"alphanumeric"`
	DefaultLength int            `env:"REFGEN_DEFAULT_LENGTH" envDefault:"8"`
	DefaultPrefix string         `env:"REFGEN_DEFAULT_PREFIX"`
	MaxLength     int            `env:"REFGEN_MAX_LENGTH" envDefault:"256"`
	MaxCount      int            `env:"REFGEN_MAX_COUNT" envDefault:"100"`
	// Seed makes pseudo-random kinds reproducible. Zero means unseeded.
	Seed uint64 `env:"REFGEN_SEED"`
}

// Validate reports out-of-range reference settings.
func (r Reference) Validate() error {
	var errs []error
	if r.DefaultLength <= 0 {
		errs = append(errs, fmt.Errorf("REFGEN_DEFAULT_LENGTH must be greater than 0, got %d", r.DefaultLength))
	}
	if r.MaxLength < r.DefaultLength {
		errs = append(errs, fmt.Errorf("REFGEN_MAX_LENGTH (%d) must not be less than REFGEN_DEFAULT_LENGTH (%d)", r.MaxLength, r.DefaultLength))
	}
	if r.MaxCount <= 0 {
		errs = append(errs, fmt.Errorf("REFGEN_MAX_COUNT must be greater than 0, got %d", r.MaxCount))
	}
	if len(errs) > 0 {
		return errors.Join(ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// GeneratorOptions returns the reference.Generator options implied by r.
func (r Reference) GeneratorOptions() []reference.Option {
	if r.Seed == 0 {
		return nil
	}
	return []reference.Option{reference.WithSeed(r.Seed)}
}

// LoadConfig loads the optional env files, parses the environment into a
// Config and validates it.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := LoadEnv(envFiles...); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := Load(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Reference.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
