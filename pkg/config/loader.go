package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided configuration struct
// based on its `env` field tags. A .env file in the working directory is
// loaded once per process before the first parse; a missing file is fine.
//
// Example:
//
//	type Config struct {
//		LogLevel    string `env:"ADDRCHECK_LOG_LEVEL" envDefault:"info"`
//		RegionsFile string `env:"ADDRCHECK_REGIONS_FILE"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadFrom loads the named env files before parsing, for tools that keep
// configuration outside the working directory. Unlike Load, a missing file
// is an error here because the caller asked for it by name.
func LoadFrom[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics when configuration cannot be parsed.
// Meant for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
