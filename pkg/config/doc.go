// Package config loads application configuration from environment variables
// into plain Go structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// godotenv pulls a local .env file into the process environment (once, and
// only if present), and env.Parse fills struct fields from `env` tags with
// `envDefault` fallbacks.
//
// # Usage
//
//	type Config struct {
//		LogFormat   string `env:"ADDRCHECK_LOG_FORMAT" envDefault:"text"`
//		RegionsFile string `env:"ADDRCHECK_REGIONS_FILE"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// LoadFrom accepts explicit env file paths for tools and tests; there a
// missing file is an error, since the caller named it.
package config
