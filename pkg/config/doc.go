// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 into a
// small generic API: Load parses the environment into any annotated struct,
// after loading a default .env file (if present) exactly once per process.
// MustLoad panics on failure for configuration the process cannot run
// without.
//
// # Usage
//
//	type Config struct {
//		HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
//		LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
//		CatalogPath string `env:"CATALOG_PATH"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
