// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing — better to crash at boot than to silently use a wrong default.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// StoragePath is the filesystem path to the SQLite .db file that holds
	// the roster snapshot.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`

	// StorageKey names the slot the snapshot is written under. Two rosters
	// can share one database file by using different keys.
	StorageKey string `yaml:"storage_key" env:"STORAGE_KEY" env-default:"students"`

	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad reads, validates, and returns the application config.
//
// Functions prefixed with "Must" are allowed to fatal on failure. Callers
// do not need to check a returned error — if this function returns, the
// config is valid.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return cfg
}
