// Package config loads flightwatch configuration from a TOML file with
// environment variable overrides, and resolves API credentials.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
)

type APIConfig struct {
	// URL is the flight API endpoint. The token may be stored here either
	// as plaintext or Fernet-encrypted (see credentials.go); the encryption
	// key itself is only ever read from FLIGHTWATCH_ENCRYPTION_KEY so it
	// never lands in the config file.
	URL   string `toml:"url" json:"url"`
	Token string `toml:"token" json:"token"`
	Limit int    `toml:"limit" json:"limit"`
}

type FetchConfig struct {
	Timeout float64 `toml:"timeout" json:"timeout"`
}

type Config struct {
	API   APIConfig   `toml:"api" json:"api"`
	Fetch FetchConfig `toml:"fetch" json:"fetch"`
}

func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Limit: 100,
		},
		Fetch: FetchConfig{
			Timeout: 15.0,
		},
	}
}

var (
	globalConfig *Config
	configMu     sync.RWMutex
)

func Get() Config {
	configMu.RLock()
	if c := globalConfig; c != nil {
		configMu.RUnlock()
		return *c
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()
	if globalConfig != nil {
		return *globalConfig
	}
	c := Load("")
	globalConfig = &c
	return c
}

func Reload() Config {
	configMu.Lock()
	defer configMu.Unlock()
	c := Load("")
	globalConfig = &c
	return c
}

func Load(path string) Config {
	if path == "" {
		path = ConfigFile()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return applyEnvOverrides(cfg)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return applyEnvOverrides(DefaultConfig())
	}

	return applyEnvOverrides(cfg)
}

func Save(cfg Config, path string) error {
	if path == "" {
		path = ConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return toml.NewEncoder(f).Encode(cfg)
}

func applyEnvOverrides(cfg Config) Config {
	if v := os.Getenv("FLIGHTWATCH_API_URL"); v != "" {
		cfg.API.URL = v
	}
	if v := os.Getenv("FLIGHTWATCH_API_TOKEN"); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv("FLIGHTWATCH_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.API.Limit = n
		}
	}
	if v := os.Getenv("FLIGHTWATCH_TIMEOUT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Fetch.Timeout = f
		}
	}
	return cfg
}
