package server

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the TOML server configuration.
//
// Example:
//
//	listen = ":8080"
//
//	[registry]
//	base_url = "https://repo.packagist.org"
//
//	[cache]
//	backend = "redis"
//	ttl = "12h"
//	redis_url = "redis://localhost:6379/0"
type Config struct {
	Listen   string         `toml:"listen"`
	Registry RegistryConfig `toml:"registry"`
	Cache    CacheConfig    `toml:"cache"`
}

// RegistryConfig points the server at a Packagist-style registry.
type RegistryConfig struct {
	// BaseURL of the registry; empty selects the public Packagist host.
	BaseURL string `toml:"base_url"`
}

// CacheConfig selects the response cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "mongo", or "none".
	Backend string `toml:"backend"`

	// TTL for cached registry responses.
	TTL duration `toml:"ttl"`

	// Dir is the cache directory for the file backend.
	Dir string `toml:"dir"`

	// RedisURL for the redis backend (redis://host:port/db).
	RedisURL string `toml:"redis_url"`

	// Mongo settings for the mongo backend.
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// duration wraps time.Duration so TOML values can be written as "12h".
type duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// Duration returns the underlying time.Duration.
func (d duration) Duration() time.Duration { return time.Duration(d) }

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Listen: ":8080",
		Cache: CacheConfig{
			Backend:         "file",
			TTL:             duration(time.Hour),
			MongoDatabase:   "packista",
			MongoCollection: "responses",
		},
	}
}

// LoadConfig reads a TOML config file, applying defaults for absent keys.
// Unknown keys are rejected so typos surface at startup.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case "file", "none":
	case "redis":
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("cache backend %q requires redis_url", c.Cache.Backend)
		}
	case "mongo":
		if c.Cache.MongoURI == "" {
			return fmt.Errorf("cache backend %q requires mongo_uri", c.Cache.Backend)
		}
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	return nil
}
