// Package config loads the server configuration from a TOML file with
// environment variable overrides for deployment secrets.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full server configuration. Every field has a usable
// default, so an empty file (or no file at all) starts a dev server with
// in-memory storage and no caching.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Cache   CacheConfig   `toml:"cache"`
	AI      AIConfig      `toml:"ai"`
}

type ServerConfig struct {
	Addr      string `toml:"addr"`
	UploadDir string `toml:"upload_dir"`
}

// StorageConfig selects the persistence backend: "memory" or "mongo".
type StorageConfig struct {
	Backend  string `toml:"backend"`
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// CacheConfig selects the AI response cache: "null", "file", or "redis".
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	RedisDB   int      `toml:"redis_db"`
	TTL       Duration `toml:"ttl"`
}

// Duration decodes TOML duration strings like "24h" or "90m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

type AIConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

// Default returns the development configuration.
func Default() Config {
	return Config{
		Server:  ServerConfig{Addr: ":8080", UploadDir: "uploads"},
		Storage: StorageConfig{Backend: "memory", Database: "cardpress"},
		Cache:   CacheConfig{Backend: "null", TTL: Duration{24 * time.Hour}},
	}
}

// Load reads path (when non-empty), applies environment overrides, and
// validates the result. A missing file is only an error when a path was
// given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config file: %w", err)
		}
	}
	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv lets deployments inject secrets without writing them to disk.
func applyEnv(cfg *Config) {
	if v := os.Getenv("CARDPRESS_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CARDPRESS_MONGO_URI"); v != "" {
		cfg.Storage.MongoURI = v
	}
	if v := os.Getenv("CARDPRESS_REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("CARDPRESS_AI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("CARDPRESS_AI_BASE_URL"); v != "" {
		cfg.AI.BaseURL = v
	}
}

func (c Config) validate() error {
	switch c.Storage.Backend {
	case "memory":
	case "mongo":
		if c.Storage.MongoURI == "" {
			return fmt.Errorf("storage backend %q requires mongo_uri", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("unknown storage backend %q (want memory or mongo)", c.Storage.Backend)
	}

	switch c.Cache.Backend {
	case "null", "file":
	case "redis":
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("cache backend %q requires redis_addr", c.Cache.Backend)
		}
	default:
		return fmt.Errorf("unknown cache backend %q (want null, file, or redis)", c.Cache.Backend)
	}
	return nil
}
