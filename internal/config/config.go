package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// StoreConfig points at the record store. DSN is the endpoint; Credential is
// the access secret for credentialed backends (the redis cache reuses it as
// its password). A missing DSN surfaces as a connectivity error at startup,
// never a panic.
type StoreConfig struct {
	DSN        string `mapstructure:"dsn"`
	Credential string `mapstructure:"credential"`
}

// CacheConfig selects the query-result cache backend.
type CacheConfig struct {
	Type      string        `mapstructure:"type"` // "memory" or "redis"
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
}

// LogConfig holds the optional file sink for structured logs.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Load reads configuration from a local .env (if present) and the
// environment, applies defaults, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err == nil {
		log.Println("[config] loaded .env")
	}

	v := viper.New()
	v.SetEnvPrefix("PRICEBOOK")
	v.AutomaticEnv()
	setDefaults(v)

	// Bind explicitly so nested keys resolve from PRICEBOOK_* variables.
	for _, key := range []string{
		"server.port", "store.dsn", "store.credential",
		"cache.type", "cache.redis_addr", "cache.ttl", "log.file",
	} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("store.dsn", "pricebook.db")
	v.SetDefault("store.credential", "")
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.ttl", "15m")
	v.SetDefault("log.file", "")
}

func validate(cfg *Config) error {
	if cfg.Store.DSN == "" {
		return fmt.Errorf("store dsn is required (set PRICEBOOK_STORE_DSN)")
	}
	if cfg.Cache.Type != "memory" && cfg.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", cfg.Cache.Type)
	}
	if cfg.Cache.Type == "redis" && cfg.Cache.RedisAddr == "" {
		return fmt.Errorf("redis address is required when cache type is 'redis' (set PRICEBOOK_CACHE_REDIS_ADDR)")
	}
	return nil
}
