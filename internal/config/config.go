// Package config loads server settings from defaults, an optional YAML file
// and environment overrides, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is read when present and no explicit path is given.
	DefaultConfigPath = "numstat.yml"

	defaultPort           = 8080
	defaultGinMode        = "release"
	defaultRateLimit      = 60
	defaultRequestTimeout = 10 * time.Second
	defaultMaxInputLength = 256
	defaultReadTimeout    = 15 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultCacheEntries   = 1000
)

// Config holds runtime settings for the web server.
type Config struct {
	Port            int           `yaml:"port"`
	GinMode         string        `yaml:"gin_mode"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	MaxInputLength  int           `yaml:"max_input_length"`
	MaxMagnitude    uint64        `yaml:"max_magnitude"`
	EnableHSTS      bool          `yaml:"enable_hsts"`
	EnableSwagger   bool          `yaml:"enable_swagger"`
	CacheTTL        time.Duration `yaml:"cache_ttl"` // zero, the default, disables the report cache
	CacheEntries    int           `yaml:"cache_entries"`
	Redis           RedisConfig   `yaml:"redis"`
}

// RedisConfig enables the shared rate limiter when Addr is set.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:            defaultPort,
		GinMode:         defaultGinMode,
		AllowedOrigins:  []string{"http://localhost:8080"},
		RateLimitPerMin: defaultRateLimit,
		RequestTimeout:  defaultRequestTimeout,
		ReadTimeout:     defaultReadTimeout,
		WriteTimeout:    defaultWriteTimeout,
		IdleTimeout:     defaultIdleTimeout,
		MaxInputLength:  defaultMaxInputLength,
		EnableSwagger:   true,
		CacheEntries:    defaultCacheEntries,
	}
}

// Load applies the YAML file at path (if any) and then the environment on
// top of the defaults. An empty path reads DefaultConfigPath when it exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case explicit || !os.IsNotExist(err):
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(content []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d, expected 1-65535", c.Port)
	}
	if c.RateLimitPerMin < 1 {
		return fmt.Errorf("invalid rate_limit_per_min %d, expected >= 1", c.RateLimitPerMin)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("invalid request_timeout %s, expected > 0", c.RequestTimeout)
	}
	if c.MaxInputLength < 1 {
		return fmt.Errorf("invalid max_input_length %d, expected >= 1", c.MaxInputLength)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("invalid cache_ttl %s, expected >= 0", c.CacheTTL)
	}
	if c.CacheEntries < 1 {
		return fmt.Errorf("invalid cache_entries %d, expected >= 1", c.CacheEntries)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("invalid redis.db %d, expected >= 0", c.Redis.DB)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin_mode %q, expected debug, release or test", c.GinMode)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

type lookupFunc func(key string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v, ok := get("GIN_MODE"); ok {
		cfg.GinMode = v
	}
	if v, ok := get("ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = splitList(v)
	}
	if v, ok := get("RATE_LIMIT_PER_MIN"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_PER_MIN %q: %w", v, err)
		}
		cfg.RateLimitPerMin = n
	}
	if v, ok := get("REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", v, err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := get("MAX_INPUT_LENGTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MAX_INPUT_LENGTH %q: %w", v, err)
		}
		cfg.MaxInputLength = n
	}
	if v, ok := get("MAX_MAGNITUDE"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_MAGNITUDE %q: %w", v, err)
		}
		cfg.MaxMagnitude = n
	}
	if v, ok := get("ENABLE_HSTS"); ok {
		cfg.EnableHSTS = v == "true"
	}
	if v, ok := get("ENABLE_SWAGGER"); ok {
		cfg.EnableSwagger = v == "true"
	}
	if v, ok := get("CACHE_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CACHE_TTL %q: %w", v, err)
		}
		cfg.CacheTTL = d
	}
	if v, ok := get("CACHE_ENTRIES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CACHE_ENTRIES %q: %w", v, err)
		}
		cfg.CacheEntries = n
	}
	if v, ok := get("REDIS_ADDR"); ok {
		cfg.Redis.Addr = v
	}
	if v, ok := get("REDIS_PASSWORD"); ok {
		cfg.Redis.Password = v
	}
	if v, ok := get("REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.Redis.DB = db
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
