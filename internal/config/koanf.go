package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const ConfigPathEnvVar = "CONFIG_PATH"

var defaultConfigPaths = []string{"config.yaml", "config.yml"}

// envMappings maps environment variables onto config keys. PORT,
// DATABASE_URL, REDIS_URL, DB_POOL_SIZE and CACHE_TTL keep their
// historical names.
var envMappings = map[string]string{
	"port":             "server.port",
	"read_timeout":     "server.read_timeout",
	"write_timeout":    "server.write_timeout",
	"request_timeout":  "server.request_timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"cors_origins":     "server.cors_origins",
	"rate_limit":       "server.rate_limit",
	"auth_rate_limit":  "server.auth_rate_limit",

	"database_url":       "database.url",
	"db_pool_size":       "database.pool_size",
	"db_connect_retries": "database.connect_retries",
	"db_connect_timeout": "database.connect_timeout",

	"redis_url":   "redis.url",
	"session_ttl": "redis.session_ttl",
	"cache_ttl":   "redis.cache_ttl",

	"catalog_path": "catalog.path",
	"catalog_seed": "catalog.seed",

	"log_level":  "log.level",
	"log_format": "log.format",

	"app_timezone": "timezone",
}

var sliceConfigPaths = []string{"server.cors_origins"}

// Load layers struct defaults, the YAML file named by CONFIG_PATH (or
// config.yaml in the working directory) and mapped environment variables,
// then validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range defaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// processSliceFields splits comma-separated strings coming from the
// environment into lists.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok || s == "" {
			continue
		}
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envTransformFunc returns "" for unmapped variables so they are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
