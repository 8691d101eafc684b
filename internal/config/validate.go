package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.RateLimit < 0 || c.Server.AuthRateLimit < 0 {
		errs = append(errs, errors.New("rate limits cannot be negative"))
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if c.Database.URL == "" {
		errs = append(errs, errors.New("database.url is required"))
	}
	if c.Database.PoolSize < 1 {
		errs = append(errs, fmt.Errorf("database.pool_size must be at least 1, got %d", c.Database.PoolSize))
	}
	if c.Redis.URL == "" {
		errs = append(errs, errors.New("redis.url is required"))
	}
	if c.Redis.SessionTTL <= 0 {
		errs = append(errs, errors.New("redis.session_ttl must be positive"))
	}
	if c.Redis.CacheTTL < 0 {
		errs = append(errs, errors.New("redis.cache_ttl cannot be negative"))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", c.Logging.Format))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err))
	}

	return errors.Join(errs...)
}
