package config

import (
	"fmt"

	"github.com/alex-dev-neo/xtts-api-server/internal/numspell"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}
	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if c.Normalizer.Language != numspell.Language {
		return fmt.Errorf("normalizer.language %q is not supported (want %q)", c.Normalizer.Language, numspell.Language)
	}

	if err := c.Phonemes.validate(); err != nil {
		return fmt.Errorf("phonemes: %w", err)
	}
	if c.Phonemes.Source == PhonemeSourcePostgres && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required when phonemes.source is %q", PhonemeSourcePostgres)
	}

	if c.Parser.URL == "" {
		return fmt.Errorf("parser.url is required")
	}
	if c.Parser.Timeout <= 0 {
		return fmt.Errorf("parser.timeout must be > 0 (got %v)", c.Parser.Timeout)
	}

	return nil
}

func (p *PhonemesConfig) validate() error {
	switch p.Source {
	case PhonemeSourceFile:
		if p.CMUPath == "" {
			return fmt.Errorf("cmu_path is required when source is %q", PhonemeSourceFile)
		}
	case PhonemeSourcePostgres:
	default:
		return fmt.Errorf("source must be %q or %q (got %q)", PhonemeSourceFile, PhonemeSourcePostgres, p.Source)
	}
	if p.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0 (got %d)", p.CacheSize)
	}
	if p.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be >= 0 (got %v)", p.CacheTTL)
	}
	return nil
}
