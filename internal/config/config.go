package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Phonemes   PhonemesConfig   `yaml:"phonemes"`
	Parser     ParserConfig     `yaml:"parser"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MaxBodyBytes limits the size of a normalize request.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"SERVER_MAX_BODY_BYTES" env-default:"1048576"`
	// RateLimitPerMinute caps normalize requests per client IP; zero disables the limit.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// The DSN is only required when phonemes are served from the database.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// NormalizerConfig holds text normalizer settings.
type NormalizerConfig struct {
	Language string `yaml:"language" env:"NORMALIZER_LANGUAGE" env-default:"ru"`
	// SubstitutionsPath points to a YAML substitution table; empty keeps the built-in table.
	SubstitutionsPath string `yaml:"substitutions_path" env:"NORMALIZER_SUBSTITUTIONS_PATH"`
	UnicodeNFC        bool   `yaml:"unicode_nfc"        env:"NORMALIZER_UNICODE_NFC"`
}

// Phoneme sources.
const (
	PhonemeSourceFile     = "file"
	PhonemeSourcePostgres = "postgres"
)

// PhonemesConfig selects and tunes the pronunciation dictionary.
type PhonemesConfig struct {
	Source  string `yaml:"source"   env:"PHONEMES_SOURCE"   env-default:"file"`
	CMUPath string `yaml:"cmu_path" env:"PHONEMES_CMU_PATH"`
	// CacheSize of 0 disables the lookup cache.
	CacheSize    int           `yaml:"cache_size"    env:"PHONEMES_CACHE_SIZE"`
	CacheTTL     time.Duration `yaml:"cache_ttl"     env:"PHONEMES_CACHE_TTL"`
	SpellUnknown bool          `yaml:"spell_unknown" env:"PHONEMES_SPELL_UNKNOWN"`
}

// ParserConfig holds the morphosyntactic parser (UDPipe) settings.
type ParserConfig struct {
	URL     string        `yaml:"url"     env:"PARSER_URL"     env-default:"https://lindat.mff.cuni.cz/services/udpipe/api"`
	Model   string        `yaml:"model"   env:"PARSER_MODEL"   env-default:"russian"`
	Timeout time.Duration `yaml:"timeout" env:"PARSER_TIMEOUT" env-default:"10s"`
}

// defaults holds values whose zero value is meaningful. cleanenv applies
// env-default to any zero field, so an explicit false or 0 in YAML would be lost.
func defaults() Config {
	return Config{
		Normalizer: NormalizerConfig{UnicodeNFC: true},
		Phonemes:   PhonemesConfig{CacheSize: 10000, SpellUnknown: true},
	}
}

// Origins returns the configured allowed origins as a list.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods returns the configured allowed methods as a list.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers returns the configured allowed headers as a list.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
