package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PHONEMES_CMU_PATH", "/data/cmudict.dict")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

log:
  level: "debug"
  format: "text"

cors:
  allowed_origins: "https://a.example, https://b.example"

normalizer:
  language: "ru"
  substitutions_path: "/etc/normalizer/subs.yaml"
  unicode_nfc: false

phonemes:
  source: "postgres"
  cache_size: 500
  cache_ttl: "1h"
  spell_unknown: false

parser:
  url: "http://udpipe:8001"
  model: "russian-syntagrus"
  timeout: "3s"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.MaxBodyBytes != 1<<20 {
		t.Errorf("server.max_body_bytes = %d, want default %d", cfg.Server.MaxBodyBytes, 1<<20)
	}

	// Database
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}

	// Normalizer
	if cfg.Normalizer.SubstitutionsPath != "/etc/normalizer/subs.yaml" {
		t.Errorf("normalizer.substitutions_path = %q", cfg.Normalizer.SubstitutionsPath)
	}
	if cfg.Normalizer.UnicodeNFC {
		t.Error("normalizer.unicode_nfc = true, want false")
	}

	// Phonemes
	if cfg.Phonemes.Source != PhonemeSourcePostgres {
		t.Errorf("phonemes.source = %q, want %q", cfg.Phonemes.Source, PhonemeSourcePostgres)
	}
	if cfg.Phonemes.CacheSize != 500 {
		t.Errorf("phonemes.cache_size = %d, want 500", cfg.Phonemes.CacheSize)
	}
	if cfg.Phonemes.CacheTTL != time.Hour {
		t.Errorf("phonemes.cache_ttl = %v, want 1h", cfg.Phonemes.CacheTTL)
	}
	if cfg.Phonemes.SpellUnknown {
		t.Error("phonemes.spell_unknown = true, want false")
	}

	// Parser
	if cfg.Parser.URL != "http://udpipe:8001" {
		t.Errorf("parser.url = %q", cfg.Parser.URL)
	}
	if cfg.Parser.Model != "russian-syntagrus" {
		t.Errorf("parser.model = %q", cfg.Parser.Model)
	}
	if cfg.Parser.Timeout != 3*time.Second {
		t.Errorf("parser.timeout = %v, want 3s", cfg.Parser.Timeout)
	}

	// CORS
	want := []string{"https://a.example", "https://b.example"}
	if got := cfg.CORS.Origins(); !slices.Equal(got, want) {
		t.Errorf("cors.Origins() = %v, want %v", got, want)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("PHONEMES_CACHE_SIZE", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
	if cfg.Phonemes.CacheSize != 0 {
		t.Errorf("phonemes.cache_size = %d, want 0 (ENV override)", cfg.Phonemes.CacheSize)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Normalizer.Language != "ru" {
		t.Errorf("normalizer.language = %q, want ru (default)", cfg.Normalizer.Language)
	}
	if !cfg.Normalizer.UnicodeNFC {
		t.Error("normalizer.unicode_nfc = false, want true (default)")
	}
	if cfg.Phonemes.Source != PhonemeSourceFile {
		t.Errorf("phonemes.source = %q, want file (default)", cfg.Phonemes.Source)
	}
	if cfg.Phonemes.CacheSize != 10000 {
		t.Errorf("phonemes.cache_size = %d, want 10000 (default)", cfg.Phonemes.CacheSize)
	}
	if cfg.Parser.Timeout != 10*time.Second {
		t.Errorf("parser.timeout = %v, want 10s (default)", cfg.Parser.Timeout)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadFile_ValidationFails(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "normalizer:\n  language: \"en\"\nphonemes:\n  cmu_path: \"x.dict\"\n")

	_, err := LoadFile(path, true)
	if err == nil {
		t.Fatal("expected validation error for unsupported language")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"body limit zero", func(c *Config) { c.Server.MaxBodyBytes = 0 }, true},
		{"negative rate limit", func(c *Config) { c.Server.RateLimitPerMinute = -1 }, true},
		{"rate limit disabled", func(c *Config) { c.Server.RateLimitPerMinute = 0 }, false},
		{"language en", func(c *Config) { c.Normalizer.Language = "en" }, true},
		{"language empty", func(c *Config) { c.Normalizer.Language = "" }, true},
		{"unknown source", func(c *Config) { c.Phonemes.Source = "redis" }, true},
		{"file without path", func(c *Config) { c.Phonemes.CMUPath = "" }, true},
		{"postgres without dsn", func(c *Config) { c.Phonemes.Source = PhonemeSourcePostgres }, true},
		{"postgres with dsn", func(c *Config) {
			c.Phonemes.Source = PhonemeSourcePostgres
			c.Phonemes.CMUPath = ""
			c.Database.DSN = "postgres://localhost/db"
		}, false},
		{"negative cache", func(c *Config) { c.Phonemes.CacheSize = -1 }, true},
		{"zero cache", func(c *Config) { c.Phonemes.CacheSize = 0 }, false},
		{"negative ttl", func(c *Config) { c.Phonemes.CacheTTL = -time.Second }, true},
		{"parser url empty", func(c *Config) { c.Parser.URL = "" }, true},
		{"parser timeout zero", func(c *Config) { c.Parser.Timeout = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCORSConfig_Lists(t *testing.T) {
	c := CORSConfig{AllowedMethods: "GET, POST,,OPTIONS ", AllowedHeaders: ""}

	if got, want := c.Methods(), []string{"GET", "POST", "OPTIONS"}; !slices.Equal(got, want) {
		t.Errorf("Methods() = %v, want %v", got, want)
	}
	if got := c.Headers(); got != nil {
		t.Errorf("Headers() = %v, want nil", got)
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 8080, MaxBodyBytes: 1 << 20},
		Normalizer: NormalizerConfig{
			Language:   "ru",
			UnicodeNFC: true,
		},
		Phonemes: PhonemesConfig{
			Source:    PhonemeSourceFile,
			CMUPath:   "/data/cmudict.dict",
			CacheSize: 100,
		},
		Parser: ParserConfig{
			URL:     "http://localhost:8001",
			Model:   "russian",
			Timeout: 10 * time.Second,
		},
	}
}

func TestLoad_ExplicitZeroValuesKept(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, "phonemes:\n  cmu_path: \"x.dict\"\n  cache_size: 0\n")
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Phonemes.CacheSize != 0 {
		t.Errorf("phonemes.cache_size = %d, want 0 (explicit)", cfg.Phonemes.CacheSize)
	}
	if !cfg.Phonemes.SpellUnknown {
		t.Error("phonemes.spell_unknown = false, want true (default)")
	}
}
