// Package phoneme holds decorators shared by phoneme transcriber implementations.
package phoneme

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

type transcriber interface {
	Transcribe(ctx context.Context, word string) ([]string, error)
}

// cached is a transcription result; phonemes is nil for a remembered unknown word.
type cached struct {
	phonemes []string
}

// Cache memoizes transcriptions, including unknown-word answers.
// Other errors are not cached.
type Cache struct {
	next  transcriber
	cache *expirable.LRU[string, cached]
	log   *slog.Logger
}

// NewCache wraps next with an LRU of size entries. A zero ttl keeps entries until evicted.
func NewCache(logger *slog.Logger, next transcriber, size int, ttl time.Duration) *Cache {
	return &Cache{
		next:  next,
		cache: expirable.NewLRU[string, cached](size, nil, ttl),
		log:   logger.With("adapter", "phoneme_cache"),
	}
}

// Transcribe returns the cached transcription or asks the wrapped transcriber.
func (c *Cache) Transcribe(ctx context.Context, word string) ([]string, error) {
	key := strings.ToLower(word)
	if v, ok := c.cache.Get(key); ok {
		if v.phonemes == nil {
			return nil, domain.ErrUnknownWord
		}
		return v.phonemes, nil
	}

	ph, err := c.next.Transcribe(ctx, word)
	switch {
	case errors.Is(err, domain.ErrUnknownWord):
		c.cache.Add(key, cached{})
		return nil, err
	case err != nil:
		return nil, err
	}
	if ph == nil {
		ph = []string{}
	}
	c.cache.Add(key, cached{phonemes: ph})
	return ph, nil
}

// Len returns the number of cached words.
func (c *Cache) Len() int { return c.cache.Len() }
