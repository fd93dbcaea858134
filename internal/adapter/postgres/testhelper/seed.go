package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueWord returns a lowercase dictionary key that no other test uses.
func UniqueWord(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedPronunciation inserts one pronunciation row and returns its word.
func SeedPronunciation(t *testing.T, pool *pgxpool.Pool, word string, variant int, phonemes ...string) string {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO pronunciations (word, variant, phonemes) VALUES ($1, $2, $3)`,
		word, variant, phonemes,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPronunciation %q: %v", word, err)
	}
	return word
}
