package testhelper

import (
	"context"
	"slices"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	word := SeedPronunciation(t, pool, UniqueWord("smoke"), 0, "S", "M", "OW1", "K")

	var phonemes []string
	err := pool.QueryRow(
		context.Background(),
		`SELECT phonemes FROM pronunciations WHERE word = $1 AND variant = 0`,
		word,
	).Scan(&phonemes)
	if err != nil {
		t.Fatalf("expected pronunciation in DB, got error: %v", err)
	}

	if want := []string{"S", "M", "OW1", "K"}; !slices.Equal(phonemes, want) {
		t.Fatalf("expected phonemes %v, got %v", want, phonemes)
	}
}
