package phoneme

import (
	"context"
	"errors"

	"github.com/alex-dev-neo/xtts-api-server/internal/adapter/phoneme/cmudict"
	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

// SpellingFallback spells out words the wrapped transcriber does not know.
type SpellingFallback struct {
	next transcriber
}

// NewSpellingFallback wraps next.
func NewSpellingFallback(next transcriber) *SpellingFallback {
	return &SpellingFallback{next: next}
}

// Transcribe asks the wrapped transcriber first and spells the word letter by letter
// only when it reports domain.ErrUnknownWord.
func (f *SpellingFallback) Transcribe(ctx context.Context, word string) ([]string, error) {
	ph, err := f.next.Transcribe(ctx, word)
	if errors.Is(err, domain.ErrUnknownWord) {
		if spelled, ok := cmudict.Spell(word); ok {
			return spelled, nil
		}
	}
	return ph, err
}
