package normalizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

var latinRunRe = regexp.MustCompile(`[A-Za-z]+`)

// maxLookups bounds the concurrent transcriber calls of one transliterate pass.
const maxLookups = 16

// transliterate replaces every maximal Latin run with a Cyrillic approximation
// of its pronunciation. Words the transcriber does not know are left as is.
// Distinct words are looked up concurrently so a batching transcriber can
// answer them with one query.
func (s *Service) transliterate(ctx context.Context, text string) (string, error) {
	locs := latinRunRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text, nil
	}

	var words []string
	index := make(map[string]int, len(locs))
	for _, loc := range locs {
		word := text[loc[0]:loc[1]]
		if _, ok := index[word]; !ok {
			index[word] = len(words)
			words = append(words, word)
		}
	}

	spoken := make([]string, len(words))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLookups)
	for i, word := range words {
		g.Go(func() error {
			phonemes, err := s.phonemes.Transcribe(gctx, word)
			switch {
			case errors.Is(err, domain.ErrUnknownWord):
				s.log.DebugContext(ctx, "no pronunciation, word kept", slog.String("word", word))
				spoken[i] = word
				return nil
			case err != nil:
				return fmt.Errorf("transcribe %q: %w", word, err)
			}
			spoken[i] = s.phonemesToText(phonemes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	spans := make([]domain.ReplacementSpan, 0, len(locs))
	for _, loc := range locs {
		word := text[loc[0]:loc[1]]
		out := spoken[index[word]]
		if out == word {
			continue
		}
		spans = append(spans, domain.ReplacementSpan{Start: loc[0], Stop: loc[1], Text: out})
	}
	return assemble(text, spans)
}

// phonemesToText maps each phoneme through the lexicon. Unmapped phonemes are dropped.
func (s *Service) phonemesToText(phonemes []string) string {
	var b strings.Builder
	for _, p := range phonemes {
		b.WriteString(s.lex.Phonemes[stripStress(p)])
	}
	return b.String()
}

// stripStress removes the trailing stress digits of an ARPAbet symbol ("AH0" → "AH").
func stripStress(p string) string {
	return strings.TrimRight(p, "0123456789")
}
