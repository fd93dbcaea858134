package cmudict

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

// letterNames spells single Latin letters for words missing from the dictionary.
var letterNames = map[byte][]string{
	'a': {"EY1"},
	'b': {"B", "IY1"},
	'c': {"S", "IY1"},
	'd': {"D", "IY1"},
	'e': {"IY1"},
	'f': {"EH1", "F"},
	'g': {"JH", "IY1"},
	'h': {"EY1", "CH"},
	'i': {"AY1"},
	'j': {"JH", "EY1"},
	'k': {"K", "EY1"},
	'l': {"EH1", "L"},
	'm': {"EH1", "M"},
	'n': {"EH1", "N"},
	'o': {"OW1"},
	'p': {"P", "IY1"},
	'q': {"K", "Y", "UW1"},
	'r': {"AA1", "R"},
	's': {"EH1", "S"},
	't': {"T", "IY1"},
	'u': {"Y", "UW1"},
	'v': {"V", "IY1"},
	'w': {"D", "AH1", "B", "AH0", "L", "Y", "UW0"},
	'x': {"EH1", "K", "S"},
	'y': {"W", "AY1"},
	'z': {"Z", "IY1"},
}

// Dictionary is an in-memory transcriber. It is read-only after construction.
type Dictionary struct {
	primary      map[string][]string
	spellUnknown bool
	log          *slog.Logger
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithLetterFallback makes unknown all-letter words transcribe as spelled-out letters ("GPT" → G P T).
func WithLetterFallback(enabled bool) Option {
	return func(d *Dictionary) { d.spellUnknown = enabled }
}

// New builds a Dictionary from parsed entries. The lowest variant of each word wins.
func New(logger *slog.Logger, entries []Entry, opts ...Option) *Dictionary {
	d := &Dictionary{
		primary: make(map[string][]string, len(entries)),
		log:     logger.With("adapter", "cmudict"),
	}
	variants := make(map[string]int, len(entries))
	for _, e := range entries {
		if v, ok := variants[e.Word]; ok && v <= e.Variant {
			continue
		}
		variants[e.Word] = e.Variant
		d.primary[e.Word] = e.Phonemes
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Load parses the dictionary file at path and builds a Dictionary.
func Load(logger *slog.Logger, path string, opts ...Option) (*Dictionary, error) {
	res, err := ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("cmudict: %w", err)
	}
	d := New(logger, res.Entries, opts...)
	d.log.Info("dictionary loaded",
		slog.String("path", path),
		slog.Int("lines", res.Stats.TotalLines),
		slog.Int("words", res.Stats.UniqueWords),
	)
	return d, nil
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.primary) }

// Transcribe returns the primary ARPAbet transcription of word.
// It returns domain.ErrUnknownWord when the word is absent and cannot be spelled.
func (d *Dictionary) Transcribe(_ context.Context, word string) ([]string, error) {
	key := strings.ToLower(word)
	if ph, ok := d.primary[key]; ok {
		return ph, nil
	}
	if d.spellUnknown {
		if ph, ok := Spell(key); ok {
			return ph, nil
		}
	}
	return nil, fmt.Errorf("cmudict: %q: %w", word, domain.ErrUnknownWord)
}

// Spell transcribes word letter by letter. It reports false unless every byte is a Latin letter.
func Spell(word string) ([]string, bool) {
	word = strings.ToLower(word)
	if word == "" {
		return nil, false
	}
	var out []string
	for i := 0; i < len(word); i++ {
		name, ok := letterNames[word[i]]
		if !ok {
			return nil, false
		}
		out = append(out, name...)
	}
	return out, true
}
