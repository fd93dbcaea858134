// Package normalizer turns free text into a form a Russian speech synthesizer can read aloud:
// literal substitutions, spelled-out times and decimals, transliterated Latin words and
// numerals declined to agree with their syntactic context.
package normalizer

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/text/unicode/norm"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

type morphAnalyzer interface {
	Analyze(ctx context.Context, text string) ([]domain.Token, error)
}

type phonemeTranscriber interface {
	Transcribe(ctx context.Context, word string) ([]string, error)
}

type numeralSpeller interface {
	Spell(ctx context.Context, value int64, lang string, d domain.GrammaticalDecision) (string, error)
}

// Config is the immutable configuration of one Service.
type Config struct {
	Language string
	// Substitutions replaces the lexicon's default table when non-nil.
	Substitutions []Substitution
	UnicodeNFC    bool
	// Lexicon defaults to RussianLexicon.
	Lexicon *Lexicon
}

// Report is the outcome of one Process call.
type Report struct {
	Text string
	// Rendered counts numerals spelled out by the case resolver.
	Rendered int
	// Failures lists numerals left as digits because the speller rejected them.
	Failures []domain.RenderError
}

// Service normalizes text. It is immutable after New and safe for concurrent use.
type Service struct {
	log      *slog.Logger
	analyzer morphAnalyzer
	phonemes phonemeTranscriber
	speller  numeralSpeller

	lang        string
	nfc         bool
	lex         *Lexicon
	rules       []rule
	fingerprint string
}

// New compiles the substitution table and binds the collaborators.
// Any configuration problem is reported here rather than on first use.
func New(
	logger *slog.Logger,
	cfg Config,
	analyzer morphAnalyzer,
	phonemes phonemeTranscriber,
	speller numeralSpeller,
) (*Service, error) {
	if cfg.Language == "" {
		return nil, domain.NewValidationError("language", "required")
	}
	if analyzer == nil || phonemes == nil || speller == nil {
		return nil, errors.New("normalizer: analyzer, phonemes and speller are required")
	}

	lex := cfg.Lexicon
	if lex == nil {
		lex = RussianLexicon()
	}
	subs := cfg.Substitutions
	if subs == nil {
		subs = lex.Substitutions
	}
	rules, err := compileRules(subs)
	if err != nil {
		return nil, fmt.Errorf("normalizer: %w", err)
	}

	return &Service{
		log:         logger.With("service", "normalizer"),
		analyzer:    analyzer,
		phonemes:    phonemes,
		speller:     speller,
		lang:        cfg.Language,
		nfc:         cfg.UnicodeNFC,
		lex:         lex,
		rules:       rules,
		fingerprint: fingerprint(cfg.Language, subs, lex),
	}, nil
}

// Normalize returns the spoken form of text.
func (s *Service) Normalize(ctx context.Context, text string) (string, error) {
	r, err := s.Process(ctx, text)
	if err != nil {
		return "", err
	}
	return r.Text, nil
}

// Process runs the full pipeline and reports which numerals could not be rendered.
func (s *Service) Process(ctx context.Context, text string) (*Report, error) {
	if s.nfc {
		text = norm.NFC.String(text)
	}
	text = domain.FoldDigits(text)

	var failures []domain.RenderError

	text, err := s.substitute(ctx, text, &failures)
	if err != nil {
		return nil, err
	}

	text, err = s.transliterate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("transliterate: %w", err)
	}

	report := &Report{}
	if containsASCIIDigit(text) {
		tokens, err := s.analyzer.Analyze(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("analyze: %w", err)
		}
		spans, fails := s.resolve(ctx, tokens)
		failures = append(failures, fails...)

		text, err = assemble(text, spans)
		if err != nil {
			s.log.ErrorContext(ctx, "span assembly failed", slog.String("error", err.Error()))
			return nil, fmt.Errorf("assemble: %w", err)
		}
		report.Rendered = len(spans)
	}

	report.Text = text
	report.Failures = failures
	return report, nil
}

// substitute applies the literal table in order, then times, then decimals.
func (s *Service) substitute(ctx context.Context, text string, failures *[]domain.RenderError) (string, error) {
	var err error
	for i, r := range s.rules {
		text, err = r.apply(text)
		if err != nil {
			return "", fmt.Errorf("substitution %d: %w", i, err)
		}
	}

	for _, pass := range []struct {
		name   string
		re     *regexp.Regexp
		render numericRenderer
	}{
		{"time", timeRe, s.renderTime},
		{"decimal", decimalRe, s.renderDecimal},
	} {
		var fails []domain.RenderError
		text, fails, err = replaceNumeric(ctx, text, pass.re, pass.render)
		if err != nil {
			return "", fmt.Errorf("%s: %w", pass.name, err)
		}
		*failures = append(*failures, fails...)
	}
	return text, nil
}

// Fingerprint identifies the language and tables this Service was built with.
func (s *Service) Fingerprint() string { return s.fingerprint }

// Language returns the target language tag.
func (s *Service) Language() string { return s.lang }

func fingerprint(lang string, subs []Substitution, lex *Lexicon) string {
	var b strings.Builder
	b.WriteString(lang)
	b.WriteByte(0)
	for _, sub := range subs {
		fmt.Fprintf(&b, "%s\x00%s\x00%t\x00", sub.Pattern, sub.Replacement, sub.WholeWord)
	}
	for _, k := range slices.Sorted(maps.Keys(lex.Phonemes)) {
		fmt.Fprintf(&b, "%s=%s\x00", k, lex.Phonemes[k])
	}
	for _, words := range []map[string]struct{}{lex.YearMarkers, lex.Months, lex.DistanceUnits, lex.GenitivePrepositions} {
		b.WriteString(strings.Join(slices.Sorted(maps.Keys(words)), ","))
		b.WriteByte(0)
	}
	b.WriteString(lex.LocativePreposition)

	sum := blake3.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:8])
}

func containsASCIIDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
