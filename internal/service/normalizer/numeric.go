package normalizer

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
	"github.com/alex-dev-neo/xtts-api-server/internal/numspell"
)

var (
	timeRe    = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	decimalRe = regexp.MustCompile(`(\d+)\.(\d+)`)
)

var (
	masculineCardinal = domain.GrammaticalDecision{Ordinality: domain.Cardinal, Case: domain.CaseNominative, Gender: domain.GenderMasculine}
	feminineCardinal  = domain.GrammaticalDecision{Ordinality: domain.Cardinal, Case: domain.CaseNominative, Gender: domain.GenderFeminine}
)

// numericRenderer rewrites one regexp match; ok=false leaves the match untouched.
type numericRenderer func(ctx context.Context, m []string) (text string, ok bool, err *domain.RenderError)

// replaceNumeric applies render to every whole-word match of re.
func replaceNumeric(ctx context.Context, text string, re *regexp.Regexp, render numericRenderer) (string, []domain.RenderError, error) {
	var (
		spans    []domain.ReplacementSpan
		failures []domain.RenderError
	)
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		if !isWholeWord(text, loc[0], loc[1]) {
			continue
		}
		groups := make([]string, 0, len(loc)/2)
		for i := 0; i < len(loc); i += 2 {
			groups = append(groups, text[loc[i]:loc[i+1]])
		}
		out, ok, rerr := render(ctx, groups)
		if rerr != nil {
			failures = append(failures, *rerr)
			continue
		}
		if ok {
			spans = append(spans, domain.ReplacementSpan{Start: loc[0], Stop: loc[1], Text: out})
		}
	}
	text, err := assemble(text, spans)
	return text, failures, err
}

// renderTime spells "HH:MM" as hours and minutes with agreeing unit words.
func (s *Service) renderTime(ctx context.Context, m []string) (string, bool, *domain.RenderError) {
	h, _ := strconv.ParseInt(m[1], 10, 64)
	mins, _ := strconv.ParseInt(m[2], 10, 64)
	if h > 23 || mins > 59 {
		return "", false, nil
	}

	hourWords, err := s.speller.Spell(ctx, h, s.lang, masculineCardinal)
	if err != nil {
		return "", false, &domain.RenderError{Text: m[0], Decision: masculineCardinal, Err: err}
	}
	parts := []string{hourWords, agree(h, s.lex.Hour)}
	if mins == 0 {
		return strings.Join(append(parts, s.lex.Exactly), " "), true, nil
	}

	minuteWords, err := s.speller.Spell(ctx, mins, s.lang, feminineCardinal)
	if err != nil {
		return "", false, &domain.RenderError{Text: m[0], Decision: feminineCardinal, Err: err}
	}
	return strings.Join(append(parts, minuteWords, agree(mins, s.lex.Minute)), " "), true, nil
}

// renderDecimal spells "X.Y…" as "X целых Y десятых", keeping only the first fractional digit.
func (s *Service) renderDecimal(ctx context.Context, m []string) (string, bool, *domain.RenderError) {
	whole, err := parseValue(m[1])
	if err != nil {
		return "", false, &domain.RenderError{Text: m[0], Decision: feminineCardinal, Err: err}
	}
	tenths := int64(m[2][0] - '0')

	wholeWords, err := s.speller.Spell(ctx, whole, s.lang, feminineCardinal)
	if err != nil {
		return "", false, &domain.RenderError{Text: m[0], Decision: feminineCardinal, Err: err}
	}
	tenthWords, err := s.speller.Spell(ctx, tenths, s.lang, feminineCardinal)
	if err != nil {
		return "", false, &domain.RenderError{Text: m[0], Decision: feminineCardinal, Err: err}
	}

	wholeUnit := s.lex.Whole[1]
	if numspell.PluralOf(whole) == numspell.PluralOne {
		wholeUnit = s.lex.Whole[0]
	}
	tenthUnit := s.lex.Tenth[1]
	if tenths == 1 {
		tenthUnit = s.lex.Tenth[0]
	}
	return strings.Join([]string{wholeWords, wholeUnit, tenthWords, tenthUnit}, " "), true, nil
}

func agree(n int64, forms [3]string) string {
	return numspell.Agree(n, forms[0], forms[1], forms[2])
}

// parseValue parses a run of ASCII digits; values beyond int64 report domain.ErrOutOfRange.
func parseValue(digits string) (int64, error) {
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", digits, domain.ErrOutOfRange)
	}
	return v, nil
}
