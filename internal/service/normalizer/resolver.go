package normalizer

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

// resolve decides the grammatical form of every all-digit token and renders it.
// Tokens the speller rejects produce no span and are reported as failures.
func (s *Service) resolve(ctx context.Context, tokens []domain.Token) ([]domain.ReplacementSpan, []domain.RenderError) {
	byID := make(map[string]int, len(tokens))
	for i, t := range tokens {
		if t.ID != "" {
			byID[t.ID] = i
		}
	}

	var (
		spans    []domain.ReplacementSpan
		failures []domain.RenderError
	)
	for i, t := range tokens {
		if !domain.IsASCIIDigits(t.Text) {
			continue
		}
		d := s.decide(tokens, i, byID)

		rendered, err := s.render(ctx, t.Text, d)
		if err != nil {
			s.log.DebugContext(ctx, "numeral left as digits",
				slog.String("token", t.Text),
				slog.String("decision", d.String()),
				slog.String("error", err.Error()),
			)
			failures = append(failures, domain.RenderError{Text: t.Text, Decision: d, Err: err})
			continue
		}
		spans = append(spans, domain.ReplacementSpan{Start: t.Start, Stop: t.Stop, Text: rendered})
	}
	return spans, failures
}

func (s *Service) render(ctx context.Context, digits string, d domain.GrammaticalDecision) (string, error) {
	v, err := parseValue(digits)
	if err != nil {
		return "", err
	}
	return s.speller.Spell(ctx, v, s.lang, d)
}

// decide applies the lookahead rule, then the dependency rule when lookahead did not fire.
func (s *Service) decide(tokens []domain.Token, i int, byID map[string]int) domain.GrammaticalDecision {
	d := domain.DefaultDecision()

	if i+1 < len(tokens) {
		next := tokens[i+1]
		lemma := next.LemmaOrText()
		switch {
		case has(s.lex.YearMarkers, lemma):
			d.Ordinality = domain.Ordinal
			d.Case = next.Feats.Case.OrDefault(domain.CasePrepositional)
			return d
		case has(s.lex.Months, lemma):
			d.Ordinality = domain.Ordinal
			d.Case = domain.CaseGenitive
			return d
		}
	}

	t := tokens[i]
	if t.HeadID == "" {
		return d
	}
	hi, ok := byID[t.HeadID]
	if !ok {
		return d
	}
	head := tokens[hi]
	d.Gender = head.Feats.Gender.OrDefault(domain.GenderMasculine)
	d.Case = head.Feats.Case.OrDefault(domain.CaseNominative)

	prev := ""
	if i > 0 {
		prev = strings.ToLower(tokens[i-1].Text)
	}
	if prev == s.lex.LocativePreposition && has(s.lex.DistanceUnits, head.LemmaOrText()) {
		d.Case = domain.CasePrepositional
	}
	// An unguarded genitive is most likely a parser mistag.
	if d.Case == domain.CaseGenitive && !has(s.lex.GenitivePrepositions, prev) {
		d.Case = domain.CaseNominative
	}
	return d
}
