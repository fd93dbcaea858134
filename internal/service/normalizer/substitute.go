package normalizer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

// Substitution is one literal replacement rule. Pattern is an RE2 expression
// matched case-insensitively; Replacement is inserted verbatim.
type Substitution struct {
	Pattern     string `yaml:"pattern"     json:"pattern"`
	Replacement string `yaml:"replacement" json:"replacement"`
	// WholeWord rejects matches glued to a letter or digit of any script.
	WholeWord bool `yaml:"whole_word" json:"whole_word"`
}

type rule struct {
	re          *regexp.Regexp
	replacement string
	wholeWord   bool
}

func compileRules(subs []Substitution) ([]rule, error) {
	rules := make([]rule, 0, len(subs))
	for i, s := range subs {
		if s.Pattern == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("substitutions[%d].pattern", i), "required")
		}
		re, err := regexp.Compile("(?i)" + s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile substitution %d %q: %w", i, s.Pattern, err)
		}
		rules = append(rules, rule{re: re, replacement: s.Replacement, wholeWord: s.WholeWord})
	}
	return rules, nil
}

// apply replaces every match of r in text. The replacement may refer to
// submatches as $1 or ${name}.
func (r rule) apply(text string) (string, error) {
	var spans []domain.ReplacementSpan
	for _, loc := range r.re.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] == loc[1] {
			continue
		}
		if r.wholeWord && !isWholeWord(text, loc[0], loc[1]) {
			continue
		}
		repl := string(r.re.ExpandString(nil, r.replacement, text, loc))
		spans = append(spans, domain.ReplacementSpan{Start: loc[0], Stop: loc[1], Text: repl})
	}
	return assemble(text, spans)
}

// isWholeWord reports whether text[start:stop] is not glued to an adjacent word rune.
// Each edge is checked only when the match itself ends in a word rune there.
func isWholeWord(text string, start, stop int) bool {
	first, _ := utf8.DecodeRuneInString(text[start:])
	if domain.IsWordRune(first) && start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if domain.IsWordRune(prev) {
			return false
		}
	}
	last, _ := utf8.DecodeLastRuneInString(text[:stop])
	if domain.IsWordRune(last) && stop < len(text) {
		next, _ := utf8.DecodeRuneInString(text[stop:])
		if domain.IsWordRune(next) {
			return false
		}
	}
	return true
}
