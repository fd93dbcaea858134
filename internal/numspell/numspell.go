// Package numspell renders integers as Russian numeral words.
//
// Cardinals and ordinals are declined in all six cases and three genders.
// Masculine accusative follows the inanimate paradigm (equal to nominative).
package numspell

import (
	"context"
	"fmt"
	"strings"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

// Language is the only language tag this speller accepts.
const Language = "ru"

// MaxValue is the exclusive upper bound of representable values.
const MaxValue int64 = 1_000_000_000_000

// Speller implements the numeral-spelling collaborator of the normalizer.
type Speller struct{}

// New creates a Speller.
func New() *Speller { return &Speller{} }

// Spell renders value in the form described by d.
func (s *Speller) Spell(_ context.Context, value int64, lang string, d domain.GrammaticalDecision) (string, error) {
	if lang != Language {
		return "", fmt.Errorf("numspell: language %q: %w", lang, domain.ErrUnsupported)
	}
	switch d.Ordinality {
	case domain.Cardinal:
		return Cardinal(value, d.Case, d.Gender)
	case domain.Ordinal:
		return Ordinal(value, d.Case, d.Gender)
	default:
		return "", fmt.Errorf("numspell: ordinality %q: %w", d.Ordinality, domain.ErrUnsupported)
	}
}

// Cardinal renders n as a cardinal numeral ("двадцать одна").
func Cardinal(n int64, c domain.Case, g domain.Gender) (string, error) {
	ci, gi, err := check(n, c, g)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return zero[ci], nil
	}
	return strings.Join(cardinalWords(nil, n, ci, gi), " "), nil
}

// Ordinal renders n as an ordinal numeral ("двадцать первого").
// Only the last component declines; leading components stay nominative cardinals.
func Ordinal(n int64, c domain.Case, g domain.Gender) (string, error) {
	ci, gi, err := check(n, c, g)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return zeroOrdinal.decline(ci, gi), nil
	}

	rest := n % 1000
	if rest > 0 {
		words := cardinalWords(nil, n-rest, iNom, gMasc)
		return strings.Join(groupOrdinal(words, rest, ci, gi), " "), nil
	}

	// Round thousands, millions or billions: a compound ordinal on the lowest scale.
	for i := len(scales) - 1; i >= 0; i-- {
		sc := scales[i]
		count := (n / sc.value) % 1000
		if count == 0 {
			continue
		}
		higher := n - n%(sc.value*1000)
		words := cardinalWords(nil, higher, iNom, gMasc)
		word := compoundPrefix(count) + sc.ordStem + endingsY[gi][ci]
		return strings.Join(append(words, word), " "), nil
	}
	return "", fmt.Errorf("numspell: %d: %w", n, domain.ErrOutOfRange)
}

// Plural is the Russian count-noun agreement class.
type Plural int

const (
	PluralOne  Plural = iota // 1, 21, 101: "час"
	PluralFew                // 2–4, 22–24: "часа"
	PluralMany               // 0, 5–20, 25–30: "часов"
)

// PluralOf returns the agreement class a count imposes on the noun that follows it.
func PluralOf(n int64) Plural {
	if n < 0 {
		n = -n
	}
	mod10, mod100 := n%10, n%100
	switch {
	case mod10 == 1 && mod100 != 11:
		return PluralOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 10 || mod100 > 20):
		return PluralFew
	default:
		return PluralMany
	}
}

// Agree picks the noun form matching count n.
func Agree(n int64, one, few, many string) string {
	switch PluralOf(n) {
	case PluralOne:
		return one
	case PluralFew:
		return few
	default:
		return many
	}
}

const (
	gMasc = iota
	gFem
	gNeut
)

func check(n int64, c domain.Case, g domain.Gender) (ci, gi int, err error) {
	if n < 0 || n >= MaxValue {
		return 0, 0, fmt.Errorf("numspell: %d: %w", n, domain.ErrOutOfRange)
	}
	ci, ok := caseIndex(c)
	if !ok {
		return 0, 0, fmt.Errorf("numspell: case %q: %w", c, domain.ErrUnsupported)
	}
	gi, ok = genderIndex(g)
	if !ok {
		return 0, 0, fmt.Errorf("numspell: gender %q: %w", g, domain.ErrUnsupported)
	}
	return ci, gi, nil
}

func caseIndex(c domain.Case) (int, bool) {
	switch c {
	case domain.CaseNominative:
		return iNom, true
	case domain.CaseGenitive:
		return iGen, true
	case domain.CaseDative:
		return iDat, true
	case domain.CaseAccusative:
		return iAcc, true
	case domain.CaseInstrumental:
		return iIns, true
	case domain.CasePrepositional:
		return iPrep, true
	}
	return 0, false
}

func genderIndex(g domain.Gender) (int, bool) {
	switch g {
	case domain.GenderMasculine:
		return gMasc, true
	case domain.GenderFeminine:
		return gFem, true
	case domain.GenderNeuter:
		return gNeut, true
	}
	return 0, false
}

// cardinalWords appends the words of n (n > 0 or zero for nothing) in case ci.
func cardinalWords(dst []string, n int64, ci, gi int) []string {
	for _, sc := range scales {
		count := (n / sc.value) % 1000
		if count == 0 {
			continue
		}
		g := gMasc
		if sc.feminine {
			g = gFem
		}
		if !(sc.feminine && count == 1) {
			dst = groupWords(dst, count, ci, g)
		}
		dst = append(dst, sc.noun(count, ci))
	}
	if rest := n % 1000; rest > 0 {
		dst = groupWords(dst, rest, ci, gi)
	}
	return dst
}

// groupWords appends the words of n in [1, 999].
func groupWords(dst []string, n int64, ci, gi int) []string {
	if h := n / 100; h > 0 {
		dst = append(dst, hundreds[h][ci])
	}
	r := n % 100
	switch {
	case r >= 10 && r <= 19:
		dst = append(dst, teens[r-10][ci])
	case r > 0:
		if t := r / 10; t > 0 {
			dst = append(dst, tens[t][ci])
		}
		if u := r % 10; u > 0 {
			dst = append(dst, unitForm(u, gi)[ci])
		}
	}
	return dst
}

func unitForm(u int64, gi int) forms {
	switch {
	case u == 1 && gi == gFem:
		return oneFeminine
	case u == 1 && gi == gNeut:
		return oneNeuter
	case u == 2 && gi == gFem:
		return twoFeminine
	}
	return units[u]
}

// groupOrdinal appends n in [1, 999] with its last component as an ordinal.
func groupOrdinal(dst []string, n int64, ci, gi int) []string {
	h, r := n/100, n%100
	if r == 0 {
		return append(dst, hundredOrdinals[h].decline(ci, gi))
	}
	if h > 0 {
		dst = append(dst, hundreds[h][iNom])
	}
	if r >= 10 && r <= 19 {
		return append(dst, teenOrdinals[r-10].decline(ci, gi))
	}
	t, u := r/10, r%10
	if u == 0 {
		return append(dst, tenOrdinals[t].decline(ci, gi))
	}
	if t > 0 {
		dst = append(dst, tens[t][iNom])
	}
	if u == 3 {
		return append(dst, third[gi][ci])
	}
	return append(dst, unitOrdinals[u].decline(ci, gi))
}

// compoundPrefix is the genitive stem that joins a count to a scale ordinal:
// 2 → "двух" (двухтысячный), 21 → "двадцатиодно", 1 → "".
func compoundPrefix(count int64) string {
	if count == 1 {
		return ""
	}
	var b strings.Builder
	if h := count / 100; h > 0 {
		if h == 1 {
			b.WriteString("сто")
		} else {
			b.WriteString(hundreds[h][iGen])
		}
	}
	r := count % 100
	switch {
	case r >= 10 && r <= 19:
		b.WriteString(teens[r-10][iGen])
	case r > 0:
		if t := r / 10; t == 9 {
			b.WriteString("девяносто")
		} else if t > 0 {
			b.WriteString(tens[t][iGen])
		}
		if u := r % 10; u == 1 {
			b.WriteString("одно")
		} else if u > 0 {
			b.WriteString(units[u][iGen])
		}
	}
	return b.String()
}

func (s ordStem) decline(ci, gi int) string {
	return s.stem + s.end[gi][ci]
}

// noun returns the scale word agreeing with count in case ci.
func (sc scale) noun(count int64, ci int) string {
	p := PluralOf(count)
	if ci == iNom || ci == iAcc {
		switch p {
		case PluralOne:
			return sc.singular[ci]
		case PluralFew:
			return sc.singular[iGen]
		default:
			return sc.plural[iGen]
		}
	}
	if p == PluralOne {
		return sc.singular[ci]
	}
	return sc.plural[ci]
}
