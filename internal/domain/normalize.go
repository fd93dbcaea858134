package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeText prepares a word or lemma for comparison and dictionary lookup:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsASCIIDigits reports whether s is non-empty and consists only of 0-9.
func IsASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsWordRune reports whether r is part of a word in any script.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// FoldDigits rewrites every Unicode decimal digit (category Nd) outside ASCII
// as its ASCII counterpart: "２０２０" → "2020", "١٢" → "12".
func FoldDigits(s string) string {
	if !hasNonASCIIDigit(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= utf8.RuneSelf && unicode.Is(unicode.Nd, r) {
			if v, ok := digitValue(r); ok {
				b.WriteByte('0' + byte(v))
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func hasNonASCIIDigit(s string) bool {
	for _, r := range s {
		if r >= utf8.RuneSelf && unicode.Is(unicode.Nd, r) {
			return true
		}
	}
	return false
}

// digitValue relies on Nd characters being encoded in runs of ten, zero first;
// each range of the Nd table starts at a zero.
func digitValue(r rune) (int, bool) {
	for _, rg := range unicode.Nd.R16 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi && rg.Stride == 1 {
			return int(r-lo) % 10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi && rg.Stride == 1 {
			return int(r-lo) % 10, true
		}
	}
	return 0, false
}
