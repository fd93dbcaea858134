package udpipe

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

// CoNLL-U column indexes.
const (
	colID = iota
	colForm
	colLemma
	colUPOS
	colXPOS
	colFeats
	colHead
	colDeprel
	colDeps
	colMisc
	numCols
)

// multiword is a surface token ("1-2") spanning several syntactic words.
type multiword struct {
	last       int
	start, end int
	found      bool
}

// parseCoNLLU converts UDPipe output for text into tokens. Token IDs are
// "<sentence>_<word>" so they stay unique across sentences.
//
// Offsets come from the TokenRange MISC attribute (code points). When the range is
// missing or does not match the form, the form is searched forward from the
// previous token. Tokens that cannot be located keep lemma and features but get
// an empty Text, so they are never rewritten.
func parseCoNLLU(text, conllu string) ([]domain.Token, error) {
	runeOffsets := codePointOffsets(text)

	var (
		tokens   []domain.Token
		sentence = 1
		inSent   bool
		cursor   int
		mwt      *multiword
	)

	sc := bufio.NewScanner(strings.NewReader(conllu))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			if inSent {
				sentence++
				inSent = false
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) != numCols {
			return nil, fmt.Errorf("conllu: line %d: expected %d fields, got %d", lineNo, numCols, len(cols))
		}
		inSent = true
		id := cols[colID]

		// Empty nodes carry no surface text.
		if strings.Contains(id, ".") {
			continue
		}

		start, end, ok := locate(text, cols[colForm], cols[colMisc], runeOffsets, cursor)

		if _, last, isRange := strings.Cut(id, "-"); isRange {
			lastN, err := strconv.Atoi(last)
			if err != nil {
				return nil, fmt.Errorf("conllu: line %d: bad range id %q", lineNo, id)
			}
			mwt = &multiword{last: lastN, start: start, end: end, found: ok}
			if ok {
				cursor = end
			}
			continue
		}

		word, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("conllu: line %d: bad id %q", lineNo, id)
		}

		tok := domain.Token{
			ID:     tokenID(sentence, id),
			Lemma:  field(cols[colLemma]),
			Feats:  parseFeats(cols[colFeats]),
			HeadID: headID(sentence, cols[colHead]),
		}

		switch {
		case mwt != nil && word <= mwt.last:
			// The first word of a multiword token owns its surface span.
			if mwt.found {
				tok.Start, tok.Stop = mwt.start, mwt.end
				tok.Text = text[mwt.start:mwt.end]
				mwt.found = false
			} else {
				tok.Start, tok.Stop = cursor, cursor
			}
			if word == mwt.last {
				mwt = nil
			}
		case ok:
			tok.Start, tok.Stop = start, end
			tok.Text = text[start:end]
			cursor = end
		default:
			tok.Start, tok.Stop = cursor, cursor
		}
		tokens = append(tokens, tok)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("conllu: scan: %w", err)
	}
	return tokens, nil
}

// locate finds the byte span of form in text.
func locate(text, form, misc string, runeOffsets []int, cursor int) (start, end int, ok bool) {
	if r, found := miscValue(misc, "TokenRange"); found {
		a, b, _ := strings.Cut(r, ":")
		s, errS := strconv.Atoi(a)
		e, errE := strconv.Atoi(b)
		if errS == nil && errE == nil && s >= 0 && s <= e && e < len(runeOffsets) {
			start, end = runeOffsets[s], runeOffsets[e]
			if text[start:end] == form {
				return start, end, true
			}
		}
	}
	if form == "" || cursor > len(text) {
		return 0, 0, false
	}
	idx := strings.Index(text[cursor:], form)
	if idx < 0 {
		return 0, 0, false
	}
	return cursor + idx, cursor + idx + len(form), true
}

// codePointOffsets maps code point index i to its byte offset; the final entry is len(text).
func codePointOffsets(text string) []int {
	offs := make([]int, 0, utf8.RuneCountInString(text)+1)
	for i := range text {
		offs = append(offs, i)
	}
	return append(offs, len(text))
}

func parseFeats(s string) domain.Features {
	var f domain.Features
	if s == "_" || s == "" {
		return f
	}
	for _, kv := range strings.Split(s, "|") {
		k, v, _ := strings.Cut(kv, "=")
		switch k {
		case "Case":
			f.Case, _ = domain.ParseUDCase(v)
		case "Gender":
			f.Gender, _ = domain.ParseUDGender(v)
		}
	}
	return f
}

func miscValue(misc, key string) (string, bool) {
	if misc == "_" {
		return "", false
	}
	for _, kv := range strings.Split(misc, "|") {
		k, v, ok := strings.Cut(kv, "=")
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}

func field(s string) string {
	if s == "_" {
		return ""
	}
	return s
}

func tokenID(sentence int, word string) string {
	return strconv.Itoa(sentence) + "_" + word
}

func headID(sentence int, head string) string {
	if head == "_" || head == "0" || head == "" {
		return ""
	}
	return tokenID(sentence, head)
}
