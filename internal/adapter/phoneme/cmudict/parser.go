// Package cmudict reads the CMU Pronouncing Dictionary and serves ARPAbet
// transcriptions from memory.
package cmudict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// Entry is one pronunciation variant of a word.
type Entry struct {
	Word     string   // lowercased, e.g. "house"
	Variant  int      // 0 for primary, 1 for (2), 2 for (3), etc.
	Phonemes []string // ARPAbet with stress digits, e.g. ["HH", "AW1", "S"]
}

// ParseResult holds the parsed dictionary data.
type ParseResult struct {
	Entries []Entry
	Stats   Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	UniqueWords  int
}

// ParseFile reads a dictionary file. Files ending in .gz, .zst or .xz are
// decompressed transparently.
func ParseFile(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	r, closeFn, err := decompress(f, filepath.Ext(filePath))
	if err != nil {
		return ParseResult{}, fmt.Errorf("%s: %w", filePath, err)
	}
	defer closeFn()

	return Parse(r)
}

func decompress(r io.Reader, ext string) (io.Reader, func(), error) {
	noop := func() {}
	switch strings.ToLower(ext) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, noop, fmt.Errorf("gzip: %w", err)
		}
		return zr, func() { zr.Close() }, nil
	case ".zst":
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, noop, fmt.Errorf("zstd: %w", err)
		}
		return zr, zr.Close, nil
	case ".xz":
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, noop, fmt.Errorf("xz: %w", err)
		}
		return xr, noop, nil
	}
	return r, noop, nil
}

// Parse reads dictionary lines from r. Both the classic "WORD  PH PH" layout
// and the lowercase "word PH PH # comment" layout are accepted.
func Parse(r io.Reader) (ParseResult, error) {
	var result ParseResult
	words := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		result.Stats.TotalLines++
		line := scanner.Text()

		entry, err := parseLine(line)
		if errors.Is(err, errSkipLine) {
			if isComment(line) {
				result.Stats.CommentLines++
			}
			continue
		}

		result.Stats.ParsedLines++
		result.Entries = append(result.Entries, entry)
		words[entry.Word] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	result.Stats.UniqueWords = len(words)
	return result, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, ";;;") || strings.HasPrefix(line, "#")
}

// parseLine parses a single dictionary line, or returns errSkipLine.
func parseLine(line string) (Entry, error) {
	if line == "" || isComment(line) {
		return Entry{}, errSkipLine
	}
	if i := strings.Index(line, " #"); i >= 0 {
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Entry{}, errSkipLine
	}

	word, variant := parseWordAndVariant(fields[0])
	if word == "" {
		return Entry{}, errSkipLine
	}
	return Entry{Word: word, Variant: variant, Phonemes: fields[1:]}, nil
}

// parseWordAndVariant splits a raw word like "HOUSE(2)" into
// the normalized word and variant index.
// Primary pronunciation has variant index 0, "(2)" maps to 1, "(3)" to 2, etc.
func parseWordAndVariant(raw string) (string, int) {
	idx := strings.IndexByte(raw, '(')
	if idx <= 0 || !strings.HasSuffix(raw, ")") {
		return domain.NormalizeText(raw), 0
	}

	n, err := strconv.Atoi(raw[idx+1 : len(raw)-1])
	if err != nil || n < 1 {
		return domain.NormalizeText(raw), 0
	}
	return domain.NormalizeText(raw[:idx]), n - 1
}
