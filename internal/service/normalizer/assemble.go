package normalizer

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

// assemble splices every span into text. Spans may be given in any order;
// they must lie within text and must not overlap or share a start offset.
func assemble(text string, spans []domain.ReplacementSpan) (string, error) {
	if len(spans) == 0 {
		return text, nil
	}

	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b domain.ReplacementSpan) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.Stop, b.Stop))
	})

	size := len(text)
	prevStop := 0
	for i, sp := range sorted {
		if sp.Start < 0 || sp.Stop > len(text) || sp.Start > sp.Stop {
			return "", fmt.Errorf("span [%d, %d) in text of %d bytes: %w", sp.Start, sp.Stop, len(text), domain.ErrSpanBounds)
		}
		if sp.Start < prevStop || (i > 0 && sp.Start == sorted[i-1].Start) {
			return "", fmt.Errorf("span [%d, %d) and [%d, %d): %w",
				sorted[i-1].Start, sorted[i-1].Stop, sp.Start, sp.Stop, domain.ErrSpanOverlap)
		}
		prevStop = sp.Stop
		size += len(sp.Text) - (sp.Stop - sp.Start)
	}

	var b strings.Builder
	b.Grow(size)
	pos := 0
	for _, sp := range sorted {
		b.WriteString(text[pos:sp.Start])
		b.WriteString(sp.Text)
		pos = sp.Stop
	}
	b.WriteString(text[pos:])
	return b.String(), nil
}
