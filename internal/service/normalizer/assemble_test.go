package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

func TestAssemble_OrderIndependent(t *testing.T) {
	t.Parallel()

	text := "от 5 до 12 лет"
	a := domain.ReplacementSpan{Start: 5, Stop: 6, Text: "пяти"}
	b := domain.ReplacementSpan{Start: 11, Stop: 13, Text: "двенадцати"}

	forward, err := assemble(text, []domain.ReplacementSpan{a, b})
	require.NoError(t, err)
	backward, err := assemble(text, []domain.ReplacementSpan{b, a})
	require.NoError(t, err)

	assert.Equal(t, "от пяти до двенадцати лет", forward)
	assert.Equal(t, forward, backward)
	assert.Len(t, forward, len(text)+len(a.Text)-1+len(b.Text)-2)
}

func TestAssemble_EdgesAndEmpty(t *testing.T) {
	t.Parallel()

	got, err := assemble("7", []domain.ReplacementSpan{{Start: 0, Stop: 1, Text: "семь"}})
	require.NoError(t, err)
	assert.Equal(t, "семь", got)

	got, err = assemble("abc", nil)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)

	got, err = assemble("ab", []domain.ReplacementSpan{{Start: 1, Stop: 1, Text: "-"}})
	require.NoError(t, err)
	assert.Equal(t, "a-b", got)

	got, err = assemble("1 2", []domain.ReplacementSpan{{Start: 0, Stop: 1}, {Start: 1, Stop: 2, Text: "+"}})
	require.NoError(t, err)
	assert.Equal(t, "+2", got)
}

func TestAssemble_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spans   []domain.ReplacementSpan
		wantErr error
	}{
		{"overlap", []domain.ReplacementSpan{{Start: 0, Stop: 3}, {Start: 2, Stop: 4}}, domain.ErrSpanOverlap},
		{"same start", []domain.ReplacementSpan{{Start: 1, Stop: 1}, {Start: 1, Stop: 2}}, domain.ErrSpanOverlap},
		{"past end", []domain.ReplacementSpan{{Start: 3, Stop: 9}}, domain.ErrSpanBounds},
		{"negative", []domain.ReplacementSpan{{Start: -1, Stop: 1}}, domain.ErrSpanBounds},
		{"inverted", []domain.ReplacementSpan{{Start: 3, Stop: 2}}, domain.ErrSpanBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := assemble("abcdef", tt.spans)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsWholeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text        string
		start, stop int
		want        bool
	}{
		{"кг", 0, 4, true},
		{"5 кг.", 2, 6, true},
		{"кгб", 0, 4, false},
		{"экг", 2, 6, false},
		{"в 2020 г.", 8, 11, true},
		{"г.Москва", 0, 3, true},
		{"ог.", 2, 5, false},
		{"(GPT)", 1, 4, true},
		{"GPT4", 0, 3, false},
		{"x°C", 1, 4, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isWholeWord(tt.text, tt.start, tt.stop), "%q[%d:%d]", tt.text, tt.start, tt.stop)
	}
}
