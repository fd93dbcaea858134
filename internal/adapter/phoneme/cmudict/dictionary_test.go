package cmudict

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEntries() []Entry {
	return []Entry{
		{Word: "house", Variant: 1, Phonemes: []string{"HH", "AW1", "Z"}},
		{Word: "house", Variant: 0, Phonemes: []string{"HH", "AW1", "S"}},
		{Word: "dell", Variant: 0, Phonemes: []string{"D", "EH1", "L"}},
	}
}

func TestDictionary_Transcribe(t *testing.T) {
	t.Parallel()

	d := New(newTestLogger(), testEntries())
	ctx := context.Background()

	ph, err := d.Transcribe(ctx, "House")
	require.NoError(t, err)
	assert.Equal(t, []string{"HH", "AW1", "S"}, ph, "primary variant wins regardless of order")

	ph, err = d.Transcribe(ctx, "DELL")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "EH1", "L"}, ph)

	_, err = d.Transcribe(ctx, "GPT")
	assert.ErrorIs(t, err, domain.ErrUnknownWord)
	assert.Equal(t, 2, d.Len())
}

func TestDictionary_LetterFallback(t *testing.T) {
	t.Parallel()

	d := New(newTestLogger(), testEntries(), WithLetterFallback(true))
	ctx := context.Background()

	ph, err := d.Transcribe(ctx, "GPT")
	require.NoError(t, err)
	assert.Equal(t, []string{"JH", "IY1", "P", "IY1", "T", "IY1"}, ph)

	ph, err = d.Transcribe(ctx, "house")
	require.NoError(t, err)
	assert.Equal(t, []string{"HH", "AW1", "S"}, ph, "known words are not spelled")

	_, err = d.Transcribe(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnknownWord)

	_, err = d.Transcribe(ctx, "don't")
	assert.ErrorIs(t, err, domain.ErrUnknownWord)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	d, err := Load(newTestLogger(), writeCompressed(t, "cmudict.dict.zst"))
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())

	ph, err := d.Transcribe(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "AE1", "R", "IH0", "S"}, ph)
}
