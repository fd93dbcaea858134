package pronunciation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

const (
	maxBatch      = 100
	wait          = 2 * time.Millisecond
	lookupTimeout = 5 * time.Second
)

type wordRepo interface {
	GetByWords(ctx context.Context, words []string) (map[string][]string, error)
}

// Transcriber answers single-word lookups from the database. Concurrent
// lookups arriving within a short window are coalesced into one query.
// It keeps no cache of its own; wrap it with phoneme.Cache for that.
type Transcriber struct {
	loader *dataloader.Loader[string, []string]
	log    *slog.Logger
}

// NewTranscriber creates a Transcriber backed by repo.
func NewTranscriber(logger *slog.Logger, repo wordRepo) *Transcriber {
	log := logger.With("adapter", "pronunciation_loader")
	return &Transcriber{
		loader: dataloader.NewBatchedLoader(
			newWordsBatchFn(repo, log),
			dataloader.WithWait[string, []string](wait),
			dataloader.WithBatchCapacity[string, []string](maxBatch),
			dataloader.WithCache[string, []string](&dataloader.NoCache[string, []string]{}),
		),
		log: log,
	}
}

// Transcribe returns the primary transcription of word, or domain.ErrUnknownWord.
func (t *Transcriber) Transcribe(ctx context.Context, word string) ([]string, error) {
	key := strings.ToLower(word)
	ph, err := t.loader.Load(ctx, key)()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("pronunciation %q: %w", word, err)
	}
	return ph, nil
}

func newWordsBatchFn(repo wordRepo, log *slog.Logger) dataloader.BatchFunc[string, []string] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[[]string] {
		// A batch carries the context of whichever caller arrived first; its
		// cancellation must not fail the other callers sharing the batch.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		defer cancel()

		found, err := repo.GetByWords(ctx, keys)
		if err != nil {
			log.Error("batch lookup failed", slog.Int("keys", len(keys)), slog.String("error", err.Error()))
			return errorResults(len(keys), err)
		}

		results := make([]*dataloader.Result[[]string], len(keys))
		for i, key := range keys {
			if ph, ok := found[key]; ok {
				results[i] = &dataloader.Result[[]string]{Data: ph}
			} else {
				results[i] = &dataloader.Result[[]string]{Error: domain.ErrUnknownWord}
			}
		}
		return results
	}
}

// errorResults creates n results all carrying the same error.
func errorResults(n int, err error) []*dataloader.Result[[]string] {
	results := make([]*dataloader.Result[[]string], n)
	for i := range results {
		results[i] = &dataloader.Result[[]string]{Error: err}
	}
	return results
}
