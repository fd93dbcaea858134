// Package pronunciation stores the pronunciation dictionary in PostgreSQL.
// Reads are built with squirrel; bulk loads use pgx.Batch.
package pronunciation

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/alex-dev-neo/xtts-api-server/internal/adapter/postgres"
	"github.com/alex-dev-neo/xtts-api-server/internal/adapter/phoneme/cmudict"
)

const table = "pronunciations"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides pronunciation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pronunciation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByWords returns the primary (lowest variant) transcription of each word
// found. Words must already be lowercase. Missing words are absent from the map.
func (r *Repo) GetByWords(ctx context.Context, words []string) (map[string][]string, error) {
	if len(words) == 0 {
		return map[string][]string{}, nil
	}

	query, args, err := psql.
		Select("DISTINCT ON (word) word", "phonemes").
		From(table).
		Where(sq.Eq{"word": words}).
		OrderBy("word", "variant").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get pronunciations by words: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "pronunciation", fmt.Sprintf("batch of %d", len(words)))
	}
	defer rows.Close()

	result := make(map[string][]string, len(words))
	for rows.Next() {
		var (
			word     string
			phonemes []string
		)
		if err := rows.Scan(&word, &phonemes); err != nil {
			return nil, fmt.Errorf("scan pronunciation: %w", err)
		}
		result[word] = phonemes
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get pronunciations by words: %w", err)
	}

	return result, nil
}

// Count returns the number of distinct words stored.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := psql.Select("count(DISTINCT word)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count pronunciations: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "pronunciation", "count")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// BulkUpsert inserts entries in one pgx.Batch, replacing the phonemes of
// existing (word, variant) pairs. Callers chunk large inputs.
// Returns the number of affected rows.
func (r *Repo) BulkUpsert(ctx context.Context, entries []cmudict.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	stmt, _, err := psql.
		Insert(table).
		Columns("word", "variant", "phonemes").
		Values("", 0, []string(nil)).
		Suffix("ON CONFLICT (word, variant) DO UPDATE SET phonemes = EXCLUDED.phonemes, updated_at = now()").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build upsert pronunciation: %w", err)
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(stmt, e.Word, e.Variant, e.Phonemes)
	}

	n, err := r.sendBatchExec(ctx, batch)
	if err != nil {
		return n, postgres.MapError(err, "pronunciation", entries[min(n, len(entries)-1)].Word)
	}

	return n, nil
}

// DeleteAll removes every stored pronunciation. Returns the number of deleted rows.
func (r *Repo) DeleteAll(ctx context.Context) (int, error) {
	query, args, err := psql.Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete pronunciations: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "pronunciation", "all")
	}
	return int(tag.RowsAffected()), nil
}

// sendBatchExec sends a pgx.Batch and counts affected rows from Exec results.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var affected int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return affected, fmt.Errorf("batch exec: %w", err)
		}
		affected += int(tag.RowsAffected())
	}

	return affected, nil
}
