// Package seeder loads a pronunciation dictionary into the database.
package seeder

import (
	"context"

	"github.com/alex-dev-neo/xtts-api-server/internal/adapter/phoneme/cmudict"
)

// PronunciationRepo defines the repository contract consumed by the pipeline.
// Implemented by pronunciation.Repo.
type PronunciationRepo interface {
	BulkUpsert(ctx context.Context, entries []cmudict.Entry) (int, error)
	DeleteAll(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}

// TxRunner runs fn inside one database transaction. Implemented by postgres.TxManager.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MigrateFunc applies pending schema migrations.
type MigrateFunc func(ctx context.Context) error
