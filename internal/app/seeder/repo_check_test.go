package seeder_test

import (
	postgres "github.com/alex-dev-neo/xtts-api-server/internal/adapter/postgres"
	"github.com/alex-dev-neo/xtts-api-server/internal/adapter/postgres/pronunciation"
	"github.com/alex-dev-neo/xtts-api-server/internal/app/seeder"
)

// Compile-time checks against the production implementations.
var (
	_ seeder.PronunciationRepo = (*pronunciation.Repo)(nil)
	_ seeder.TxRunner          = (*postgres.TxManager)(nil)
)
