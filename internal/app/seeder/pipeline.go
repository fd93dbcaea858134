package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/alex-dev-neo/xtts-api-server/internal/adapter/phoneme/cmudict"
)

// Phase names in execution order.
const (
	PhaseMigrate = "migrate"
	PhaseCMU     = "cmu"
)

var allPhases = []string{PhaseMigrate, PhaseCMU}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Deleted  int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline migrates the schema and loads the CMU dictionary.
type Pipeline struct {
	log     *slog.Logger
	repo    PronunciationRepo
	tx      TxRunner
	migrate MigrateFunc
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline. migrate may be nil when the schema is managed elsewhere.
func NewPipeline(log *slog.Logger, repo PronunciationRepo, tx TxRunner, migrate MigrateFunc, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log.With("service", "seeder"),
		repo:    repo,
		tx:      tx,
		migrate: migrate,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded an error.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases run.
// A failed migration stops the pipeline; unknown phase names are rejected.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseMigrate:
			result = p.runMigrate(ctx)
		case PhaseCMU:
			result = p.runCMU(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			if phase == PhaseMigrate {
				return fmt.Errorf("migrate: %w", result.Err)
			}
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("deleted", result.Deleted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}
	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return nil, fmt.Errorf("unknown phase %q", ph)
		}
		filter[ph] = true
	}
	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
		}
	}
	return out, nil
}

func (p *Pipeline) runMigrate(ctx context.Context) PhaseResult {
	if p.migrate == nil || p.cfg.DryRun {
		return PhaseResult{Skipped: 1}
	}
	if err := p.migrate(ctx); err != nil {
		return PhaseResult{Err: err}
	}
	return PhaseResult{}
}

// runCMU parses the dictionary and upserts it in batches inside one transaction.
func (p *Pipeline) runCMU(ctx context.Context) PhaseResult {
	if p.cfg.CMUPath == "" {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("cmu path not configured")}
	}

	parsed, err := cmudict.ParseFile(p.cfg.CMUPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse cmu: %w", err)}
	}
	p.log.Info("cmu parsed",
		slog.Int("lines", parsed.Stats.TotalLines),
		slog.Int("entries", len(parsed.Entries)),
		slog.Int("unique_words", parsed.Stats.UniqueWords),
	)

	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(parsed.Entries)}
	}

	var result PhaseResult
	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		if p.cfg.Replace {
			n, err := p.repo.DeleteAll(ctx)
			if err != nil {
				return fmt.Errorf("delete existing: %w", err)
			}
			result.Deleted = n
		}

		n, err := batchProcess(parsed.Entries, p.cfg.BatchSize, func(batch []cmudict.Entry) (int, error) {
			return p.repo.BulkUpsert(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("upsert pronunciations: %w", err)
		}
		result.Inserted = n
		return nil
	})
	if err != nil {
		return PhaseResult{Err: err}
	}

	if total, err := p.repo.Count(ctx); err == nil {
		p.log.Info("dictionary stored", slog.Int("words", total))
	}
	return result
}

func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 1000
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
