// Command seeder loads a CMU pronunciation dictionary into PostgreSQL so the
// normalizer can serve phonemes from the database. It applies pending schema
// migrations first. It is intended to be run offline, not as part of the server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        parse the dictionary without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alex-dev-neo/xtts-api-server/internal/adapter/postgres"
	"github.com/alex-dev-neo/xtts-api-server/internal/adapter/postgres/pronunciation"
	"github.com/alex-dev-neo/xtts-api-server/internal/app"
	"github.com/alex-dev-neo/xtts-api-server/internal/app/seeder"
	"github.com/alex-dev-neo/xtts-api-server/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dictionary without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if seederCfg.CMUPath == "" {
		seederCfg.CMUPath = appCfg.Phonemes.CMUPath
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	if appCfg.Database.DSN == "" {
		logger.Error("database.dsn is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	migrate := func(ctx context.Context) error {
		return postgres.Migrate(ctx, logger, appCfg.Database.DSN)
	}

	pipeline := seeder.NewPipeline(logger, pronunciation.New(pool), postgres.NewTxManager(pool), migrate, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
