package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/alex-dev-neo/xtts-api-server/internal/adapter/phoneme"
	"github.com/alex-dev-neo/xtts-api-server/internal/adapter/phoneme/cmudict"
	"github.com/alex-dev-neo/xtts-api-server/internal/adapter/postgres"
	"github.com/alex-dev-neo/xtts-api-server/internal/adapter/postgres/pronunciation"
	"github.com/alex-dev-neo/xtts-api-server/internal/adapter/provider/udpipe"
	"github.com/alex-dev-neo/xtts-api-server/internal/config"
	"github.com/alex-dev-neo/xtts-api-server/internal/numspell"
	"github.com/alex-dev-neo/xtts-api-server/internal/service/normalizer"
	"github.com/alex-dev-neo/xtts-api-server/internal/transport/middleware"
	"github.com/alex-dev-neo/xtts-api-server/internal/transport/rest"
)

type transcriber interface {
	Transcribe(ctx context.Context, word string) ([]string, error)
}

// Normalizer is a fully wired normalizer together with the resources it owns.
type Normalizer struct {
	Service *normalizer.Service
	// Components are pinged by the readiness and health endpoints.
	Components map[string]rest.Pinger

	closers []func()
}

// Close releases the resources opened by BuildNormalizer.
func (n *Normalizer) Close() {
	for i := len(n.closers) - 1; i >= 0; i-- {
		n.closers[i]()
	}
}

// BuildNormalizer connects the normalizer to its morphological analyzer, phoneme source and
// numeral speller as configured.
func BuildNormalizer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Normalizer, error) {
	n := &Normalizer{Components: make(map[string]rest.Pinger)}

	analyzer := udpipe.NewProvider(udpipe.Config{
		BaseURL: cfg.Parser.URL,
		Model:   cfg.Parser.Model,
		Timeout: cfg.Parser.Timeout,
	}, logger)
	n.Components["parser"] = analyzer

	phonemes, err := n.buildPhonemes(ctx, cfg, logger)
	if err != nil {
		n.Close()
		return nil, err
	}

	var subs []normalizer.Substitution
	if cfg.Normalizer.SubstitutionsPath != "" {
		subs, err = normalizer.LoadSubstitutions(cfg.Normalizer.SubstitutionsPath)
		if err != nil {
			n.Close()
			return nil, err
		}
	}

	svc, err := normalizer.New(logger, normalizer.Config{
		Language:      cfg.Normalizer.Language,
		Substitutions: subs,
		UnicodeNFC:    cfg.Normalizer.UnicodeNFC,
	}, analyzer, phonemes, numspell.New())
	if err != nil {
		n.Close()
		return nil, err
	}
	n.Service = svc

	logger.Info("normalizer ready",
		slog.String("language", svc.Language()),
		slog.String("fingerprint", svc.Fingerprint()),
		slog.String("phonemes", cfg.Phonemes.Source),
		slog.Int("substitutions", len(subs)),
	)
	return n, nil
}

func (n *Normalizer) buildPhonemes(ctx context.Context, cfg *config.Config, logger *slog.Logger) (transcriber, error) {
	var t transcriber

	switch cfg.Phonemes.Source {
	case config.PhonemeSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		n.closers = append(n.closers, pool.Close)
		n.Components["database"] = pool

		t = pronunciation.NewTranscriber(logger, pronunciation.New(pool))
		if cfg.Phonemes.SpellUnknown {
			t = phoneme.NewSpellingFallback(t)
		}
	default:
		dict, err := cmudict.Load(logger, cfg.Phonemes.CMUPath, cmudict.WithLetterFallback(cfg.Phonemes.SpellUnknown))
		if err != nil {
			return nil, err
		}
		t = dict
	}

	if cfg.Phonemes.CacheSize > 0 {
		t = phoneme.NewCache(logger, t, cfg.Phonemes.CacheSize, cfg.Phonemes.CacheTTL)
	}
	return t, nil
}

// NewRouter builds the HTTP handler tree of the API server.
func NewRouter(cfg *config.Config, n *Normalizer, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	health := rest.NewHealthHandler(BuildVersion(), n.Service.Fingerprint(), n.Components)
	normalize := rest.NewNormalizeHandler(n.Service, cfg.Server.MaxBodyBytes, logger)

	mux := http.NewServeMux()
	mux.Handle("POST /api/normalize", limiter.Limit(cfg.Server.RateLimitPerMinute)(http.HandlerFunc(normalize.Normalize)))
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}

// Run is the application entry point. It loads configuration, wires the normalizer
// and serves the HTTP API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	n, err := BuildNormalizer(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build normalizer: %w", err)
	}
	defer n.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewRouter(cfg, n, limiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
