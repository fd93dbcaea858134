// Package udpipe analyzes text with a UDPipe 2 REST server: tokenization,
// lemmas, morphological features and dependency heads.
package udpipe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
)

const (
	defaultBaseURL = "https://lindat.mff.cuni.cz/services/udpipe/api"
	defaultModel   = "russian"
	defaultTimeout = 10 * time.Second
)

// Config configures a Provider. Zero fields take defaults.
type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Provider calls a UDPipe 2 server.
type Provider struct {
	baseURL    string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from cfg.
func NewProvider(cfg Config, logger *slog.Logger) *Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Provider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "udpipe"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL and the default model (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return NewProvider(Config{BaseURL: baseURL}, logger)
}

type processResponse struct {
	Model  string `json:"model"`
	Result string `json:"result"`
}

// Analyze tokenizes, tags and parses text. Token offsets are byte offsets into text.
func (p *Provider) Analyze(ctx context.Context, text string) ([]domain.Token, error) {
	form := url.Values{
		"model":     {p.model},
		"tokenizer": {"ranges"},
		"tagger":    {""},
		"parser":    {""},
		"data":      {text},
	}
	encoded := form.Encode()

	p.log.DebugContext(ctx, "udpipe request", slog.Int("bytes", len(text)))

	newReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/process", strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	}

	resp, err := p.doWithRetry(ctx, newReq)
	if err != nil {
		p.log.ErrorContext(ctx, "udpipe request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("udpipe: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("udpipe: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("udpipe: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var pr processResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("udpipe: decode json: %w", err)
	}

	tokens, err := parseCoNLLU(text, pr.Result)
	if err != nil {
		return nil, fmt.Errorf("udpipe: %w", err)
	}

	p.log.DebugContext(ctx, "udpipe response",
		slog.String("model", pr.Model),
		slog.Int("tokens", len(tokens)),
	)
	return tokens, nil
}

// Ping checks that the server answers its model listing.
func (p *Provider) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("udpipe: create request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("udpipe: ping: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("udpipe: ping: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, newReq func() (*http.Request, error)) (*http.Response, error) {
	req, err := newReq()
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "udpipe retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	req, err = newReq()
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return p.httpClient.Do(req)
}
