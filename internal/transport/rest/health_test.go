package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type pingerMock struct {
	err   error
	calls int
}

func (m *pingerMock) Ping(_ context.Context) error {
	m.calls++
	return m.err
}

func newHealth(parserErr, dbErr error) *HealthHandler {
	return NewHealthHandler("v1.0.0", "0123456789abcdef", map[string]Pinger{
		"parser":   &pingerMock{err: parserErr},
		"database": &pingerMock{err: dbErr},
	})
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	parser := &pingerMock{err: errors.New("down")}
	h := NewHealthHandler("test-version", "", map[string]Pinger{"parser": parser})

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
	if parser.calls != 0 {
		t.Error("liveness must not ping components")
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		parserErr  error
		dbErr      error
		wantCode   int
		wantStatus string
	}{
		{"all up", nil, nil, http.StatusOK, "ok"},
		{"parser down", errors.New("connection refused"), nil, http.StatusServiceUnavailable, "down"},
		{"database down", nil, errors.New("connection refused"), http.StatusServiceUnavailable, "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			newHealth(tt.parserErr, tt.dbErr).Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			if resp := decodeHealth(t, rec); resp.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, resp.Status)
			}
		})
	}
}

func TestReady_NoComponents(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewHealthHandler("v", "", nil).Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newHealth(nil, nil).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Version != "v1.0.0" {
		t.Errorf("expected version 'v1.0.0', got %q", resp.Version)
	}
	if resp.Fingerprint != "0123456789abcdef" {
		t.Errorf("expected fingerprint, got %q", resp.Fingerprint)
	}
	for _, name := range []string{"parser", "database"} {
		comp, ok := resp.Components[name]
		if !ok {
			t.Fatalf("expected %q component in response", name)
		}
		if comp.Status != "ok" {
			t.Errorf("expected %s status 'ok', got %q", name, comp.Status)
		}
		if comp.Latency == "" {
			t.Errorf("expected non-empty latency for %s", name)
		}
	}
}

func TestHealth_ParserDown(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newHealth(errors.New("udpipe unreachable"), nil).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	resp := decodeHealth(t, rec)
	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
	if got := resp.Components["parser"].Status; got != "down" {
		t.Errorf("expected parser status 'down', got %q", got)
	}
	if got := resp.Components["database"].Status; got != "ok" {
		t.Errorf("expected database status 'ok', got %q", got)
	}
}
