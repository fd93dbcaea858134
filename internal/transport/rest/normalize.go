package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alex-dev-neo/xtts-api-server/internal/domain"
	"github.com/alex-dev-neo/xtts-api-server/internal/service/normalizer"
	"github.com/alex-dev-neo/xtts-api-server/pkg/ctxutil"
)

type normalizerService interface {
	Process(ctx context.Context, text string) (*normalizer.Report, error)
}

// NormalizeHandler serves the text normalization endpoint.
type NormalizeHandler struct {
	svc     normalizerService
	maxBody int64
	log     *slog.Logger
}

// NewNormalizeHandler creates a NormalizeHandler. Request bodies above maxBody bytes are rejected.
func NewNormalizeHandler(svc normalizerService, maxBody int64, logger *slog.Logger) *NormalizeHandler {
	return &NormalizeHandler{svc: svc, maxBody: maxBody, log: logger.With("handler", "normalize")}
}

type normalizeRequest struct {
	Text string `json:"text"`
}

type normalizeResponse struct {
	Text     string            `json:"text"`
	Rendered int               `json:"rendered"`
	Failures []failureResponse `json:"failures"`
}

type failureResponse struct {
	Text     string `json:"text"`
	Decision string `json:"decision"`
	Error    string `json:"error"`
}

// Normalize handles POST /api/normalize.
func (h *NormalizeHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	log := ctxutil.LoggerFromCtx(r.Context(), h.log)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req normalizeRequest
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.svc.Process(r.Context(), req.Text)
	if err != nil {
		h.handleError(w, r, log, err)
		return
	}

	for _, f := range report.Failures {
		log.DebugContext(r.Context(), "numeral left as digits",
			slog.String("text", f.Text),
			slog.String("decision", f.Decision.String()),
			slog.String("error", f.Err.Error()),
		)
	}

	writeJSON(w, http.StatusOK, toNormalizeResponse(report))
}

func (h *NormalizeHandler) handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case r.Context().Err() != nil:
		// client went away; nothing useful to write
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "normalization timed out")
	default:
		log.ErrorContext(r.Context(), "normalize failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "normalization failed")
	}
}

func toNormalizeResponse(r *normalizer.Report) normalizeResponse {
	resp := normalizeResponse{
		Text:     r.Text,
		Rendered: r.Rendered,
		Failures: make([]failureResponse, 0, len(r.Failures)),
	}
	for _, f := range r.Failures {
		resp.Failures = append(resp.Failures, failureResponse{
			Text:     f.Text,
			Decision: f.Decision.String(),
			Error:    f.Err.Error(),
		})
	}
	return resp
}
