package report

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/de-tools/sales-atlas/pkg/adapters"
	"github.com/de-tools/sales-atlas/pkg/models/api"
	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/selection"
	"github.com/rs/zerolog"
)

// Resolver is the report pipeline as seen by the HTTP layer.
type Resolver interface {
	Resolve(state domain.SelectionState) domain.ReportResult
	Years() []int
}

type Handler struct {
	resolver Resolver
}

func NewHandler(resolver Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// GetReport resolves the selection carried by the type and year query
// parameters. Pipeline conditions come back as 200 with an empty report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	reportType := r.URL.Query().Get("type")
	year := r.URL.Query().Get("year")

	state, ok := selection.FromInput(reportType, year)
	if !ok {
		writeJSON(w, r, http.StatusBadRequest, api.Error{Error: "unknown report type: " + reportType})
		return
	}

	result := h.resolver.Resolve(state)
	logger.Debug().
		Str("type", state.ReportType.String()).
		Str("year", year).
		Bool("empty", result.IsEmpty()).
		Str("condition", string(result.Condition)).
		Msg("report resolved")

	writeJSON(w, r, http.StatusOK, adapters.MapDomainReportToAPI(state, result))
}

func (h *Handler) ListYears(w http.ResponseWriter, r *http.Request) {
	years := h.resolver.Years()
	if years == nil {
		years = []int{}
	}
	writeJSON(w, r, http.StatusOK, api.Years{Years: years})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")

		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(api.Error{Error: "failed to encode response"})
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to write response")
	}
}
