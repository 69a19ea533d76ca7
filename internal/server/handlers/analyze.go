// internal/server/handlers/analyze.go

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"scrollmark/internal/metrics"
	"scrollmark/internal/service/analytics"
	"scrollmark/internal/service/assembler"
	"scrollmark/internal/service/ingest"
)

// AnalyzeRequest is the body of an analyze call: one CSV document inline.
type AnalyzeRequest struct {
	CSVData string `json:"csv_data"`
}

// AnalyzeHandler handles analytics HTTP requests
type AnalyzeHandler struct {
	normalizer *ingest.Normalizer
	pipeline   *analytics.Pipeline
	assembler  *assembler.Assembler
	collector  *metrics.Collector
	logger     *logrus.Logger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(
	normalizer *ingest.Normalizer,
	pipeline *analytics.Pipeline,
	asm *assembler.Assembler,
	collector *metrics.Collector,
	logger *logrus.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		normalizer: normalizer,
		pipeline:   pipeline,
		assembler:  asm,
		collector:  collector,
		logger:     logger,
	}
}

// Analyze runs the full pipeline over one uploaded CSV document and returns
// the assembled dashboard payload.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, start, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if strings.TrimSpace(req.CSVData) == "" {
		h.respondError(w, start, http.StatusBadRequest, "Missing csv_data", nil)
		return
	}

	records, err := h.normalizer.Parse(req.CSVData)
	if err != nil {
		if errors.Is(err, ingest.ErrInvalidCSV) {
			h.respondError(w, start, http.StatusBadRequest, "Invalid CSV data", err)
		} else {
			h.respondError(w, start, http.StatusInternalServerError, "Failed to parse CSV data", err)
		}
		return
	}
	h.collector.AddRecordsIngested(len(records))

	report := h.pipeline.Analyze(r.Context(), records)
	payload := h.assembler.Assemble(report)

	h.logger.WithFields(logrus.Fields{
		"report_id": payload.ReportID,
		"records":   len(records),
		"duration":  time.Since(start).String(),
	}).Info("analysis complete")

	h.collector.ObserveAnalyze(http.StatusOK, time.Since(start))
	respondWithJSON(w, http.StatusOK, payload)
}

func (h *AnalyzeHandler) respondError(w http.ResponseWriter, start time.Time, code int, message string, err error) {
	if err != nil && code >= 500 {
		h.logger.WithError(err).Error(message)
	} else if err != nil {
		h.logger.WithError(err).Warn(message)
	}
	h.collector.ObserveAnalyze(code, time.Since(start))
	respondWithError(w, code, message)
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string) {
	response := map[string]string{"error": message}

	jsonResponse, _ := json.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}
