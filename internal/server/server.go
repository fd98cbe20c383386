// Package server exposes the drilling cost engine over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/iwvelando/drill-cost/internal/analysis"
	"github.com/iwvelando/drill-cost/internal/config"
	"github.com/iwvelando/drill-cost/pkg/aggregate"
	"github.com/iwvelando/drill-cost/pkg/constants"
	"github.com/iwvelando/drill-cost/pkg/metrics"
	"github.com/iwvelando/drill-cost/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	recorder      *metrics.Recorder
}

// NewHandler constructs the HTTP handler that serves the evaluation API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
		recorder:      metrics.NewRecorder(),
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)

	// Run config in the request body (YAML or JSON)
	r.Post("/api/evaluate", h.handleEvaluate)

	// Run config as a multipart file upload
	r.Post("/api/upload", h.handleUpload)

	r.Get("/api/version", h.handleVersion)
	r.Get("/metrics", h.handleMetrics)

	return r
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.New().String()
			r.Header.Set(RequestIDHeader, reqID)
		}
		w.Header().Set(RequestIDHeader, reqID)
		next.ServeHTTP(w, r)
	})
}

type evaluateResponse struct {
	Report   *analysis.Report `json:"report"`
	CSV      string           `json:"csv"`
	Warnings []string         `json:"warnings,omitempty"`
	Duration string           `json:"duration"`
}

type warningResponse struct {
	Warning  string   `json:"warning"`
	Warnings []string `json:"warnings,omitempty"`
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEvaluate"
	start := time.Now()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadSize))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return
	}

	if isJSON(r.Header.Get("Content-Type")) {
		body, err = jsonToYAML(body)
		if err != nil {
			h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), op)
			return
		}
	}

	h.runEvaluation(w, r, body, start, op)
}

func (h *handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleUpload"
	start := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}

	h.runEvaluation(w, r, buf.Bytes(), start, op)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	if err := h.recorder.WriteText(w); err != nil {
		h.logger.Error("failed to write metrics",
			zap.String("op", "server.handleMetrics"),
			zap.Error(err),
		)
	}
}

func (h *handler) runEvaluation(w http.ResponseWriter, r *http.Request, configBytes []byte, start time.Time, op string) {
	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	if err := cfg.Validate(); err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid configuration: %v", err), op)
		return
	}
	warnings := cfg.ValidateConfiguration()

	report, err := analysis.Run(h.logger, *cfg)
	if errors.Is(err, aggregate.ErrEmptyInput) {
		h.recorder.RecordEmptyRun(len(cfg.Trials))
		h.logger.Warn("no valid trials",
			zap.String("op", op),
			zap.String("request", r.Header.Get(RequestIDHeader)),
			zap.Int("configured", len(cfg.Trials)),
		)
		h.writeJSON(w, http.StatusUnprocessableEntity, warningResponse{
			Warning:  "no valid trials: pressure and target depth must be greater than zero",
			Warnings: warnings,
		})
		return
	}
	if err != nil {
		h.respondError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to evaluate run: %v", err), op)
		return
	}

	h.recorder.RecordRun(report.Machine.String(), len(report.Trials), report.SkippedTrials, report.Summary.Score.Overall)

	elapsed := time.Since(start)
	response := evaluateResponse{
		Report:   report,
		CSV:      output.CsvString(report),
		Warnings: warnings,
		Duration: elapsed.String(),
	}

	h.logger.Info("run evaluated",
		zap.String("op", op),
		zap.String("request", r.Header.Get(RequestIDHeader)),
		zap.String("run", report.ID),
		zap.Int("trials", len(report.Trials)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

func jsonToYAML(data []byte) ([]byte, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}
	return yaml.Marshal(payload)
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("evaluation request failed",
		zap.String("op", op),
		zap.String("request", r.Header.Get(RequestIDHeader)),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
