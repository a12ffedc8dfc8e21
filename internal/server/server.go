// Package server implements the JSON API for the calculator service.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Husnain585/Calculator-sub000/internal/history"
	"github.com/Husnain585/Calculator-sub000/internal/suggestion"
	"github.com/Husnain585/Calculator-sub000/pkg/amortize"
	"github.com/Husnain585/Calculator-sub000/pkg/constants"
	"github.com/Husnain585/Calculator-sub000/pkg/debtplan"
	"github.com/Husnain585/Calculator-sub000/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger       *zap.Logger
	maxBodyBytes int64
	version      string
	suggester    *suggestion.Client
	history      history.Repository
}

// Options bundles the collaborators for the HTTP handler.
type Options struct {
	Logger       *zap.Logger
	MaxBodyBytes int64
	Version      string
	Suggester    *suggestion.Client
	History      history.Repository
}

// NewHandler constructs the HTTP handler serving the calculator API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxBodyBytes := opts.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = constants.DefaultMaxBodyBytes
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
		version:      version,
		suggester:    opts.Suggester,
		history:      opts.History,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/calc/amortization", h.handleAmortization)
	mux.HandleFunc("/api/calc/mortgage", h.handleMortgage)
	mux.HandleFunc("/api/calc/future-value", h.handleFutureValue)
	mux.HandleFunc("/api/calc/simple-interest", h.handleSimpleInterest)
	mux.HandleFunc("/api/calc/retirement", h.handleRetirement)
	mux.HandleFunc("/api/calc/debt-payoff", h.handleDebtPayoff)
	mux.HandleFunc("/api/calc/debt-consolidation", h.handleDebtConsolidation)
	mux.HandleFunc("/api/calc/tip", h.handleTip)
	mux.HandleFunc("/api/calc/sales-tax", h.handleSalesTax)
	mux.HandleFunc("/api/calc/gcd", h.handleGCD)
	mux.HandleFunc("/api/calc/fraction", h.handleFraction)
	mux.HandleFunc("/api/calc/unit-conversion", h.handleUnitConversion)
	mux.HandleFunc("/api/calc/body-fat", h.handleBodyFat)
	mux.HandleFunc("/api/calc/calories", h.handleCalories)
	mux.HandleFunc("/api/calc/pace", h.handlePace)
	mux.HandleFunc("/api/calc/password", h.handlePassword)
	mux.HandleFunc("/api/calc/age", h.handleAge)
	mux.HandleFunc("/api/history", h.handleHistory)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type calcResponse struct {
	Calculator string      `json:"calculator"`
	Result     interface{} `json:"result"`
	Suggestion string      `json:"suggestion,omitempty"`
	Duration   string      `json:"duration"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// decode enforces POST and the body size limit, then decodes the JSON
// request body into v. It writes the error response itself and reports
// whether the caller should continue.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, op string, v interface{}) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodyBytes), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

// respondCalcError maps calculator errors onto HTTP statuses: validation
// failures are 400 with the offending field, non-finite or non-convergent
// numeric inputs are 422.
func (h *handler) respondCalcError(w http.ResponseWriter, err error, op string) {
	var ve *validation.Error
	if errors.As(err, &ve) {
		h.logger.Debug("calculation rejected",
			zap.String("op", op),
			zap.String("field", ve.Field),
			zap.String("error", ve.Message),
		)
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Error(), Field: ve.Field})
		return
	}

	if errors.Is(err, amortize.ErrInvalidRate) || errors.Is(err, debtplan.ErrUnpayableDebt) {
		h.logger.Debug("calculation rejected",
			zap.String("op", op),
			zap.String("error", err.Error()),
		)
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	h.respondError(w, http.StatusInternalServerError, err.Error(), op)
}

// finish attaches the suggestion, records history, and writes the
// response. History saves are best-effort.
func (h *handler) finish(w http.ResponseWriter, r *http.Request, calculator string, result interface{}, start time.Time) {
	h.finishWithRecord(w, r, calculator, result, result, start)
}

// finishWithRecord is finish with a separate value for the suggestion
// payload and history record, so handlers can redact secrets from what
// leaves the response path.
func (h *handler) finishWithRecord(w http.ResponseWriter, r *http.Request, calculator string, result, recorded interface{}, start time.Time) {
	response := calcResponse{
		Calculator: calculator,
		Result:     result,
		Duration:   time.Since(start).String(),
	}

	if h.suggester != nil {
		response.Suggestion = h.suggester.Suggest(r.Context(), calculator, recorded)
	}

	if h.history != nil {
		if err := h.history.Save(r.Context(), history.NewRecord(calculator, recorded)); err != nil {
			h.logger.Warn("failed to save calculation history",
				zap.String("op", "server.finish"),
				zap.String("calculator", calculator),
				zap.Error(err),
			)
		}
	}

	h.logger.Info("calculation served",
		zap.String("op", "server.finish"),
		zap.String("calculator", calculator),
		zap.Duration("duration", time.Since(start)),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if h.history == nil {
		h.writeJSON(w, http.StatusOK, []history.Record{})
		return
	}

	records, err := h.history.Recent(r.Context(), constants.DefaultHistoryLimit)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to list history: %v", err), "server.handleHistory")
		return
	}
	if records == nil {
		records = []history.Record{}
	}
	h.writeJSON(w, http.StatusOK, records)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
