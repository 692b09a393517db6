// Package server exposes the unit conversion tables over a small JSON API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/porousflow/simunits/internal/config"
	"github.com/porousflow/simunits/pkg/constants"
	"github.com/porousflow/simunits/pkg/unit/convert"
	"go.uber.org/zap"
)

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

type convertRequest struct {
	Values    []float64 `json:"values"`
	Unit      string    `json:"unit"`
	Direction string    `json:"direction,omitempty"`
}

type convertResponse struct {
	Unit      string    `json:"unit"`
	Direction string    `json:"direction"`
	Factor    float64   `json:"factor"`
	Values    []float64 `json:"values"`
}

// NewHandler constructs the HTTP handler that serves the conversion API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Conversion API endpoint
	mux.HandleFunc("/api/convert", h.handleConvert)

	// Unit vocabulary endpoint
	mux.HandleFunc("/api/units", h.handleUnits)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

func (h *handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse request: %v", err))
		return
	}

	factor, err := config.ResolveUnit(req.Unit)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	direction := req.Direction
	if direction == "" {
		direction = constants.DirectionFrom
	}

	values := make([]float64, len(req.Values))
	copy(values, req.Values)

	switch direction {
	case constants.DirectionFrom:
		convert.FromSlice(values, factor)
	case constants.DirectionTo:
		convert.ToSlice(values, factor)
	default:
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("unknown direction '%s' (expected '%s' or '%s')",
				direction, constants.DirectionFrom, constants.DirectionTo))
		return
	}

	h.logger.Debug("converted values",
		zap.String("op", "server.handleConvert"),
		zap.String("unit", req.Unit),
		zap.String("direction", direction),
		zap.Int("count", len(values)),
	)

	h.writeJSON(w, http.StatusOK, convertResponse{
		Unit:      req.Unit,
		Direction: direction,
		Factor:    factor,
		Values:    values,
	})
}

func (h *handler) handleUnits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"units": config.UnitNames(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	if h.logger != nil {
		h.logger.Error("conversion request failed",
			zap.String("op", "server.handleConvert"),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
