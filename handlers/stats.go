// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/hmonglove/auth"
	"github.com/danielhkuo/hmonglove/cliparse"
	"github.com/danielhkuo/hmonglove/metrics"
	"github.com/danielhkuo/hmonglove/middleware"
)

type StatsHandler struct {
	store ResponseStore
	cfg   cliparse.Config
}

func NewStatsHandler(store ResponseStore, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{store: store, cfg: cfg}
}

// GetStats handles GET /api/stats
// Requires Authorization: Bearer <admin password>. Optional query filters:
// sexe, q2_interet, langue.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if !auth.AuthorizeHeader(r.Header.Get("Authorization"), h.cfg.AdminPassword) {
		h.fail(w, http.StatusUnauthorized, "")
		return
	}

	filter, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	responses, err := h.store.List(r.Context())
	if err != nil {
		slog.Error("failed to list responses", "error", err)
		h.fail(w, http.StatusInternalServerError, "Database error")
		return
	}

	report := Aggregate(responses, filter)

	metrics.StatsRequestsTotal.WithLabelValues(strconv.Itoa(http.StatusOK)).Inc()
	middleware.JSONResponse(w, http.StatusOK, report)
}

func (h *StatsHandler) fail(w http.ResponseWriter, statusCode int, message string) {
	metrics.StatsRequestsTotal.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	middleware.ErrorResponse(w, statusCode, message)
}
