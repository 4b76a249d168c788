// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/hmonglove/auth"
	"github.com/danielhkuo/hmonglove/metrics"
	"github.com/danielhkuo/hmonglove/middleware"
	"github.com/danielhkuo/hmonglove/models"
)

type EligibilityHandler struct {
	store ResponseStore
}

func NewEligibilityHandler(store ResponseStore) *EligibilityHandler {
	return &EligibilityHandler{store: store}
}

// HasResponded reports whether a response was already stored for the fingerprint.
// Storage errors are logged and reported as false so the form stays reachable.
func HasResponded(ctx context.Context, store ResponseStore, ipHash string) bool {
	exists, err := store.ExistsByIPHash(ctx, ipHash)
	if err != nil {
		slog.Error("failed to check ip hash", "error", err)
		metrics.EligibilityChecksTotal.WithLabelValues(metrics.ResultError).Inc()
		return false
	}

	if exists {
		metrics.EligibilityChecksTotal.WithLabelValues(metrics.ResultAnswered).Inc()
	} else {
		metrics.EligibilityChecksTotal.WithLabelValues(metrics.ResultEligible).Inc()
	}
	return exists
}

// CheckIP handles GET /api/check-ip
// Always answers 200; the check is advisory and never blocks a submission.
func (h *EligibilityHandler) CheckIP(w http.ResponseWriter, r *http.Request) {
	ipHash := auth.HashIP(middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.CheckIPResponse{
		AlreadyAnswered: HasResponded(r.Context(), h.store, ipHash),
	})
}
