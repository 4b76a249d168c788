// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/hmonglove/auth"
	"github.com/danielhkuo/hmonglove/metrics"
	"github.com/danielhkuo/hmonglove/middleware"
	"github.com/danielhkuo/hmonglove/models"
)

// maxSubmitBytes caps the questionnaire payload (free-text answers are ~1000 chars each)
const maxSubmitBytes = 64 << 10

type SubmitHandler struct {
	store ResponseStore
}

func NewSubmitHandler(store ResponseStore) *SubmitHandler {
	return &SubmitHandler{store: store}
}

// Submit handles POST /api/submit
// Validates the payload, fingerprints the caller and appends one response.
// A previous response from the same address does not block this one.
func (h *SubmitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBytes)

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		metrics.SubmissionsTotal.WithLabelValues(metrics.StatusInvalid).Inc()
		middleware.SubmitErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := models.ValidateSubmission(req); err != nil {
		var vErr *models.ValidationError
		message := "Invalid payload"
		if errors.As(err, &vErr) {
			message = vErr.Error()
		}
		metrics.SubmissionsTotal.WithLabelValues(metrics.StatusInvalid).Inc()
		middleware.SubmitErrorResponse(w, http.StatusBadRequest, message)
		return
	}

	ipHash := auth.HashIP(middleware.GetClientIP(r))
	resp := models.NewResponse(req, ipHash)

	if err := h.store.Create(r.Context(), &resp); err != nil {
		slog.Error("failed to store response", "error", err)
		metrics.SubmissionsTotal.WithLabelValues(metrics.StatusError).Inc()
		middleware.SubmitErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	metrics.SubmissionsTotal.WithLabelValues(metrics.StatusSuccess).Inc()
	slog.Info("response submitted",
		"response_id", resp.ID,
		"langue", resp.Langue,
		"had_local", req.HadLocal,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponse{
		Status: models.StatusSuccess,
	})
}
