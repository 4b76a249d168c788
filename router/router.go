// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/hmonglove/cliparse"
	"github.com/danielhkuo/hmonglove/handlers"
	"github.com/danielhkuo/hmonglove/middleware"
)

func NewRouter(store handlers.ResponseStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	eligibilityHandler := handlers.NewEligibilityHandler(store)
	submitHandler := handlers.NewSubmitHandler(store)
	statsHandler := handlers.NewStatsHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus scrape endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Questionnaire (public)
	mux.HandleFunc("GET /api/check-ip", middleware.WithLogging(eligibilityHandler.CheckIP))
	mux.HandleFunc("POST /api/submit", middleware.WithLogging(submitHandler.Submit))

	// Dashboard (requires admin password)
	mux.HandleFunc("GET /api/stats", middleware.WithLogging(statsHandler.GetStats))

	// Root endpoint (exact match only)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hmonglove survey API v1"))
	})

	return mux
}
