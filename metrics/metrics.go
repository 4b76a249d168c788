// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hmonglove"

// Label values
const (
	ResultAnswered = "answered"
	ResultEligible = "eligible"
	ResultError    = "error"

	StatusSuccess = "success"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Questionnaire submissions, by outcome.",
		},
		[]string{"status"},
	)

	EligibilityChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "eligibility_checks_total",
			Help:      "Duplicate-submission checks, by result.",
		},
		[]string{"result"},
	)

	StatsRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stats_requests_total",
			Help:      "Stats dashboard requests, by HTTP status code.",
		},
		[]string{"code"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds, by path, method and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
