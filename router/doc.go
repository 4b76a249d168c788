// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the hmonglove survey API.

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

	GET  /health         - Liveness
	GET  /metrics        - Prometheus metrics
	GET  /api/check-ip   - Has this address already answered (advisory)
	POST /api/submit     - Store one questionnaire response
	GET  /api/stats      - Aggregate report (Authorization: Bearer <admin password>)

Optional /api/stats query filters: sexe, q2_interet, langue.

The mux is not wrapped in CORS here; main does that so tests can hit
routes directly.
*/
package router
