// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /api/submit", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms), and records the latency in the
hmonglove_http_request_duration_seconds histogram.

# CORS Middleware

Enable cross-origin requests for the questionnaire frontend:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows any origin, without credentials, for methods GET, POST, OPTIONS with
headers Content-Type and Authorization.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusUnauthorized, "")     // {"error":"Unauthorized"}
	middleware.SubmitErrorResponse(w, http.StatusBadRequest, msg) // {"status":"error","message":msg}
	err := middleware.ParseJSONBody(r, &req)

# Client IP

	ip := middleware.GetClientIP(r)

Uses the first X-Forwarded-For entry, then X-Real-IP, then FallbackIP
(127.0.0.1). RemoteAddr is ignored so that all unproxied traffic shares one
fingerprint, matching how existing rows were hashed.
*/
package middleware
