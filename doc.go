// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the hmonglove survey API server.

hmonglove collects anonymous market-research answers about a Hmong dating
app and serves an aggregate report to a password-protected dashboard.

# Starting the Server

With no configuration the server listens on 3318 and stores responses in
a local SQLite file:

	ADMIN_PASSWORD=... go run .

Against PostgreSQL:

	go run . -t postgres -d "postgres://..."

A .env file in the working directory is loaded first if present.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string or SQLite path (default: hmonglove.db)
  - ADMIN_PASSWORD (--admin-password): Dashboard bearer secret. Unset denies every stats request.
  - LOG_LEVEL (--log-level): debug, info, warn, error (default: info)
  - LOG_FORMAT (--log-format): text or json (default: text)

# Architecture

  - handlers: Eligibility check, submission, stats and the aggregator
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, client address resolution, JSON helpers
  - models: Questionnaire types, choice enums and validation
  - auth: Address fingerprinting and the dashboard access gate
  - db: Driver selection, schema creation and the response store
  - metrics: Prometheus collectors
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
