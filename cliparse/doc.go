// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseURL: connection string; defaults to hmonglove.db for sqlite
  - AdminPassword: stats dashboard password (empty keeps stats locked)
  - LogLevel, LogFormat: slog settings (info, text)

# CLI Flags and Environment Variables

	-p               PORT
	-d               DATABASE_URL
	-t               DATABASE_TYPE
	--admin-password ADMIN_PASSWORD
	--log-level      LOG_LEVEL
	--log-format     LOG_FORMAT

CLI flags take precedence over environment variables. main loads a .env file
into the environment before parsing.
*/
package cliparse
