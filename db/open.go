// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/hmonglove/cliparse"
)

// driverName maps a configured database type to its database/sql driver
func driverName(dbType string) (string, error) {
	switch dbType {
	case cliparse.DatabasePostgres:
		return "postgres", nil
	case cliparse.DatabaseSQLite:
		return "sqlite", nil
	}
	return "", fmt.Errorf("unsupported database type %q", dbType)
}

// Open connects to the configured database and verifies the connection
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	driver, err := driverName(dbType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if dbType == cliparse.DatabaseSQLite {
		// SQLite serializes writers; one connection also keeps :memory: databases intact
		conn.SetMaxOpenConns(1)
		if _, err := conn.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to apply sqlite pragma: %w", err)
		}
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}
