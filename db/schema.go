// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/hmonglove/cliparse"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	schema := postgresSchema
	if dbType == cliparse.DatabaseSQLite {
		schema = sqliteSchema
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// ip_hash is indexed but deliberately not UNIQUE: the duplicate guard is advisory.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS response (
    id TEXT PRIMARY KEY,
    ip_hash TEXT NOT NULL,
    sexe TEXT NOT NULL CHECK (sexe IN ('HOMME', 'FEMME', 'AUTRE')),
    age INTEGER NOT NULL,
    ville TEXT NOT NULL DEFAULT '',
    q1_usage TEXT NOT NULL,
    q2_interet TEXT NOT NULL,
    q3_pourquoi TEXT,
    q4_culture TEXT NOT NULL,
    q5_culture_features JSONB NOT NULL DEFAULT '[]',
    q6_features JSONB NOT NULL DEFAULT '[]',
    q7_fuir TEXT,
    q8_rester TEXT,
    q9_style TEXT NOT NULL,
    q10_accroche TEXT NOT NULL,
    langue TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_response_ip_hash ON response(ip_hash);
CREATE INDEX IF NOT EXISTS idx_response_created_at ON response(created_at);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS response (
    id TEXT PRIMARY KEY,
    ip_hash TEXT NOT NULL,
    sexe TEXT NOT NULL CHECK (sexe IN ('HOMME', 'FEMME', 'AUTRE')),
    age INTEGER NOT NULL,
    ville TEXT NOT NULL DEFAULT '',
    q1_usage TEXT NOT NULL,
    q2_interet TEXT NOT NULL,
    q3_pourquoi TEXT,
    q4_culture TEXT NOT NULL,
    q5_culture_features TEXT NOT NULL DEFAULT '[]',
    q6_features TEXT NOT NULL DEFAULT '[]',
    q7_fuir TEXT,
    q8_rester TEXT,
    q9_style TEXT NOT NULL,
    q10_accroche TEXT NOT NULL,
    langue TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_response_ip_hash ON response(ip_hash);
CREATE INDEX IF NOT EXISTS idx_response_created_at ON response(created_at);
`
