// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema, and stores responses.

# Connecting

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

Both PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite) are supported.
Queries use $N placeholders, which both drivers accept.

# Schema Creation

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. A single table, response,
holds one row per submission. Tag answers are JSON arrays (JSONB on
PostgreSQL, TEXT on SQLite).

ip_hash is indexed but not unique. Two submissions from the same address
can both be stored; the duplicate check is advisory.

# Response Store

	store := db.NewResponseStore(conn)
	err := store.Create(ctx, &resp)          // assigns ID and CreatedAt
	ok, err := store.ExistsByIPHash(ctx, h)
	all, err := store.List(ctx)              // newest first

There are no update or delete operations.
*/
package db
