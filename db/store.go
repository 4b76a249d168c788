// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/hmonglove/models"
)

// ResponseStore persists questionnaire submissions. Rows are append-only:
// there is no update or delete.
type ResponseStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewResponseStore(db *sql.DB) *ResponseStore {
	return &ResponseStore{db: db, now: time.Now}
}

// Create assigns an ID and creation time to r and inserts it
func (s *ResponseStore) Create(ctx context.Context, r *models.Response) error {
	q5, err := json.Marshal(nonNil(r.Q5CultureFeatures))
	if err != nil {
		return fmt.Errorf("failed to encode q5_culture_features: %w", err)
	}
	q6, err := json.Marshal(nonNil(r.Q6Features))
	if err != nil {
		return fmt.Errorf("failed to encode q6_features: %w", err)
	}

	id := uuid.NewString()
	createdAt := s.now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO response (
			id, ip_hash, sexe, age, ville,
			q1_usage, q2_interet, q3_pourquoi, q4_culture,
			q5_culture_features, q6_features, q7_fuir, q8_rester,
			q9_style, q10_accroche, langue, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`,
		id, r.IPHash, string(r.Sexe), r.Age, r.Ville,
		string(r.Q1Usage), string(r.Q2Interet), r.Q3Pourquoi, string(r.Q4Culture),
		string(q5), string(q6), r.Q7Fuir, r.Q8Rester,
		string(r.Q9Style), string(r.Q10Accroche), r.Langue, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert response: %w", err)
	}

	r.ID = id
	r.CreatedAt = createdAt
	return nil
}

// ExistsByIPHash reports whether any response was stored for the fingerprint
func (s *ResponseStore) ExistsByIPHash(ctx context.Context, ipHash string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM response WHERE ip_hash = $1
		)
	`, ipHash).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query response by ip hash: %w", err)
	}
	return exists, nil
}

// List returns every response, newest first
func (s *ResponseStore) List(ctx context.Context) ([]models.Response, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ip_hash, sexe, age, ville,
		       q1_usage, q2_interet, q3_pourquoi, q4_culture,
		       q5_culture_features, q6_features, q7_fuir, q8_rester,
		       q9_style, q10_accroche, langue, created_at
		FROM response
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	responses := []models.Response{}
	for rows.Next() {
		var r models.Response
		var q5, q6 []byte
		if err := rows.Scan(
			&r.ID, &r.IPHash, &r.Sexe, &r.Age, &r.Ville,
			&r.Q1Usage, &r.Q2Interet, &r.Q3Pourquoi, &r.Q4Culture,
			&q5, &q6, &r.Q7Fuir, &r.Q8Rester,
			&r.Q9Style, &r.Q10Accroche, &r.Langue, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}

		if r.Q5CultureFeatures, err = decodeTags(q5); err != nil {
			return nil, fmt.Errorf("failed to decode q5_culture_features for %s: %w", r.ID, err)
		}
		if r.Q6Features, err = decodeTags(q6); err != nil {
			return nil, fmt.Errorf("failed to decode q6_features for %s: %w", r.ID, err)
		}

		responses = append(responses, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate responses: %w", err)
	}

	return responses, nil
}

func decodeTags(raw []byte) ([]string, error) {
	tags := []string{}
	if len(raw) == 0 {
		return tags, nil
	}
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, err
	}
	return nonNil(tags), nil
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
