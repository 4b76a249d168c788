// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/hmonglove/cliparse"
	"github.com/danielhkuo/hmonglove/db"
	"github.com/danielhkuo/hmonglove/models"
)

// TestAdminPassword is the stats password in GetTestConfig
const TestAdminPassword = "test-admin-password"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   ":memory:",
		DatabaseType:  cliparse.DatabaseSQLite,
		AdminPassword: TestAdminPassword,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// ValidSubmission returns a payload that passes validation
func ValidSubmission() models.SubmitRequest {
	return models.SubmitRequest{
		Sexe:              models.SexeFemme,
		Age:               29,
		Q1Usage:           models.UsageParfois,
		Q2Interet:         models.InterestOui,
		Q4Culture:         models.CulturePeu,
		Q5CultureFeatures: []string{"clan"},
		Q6Features:        []string{},
		Q9Style:           models.StyleLesDeux,
		Q10Accroche:       models.HookFun,
		Langue:            models.LangFrench,
	}
}

// InsertTestResponse stores r directly, bypassing validation.
// Empty ID and zero CreatedAt are filled in.
func InsertTestResponse(t *testing.T, conn *sql.DB, r models.Response) models.Response {
	t.Helper()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.Q5CultureFeatures == nil {
		r.Q5CultureFeatures = []string{}
	}
	if r.Q6Features == nil {
		r.Q6Features = []string{}
	}

	q5, _ := json.Marshal(r.Q5CultureFeatures)
	q6, _ := json.Marshal(r.Q6Features)

	_, err := conn.Exec(`
		INSERT INTO response (
			id, ip_hash, sexe, age, ville,
			q1_usage, q2_interet, q3_pourquoi, q4_culture,
			q5_culture_features, q6_features, q7_fuir, q8_rester,
			q9_style, q10_accroche, langue, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`,
		r.ID, r.IPHash, string(r.Sexe), r.Age, r.Ville,
		string(r.Q1Usage), string(r.Q2Interet), r.Q3Pourquoi, string(r.Q4Culture),
		string(q5), string(q6), r.Q7Fuir, r.Q8Rester,
		string(r.Q9Style), string(r.Q10Accroche), r.Langue, r.CreatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to insert test response: %v", err)
	}

	return r
}

// CountResponses returns the number of stored responses
func CountResponses(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM response").Scan(&n); err != nil {
		t.Fatalf("Failed to count responses: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}
