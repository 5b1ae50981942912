package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnshRaj112/todak-backend/internal/database"
	"github.com/AnshRaj112/todak-backend/pkg/utils"
)

// TestDBURL opens a private in-memory SQLite database per call.
const TestDBURL = "file::memory:?_time_format=sqlite"

// SetupTestDB creates a fresh database with the full schema.
func SetupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(context.Background(), string(database.SQLite), TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// CreateTestUser inserts a user directly and returns its id.
func CreateTestUser(t *testing.T, db *database.DB, id, password string) string {
	t.Helper()

	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	ctx := context.Background()
	err = db.WithTx(ctx, func(tx *database.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, password, nickname, start_date, has_seen_guide)
			VALUES (?, ?, ?, ?, ?)
		`, id, hashed, "Nick "+id, time.Now().UTC(), false)
		return err
	})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}

// CountRows returns the number of rows in table matching user_id (or id for users).
func CountRows(t *testing.T, db *database.DB, table, userID string) int {
	t.Helper()

	column := "user_id"
	if table == "users" {
		column = "id"
	}

	var n int
	ctx := context.Background()
	err := db.WithTx(ctx, func(tx *database.Tx) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table+` WHERE `+column+` = ?`, userID).Scan(&n)
	})
	if err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}

	var payload []byte
	switch b := body.(type) {
	case string:
		payload = []byte(b)
	default:
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
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
