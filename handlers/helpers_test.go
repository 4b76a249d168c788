// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/hmonglove/db"
	"github.com/danielhkuo/hmonglove/models"
	"github.com/danielhkuo/hmonglove/testutil"
)

var errStoreDown = errors.New("store unavailable")

// failingStore returns errStoreDown from every call
type failingStore struct{}

func (failingStore) Create(context.Context, *models.Response) error {
	return errStoreDown
}

func (failingStore) ExistsByIPHash(context.Context, string) (bool, error) {
	return false, errStoreDown
}

func (failingStore) List(context.Context) ([]models.Response, error) {
	return nil, errStoreDown
}

// newTestStore returns a store over a fresh in-memory database
func newTestStore(t *testing.T) *db.ResponseStore {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	return db.NewResponseStore(conn)
}
