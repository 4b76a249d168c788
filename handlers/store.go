// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"

	"github.com/danielhkuo/hmonglove/models"
)

// ResponseStore is the persistence the handlers need. *db.ResponseStore
// satisfies it; tests may substitute their own.
type ResponseStore interface {
	Create(ctx context.Context, r *models.Response) error
	ExistsByIPHash(ctx context.Context, ipHash string) (bool, error)
	List(ctx context.Context) ([]models.Response, error)
}
