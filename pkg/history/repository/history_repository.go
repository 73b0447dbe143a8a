package repository

import (
	"context"

	"cropplan/entities"
)

// HistoryRepository is append-only; records are never edited.
type HistoryRepository interface {
	Create(ctx context.Context, r *entities.HistoryRecord) error
	// List returns records in insertion order, optionally for one field.
	List(ctx context.Context, fieldID string) ([]entities.HistoryRecord, error)
}
