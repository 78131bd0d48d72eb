package repository

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/dskvich/image-api/pkg/domain"
)

type historyRepository struct {
	db *bun.DB
}

func NewHistoryRepository(db *bun.DB) *historyRepository {
	return &historyRepository{db: db}
}

// Save appends a record to the history log. Records are insert-only; there
// are deliberately no update or delete methods on this repository.
func (h *historyRepository) Save(ctx context.Context, rec *domain.HistoryRecord) error {
	_, err := h.db.NewInsert().
		Model(rec).
		Returning("id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("saving history record: %w", err)
	}

	return nil
}

func (h *historyRepository) List(ctx context.Context, limit int) ([]domain.HistoryRecord, error) {
	var recs []domain.HistoryRecord

	err := h.db.NewSelect().
		Model(&recs).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching history records: %w", err)
	}

	return recs, nil
}
