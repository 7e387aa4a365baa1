package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Strykr-Ai/Strykr-Ai-Auto-Bot/internal/core/domain"
)

// ListProcessedSince returns processed-theme records with processed_at at or
// after the cutoff. Filtering happens in SQL so large retention caps never
// load the full history.
func (db *DB) ListProcessedSince(ctx context.Context, cutoff time.Time) ([]domain.ProcessedTheme, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, processed_at, category, keywords, payload
		FROM processed_themes
		WHERE processed_at >= $1
		ORDER BY processed_at DESC`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list processed themes: %w", err)
	}
	defer rows.Close()

	var records []domain.ProcessedTheme

	for rows.Next() {
		var (
			record   domain.ProcessedTheme
			id       uuid.UUID
			category string
		)

		if err := rows.Scan(&id, &record.ProcessedAt, &category, &record.Keywords, &record.Payload); err != nil {
			return nil, fmt.Errorf("scan processed theme: %w", err)
		}

		record.ID = id.String()
		record.Category = domain.Category(category)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate processed themes: %w", err)
	}

	return records, nil
}

// AppendProcessed inserts a new processed-theme record.
func (db *DB) AppendProcessed(ctx context.Context, record domain.ProcessedTheme) error {
	processedAt := record.ProcessedAt
	if processedAt.IsZero() {
		processedAt = time.Now()
	}

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO processed_themes (id, processed_at, category, keywords, payload)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), processedAt, string(record.Category), record.Keywords, record.Payload)
	if err != nil {
		return fmt.Errorf("append processed theme: %w", err)
	}

	return nil
}

// PruneProcessed deletes all but the newest keep records.
func (db *DB) PruneProcessed(ctx context.Context, keep int) error {
	tag, err := db.Pool.Exec(ctx, `
		DELETE FROM processed_themes
		WHERE id NOT IN (
			SELECT id FROM processed_themes
			ORDER BY processed_at DESC
			LIMIT $1
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune processed themes: %w", err)
	}

	if deleted := tag.RowsAffected(); deleted > 0 {
		db.Logger.Debug().Int64("deleted", deleted).Msg("pruned processed theme history")
	}

	return nil
}

// DeleteProcessed removes a single record by identifier.
func (db *DB) DeleteProcessed(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("parse record id: %w", err)
	}

	if _, err := db.Pool.Exec(ctx, `DELETE FROM processed_themes WHERE id = $1`, parsed); err != nil {
		return fmt.Errorf("delete processed theme: %w", err)
	}

	return nil
}
