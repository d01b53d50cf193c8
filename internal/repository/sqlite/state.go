package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Houeta/cruise-flow/internal/models"
	"github.com/Houeta/cruise-flow/internal/repository"
)

// GetLastRun returns the summary of the last recorded run.
func (r *Repository) GetLastRun(ctx context.Context) (*models.RunSummary, error) {
	const opn = "repository.sqlite.GetLastRun"

	var (
		summary   models.RunSummary
		timestamp string
	)
	err := r.db.QueryRowContext(
		ctx,
		"SELECT run_timestamp, total_count, pages_processed, error_message FROM run_state WHERE id = 1",
	).Scan(&timestamp, &summary.TotalCount, &summary.PagesProcessed, &summary.ErrorMessage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrStateNotFound
		}
		return nil, fmt.Errorf("%s: failed to get run state: %w", opn, err)
	}

	summary.RunTimestamp, err = time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse run timestamp: %w", opn, err)
	}

	return &summary, nil
}

// SaveRun inserts or replaces the summary of the last run.
func (r *Repository) SaveRun(ctx context.Context, summary models.RunSummary) error {
	const opn = "repository.sqlite.SaveRun"

	_, err := r.db.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO run_state (id, run_timestamp, total_count, pages_processed, error_message)
		VALUES (1, ?, ?, ?, ?)`,
		summary.RunTimestamp.UTC().Format(time.RFC3339Nano),
		summary.TotalCount,
		summary.PagesProcessed,
		summary.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	return nil
}
