package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes back the past-investigation lookup: prompts and summaries
// are matched with to_tsvector/plainto_tsquery, so the indexes must use
// the same expressions as the queries in pkg/services.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for prompt full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_prompt_gin
		ON tasks USING gin(to_tsvector('english', prompt))`)
	if err != nil {
		return fmt.Errorf("failed to create prompt GIN index: %w", err)
	}

	// GIN index for summary full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_summary_gin
		ON tasks USING gin(to_tsvector('english', COALESCE(summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create summary GIN index: %w", err)
	}

	return nil
}
