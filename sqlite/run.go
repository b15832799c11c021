package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/dkubicek/preklad"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ preklad.RunService = (*RunService)(nil)

// RunService implements preklad.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a completed or failed pipeline run.
func (s *RunService) CreateRun(ctx context.Context, run *preklad.Run) error {
	if run.URL == "" {
		return preklad.Errorf(preklad.EINVALID, "run URL is required")
	}
	if run.Status != preklad.RunStatusOK && run.Status != preklad.RunStatusFailed {
		return preklad.Errorf(preklad.EINVALID, "invalid run status %q", run.Status)
	}

	run.ID = uuid.New().String()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, url, status, title, output_dir, content_hash, warnings, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.URL, run.Status, run.Title, run.OutputDir, run.ContentHash,
		run.Warnings, run.Error, run.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRuns returns the most recent runs, newest first.
func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*preklad.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, status, title, output_dir, content_hash, warnings, error, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*preklad.Run
	for rows.Next() {
		var run preklad.Run
		var createdAt string

		if err := rows.Scan(&run.ID, &run.URL, &run.Status, &run.Title, &run.OutputDir,
			&run.ContentHash, &run.Warnings, &run.Error, &createdAt); err != nil {
			return nil, err
		}

		run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
