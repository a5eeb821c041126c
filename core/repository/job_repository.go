package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"photobooth-pipeline/core/models"
	"photobooth-pipeline/core/pipeline"
)

// JobRepository handles job documents. Jobs live under project scope. The
// snapshot column is written once at creation and never updated; only the
// status field mutates afterwards.
type JobRepository struct {
	db *DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *DB) *JobRepository {
	return &JobRepository{db: db}
}

// CreateJob inserts a new job document
func (r *JobRepository) CreateJob(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (id, project_id, session_id, experience_id, status, snapshot, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	snapshotJSON, err := json.Marshal(job.Snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		job.ID,
		job.ProjectID,
		job.SessionID,
		job.ExperienceID,
		job.Status,
		snapshotJSON,
		job.CreatedAt,
		job.UpdatedAt,
	)
	return err
}

// GetJob retrieves a job by project and job id
func (r *JobRepository) GetJob(ctx context.Context, projectID, jobID string) (*models.Job, error) {
	query := `
		SELECT id, project_id, session_id, experience_id, status, snapshot, created_at, updated_at
		FROM jobs
		WHERE project_id = $1 AND id = $2
	`

	var job models.Job
	var snapshotJSON []byte

	err := r.db.QueryRowContext(ctx, query, projectID, jobID).Scan(
		&job.ID,
		&job.ProjectID,
		&job.SessionID,
		&job.ExperienceID,
		&job.Status,
		&snapshotJSON,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pipeline.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(snapshotJSON) > 0 {
		if err := json.Unmarshal(snapshotJSON, &job.Snapshot); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
	}

	return &job, nil
}

// SetStatus updates a job's status
func (r *JobRepository) SetStatus(ctx context.Context, projectID, jobID string, status models.JobStatus) error {
	query := `
		UPDATE jobs
		SET status = $1, updated_at = NOW()
		WHERE project_id = $2 AND id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, projectID, jobID)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return pipeline.ErrNotFound
	}
	return nil
}
