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

// SessionRepository handles session documents. Sessions live under project
// scope; every query carries the project id.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// GetSession retrieves a session by project and session id
func (r *SessionRepository) GetSession(ctx context.Context, projectID, sessionID string) (*models.Session, error) {
	query := `
		SELECT id, project_id, experience_id, config_source, responses,
			job_id, job_status, result_media, guest_email, created_at, updated_at
		FROM sessions
		WHERE project_id = $1 AND id = $2
	`

	var session models.Session
	var responsesJSON []byte
	var resultMediaJSON []byte
	var jobID sql.NullString
	var guestEmail sql.NullString

	err := r.db.QueryRowContext(ctx, query, projectID, sessionID).Scan(
		&session.ID,
		&session.ProjectID,
		&session.ExperienceID,
		&session.ConfigSource,
		&responsesJSON,
		&jobID,
		&session.JobStatus,
		&resultMediaJSON,
		&guestEmail,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pipeline.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if jobID.Valid {
		session.JobID = jobID.String
	}
	if guestEmail.Valid {
		session.GuestEmail = guestEmail.String
	}
	if len(responsesJSON) > 0 {
		if err := json.Unmarshal(responsesJSON, &session.Responses); err != nil {
			return nil, fmt.Errorf("decode responses: %w", err)
		}
	}
	if len(resultMediaJSON) > 0 {
		var media models.MediaReference
		if err := json.Unmarshal(resultMediaJSON, &media); err != nil {
			return nil, fmt.Errorf("decode result media: %w", err)
		}
		session.ResultMedia = &media
	}

	return &session, nil
}

// ClaimJob conditionally sets the session's job-tracking fields to
// (jobID, pending). The WHERE clause makes the claim atomic against a
// concurrent request for the same session: only one writer can move the
// session into pending.
func (r *SessionRepository) ClaimJob(ctx context.Context, projectID, sessionID, jobID string) (bool, error) {
	query := `
		UPDATE sessions
		SET job_id = $1, job_status = $2, updated_at = NOW()
		WHERE project_id = $3 AND id = $4 AND job_status <> $2
	`

	result, err := r.db.ExecContext(ctx, query, jobID, models.JobStatusPending, projectID, sessionID)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// SetJobStatus updates only the session's job status field
func (r *SessionRepository) SetJobStatus(ctx context.Context, projectID, sessionID string, status models.JobStatus) error {
	query := `
		UPDATE sessions
		SET job_status = $1, updated_at = NOW()
		WHERE project_id = $2 AND id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, projectID, sessionID)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return pipeline.ErrNotFound
	}
	return nil
}

// SetGuestEmail stores the guest's delivery address, overwriting any
// previously stored one.
func (r *SessionRepository) SetGuestEmail(ctx context.Context, projectID, sessionID, email string) error {
	query := `
		UPDATE sessions
		SET guest_email = $1, updated_at = NOW()
		WHERE project_id = $2 AND id = $3
	`

	result, err := r.db.ExecContext(ctx, query, email, projectID, sessionID)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return pipeline.ErrNotFound
	}
	return nil
}
