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

// ProjectRepository reads project documents. Read-only from this subsystem.
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// GetProject retrieves a project by id
func (r *ProjectRepository) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	query := `
		SELECT id, name, overlays, main_experience
		FROM projects
		WHERE id = $1
	`

	var project models.Project
	var overlaysJSON []byte
	var mainExperienceJSON []byte

	err := r.db.QueryRowContext(ctx, query, projectID).Scan(
		&project.ID,
		&project.Name,
		&overlaysJSON,
		&mainExperienceJSON,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pipeline.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(overlaysJSON) > 0 {
		if err := json.Unmarshal(overlaysJSON, &project.Overlays); err != nil {
			return nil, fmt.Errorf("decode overlays: %w", err)
		}
	}
	if len(mainExperienceJSON) > 0 {
		if err := json.Unmarshal(mainExperienceJSON, &project.MainExperience); err != nil {
			return nil, fmt.Errorf("decode main experience: %w", err)
		}
	}

	return &project, nil
}
