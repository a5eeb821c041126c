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

// ExperienceRepository reads experience configuration documents. The admin UI
// owns writes; this subsystem only reads.
type ExperienceRepository struct {
	db *DB
}

// NewExperienceRepository creates a new experience repository
func NewExperienceRepository(db *DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

// GetExperience retrieves an experience by id
func (r *ExperienceRepository) GetExperience(ctx context.Context, experienceID string) (*models.Experience, error) {
	query := `
		SELECT id, workspace_id, type, version, draft, published
		FROM experiences
		WHERE id = $1
	`

	var experience models.Experience
	var draftJSON []byte
	var publishedJSON []byte

	err := r.db.QueryRowContext(ctx, query, experienceID).Scan(
		&experience.ID,
		&experience.WorkspaceID,
		&experience.Type,
		&experience.Version,
		&draftJSON,
		&publishedJSON,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pipeline.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if len(draftJSON) > 0 {
		var cfg models.ExperienceConfig
		if err := json.Unmarshal(draftJSON, &cfg); err != nil {
			return nil, fmt.Errorf("decode draft config: %w", err)
		}
		experience.Draft = &cfg
	}
	if len(publishedJSON) > 0 {
		var cfg models.ExperienceConfig
		if err := json.Unmarshal(publishedJSON, &cfg); err != nil {
			return nil, fmt.Errorf("decode published config: %w", err)
		}
		experience.Published = &cfg
	}

	return &experience, nil
}
