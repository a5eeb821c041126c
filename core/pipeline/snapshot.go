package pipeline

import "photobooth-pipeline/core/models"

// BuildSnapshot assembles the immutable configuration capture for a new job.
// All inputs must already be resolved by the caller; the builder performs no
// I/O. Responses are copied so later session mutations cannot leak into the
// snapshot.
func BuildSnapshot(session *models.Session, experience *models.Experience, outcome *models.OutputConfig, overlay *models.MediaReference) models.JobSnapshot {
	responses := make([]models.Response, len(session.Responses))
	copy(responses, session.Responses)

	return models.JobSnapshot{
		Responses:         responses,
		ExperienceVersion: experience.Version,
		Outcome:           outcome,
		Overlay:           overlay,
	}
}
