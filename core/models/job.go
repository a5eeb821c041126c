package models

import "time"

// Job represents one attempt to produce a transformed media artifact from a
// session's responses.
type Job struct {
	ID           string
	ProjectID    string
	SessionID    string
	ExperienceID string
	Status       JobStatus
	Snapshot     JobSnapshot
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// JobStatus represents the current status of a job. Sessions additionally use
// JobStatusNone before their first job is created.
type JobStatus string

const (
	JobStatusNone      JobStatus = "none"
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// JobSnapshot is the point-in-time configuration capture for a job. It is
// written once at job creation and never edited afterwards, so a job stays
// reproducible even after the experience or project configuration changes.
type JobSnapshot struct {
	Responses         []Response      `json:"responses"`
	ExperienceVersion int             `json:"experienceVersion"`
	Outcome           *OutputConfig   `json:"outcome,omitempty"`
	Overlay           *MediaReference `json:"overlay,omitempty"`
}
