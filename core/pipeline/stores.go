package pipeline

import (
	"context"
	"errors"

	"photobooth-pipeline/core/models"
)

// ErrNotFound is returned by stores when a document does not exist
var ErrNotFound = errors.New("document not found")

// SessionStore handles session documents and their job-tracking fields
type SessionStore interface {
	GetSession(ctx context.Context, projectID, sessionID string) (*models.Session, error)

	// ClaimJob atomically sets (jobID, pending) on the session, but only if
	// the session does not already track a pending job. It reports whether
	// the claim won.
	ClaimJob(ctx context.Context, projectID, sessionID, jobID string) (bool, error)

	SetJobStatus(ctx context.Context, projectID, sessionID string, status models.JobStatus) error
	SetGuestEmail(ctx context.Context, projectID, sessionID, email string) error
}

// ExperienceStore reads experience configuration documents
type ExperienceStore interface {
	GetExperience(ctx context.Context, experienceID string) (*models.Experience, error)
}

// ProjectStore reads project documents
type ProjectStore interface {
	GetProject(ctx context.Context, projectID string) (*models.Project, error)
}

// JobStore creates and updates job documents
type JobStore interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, projectID, jobID string) (*models.Job, error)
	SetStatus(ctx context.Context, projectID, jobID string, status models.JobStatus) error
}

// TaskQueue is the enqueue side of the downstream task chain. One operation
// per task kind; at-least-once delivery, no ordering across queues, no
// retries here.
type TaskQueue interface {
	EnqueueTransform(ctx context.Context, task models.TransformTask) error
	EnqueueExportDispatch(ctx context.Context, task models.ExportDispatchTask) error
	EnqueueThirdPartyExport(ctx context.Context, task models.ThirdPartyExportTask) error
	EnqueueEmailDelivery(ctx context.Context, task models.EmailDeliveryTask) error
}

// ResultLinkResolver turns a stored object path into a shareable URL
type ResultLinkResolver interface {
	ResolveURL(ctx context.Context, filePath string) (string, error)
}
