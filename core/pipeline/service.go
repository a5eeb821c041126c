package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"photobooth-pipeline/core/apperr"
	"photobooth-pipeline/core/models"

	"github.com/google/uuid"
)

// Caller identifies the requesting guest; the transport layer fills it in
type Caller struct {
	UID string
}

// Authenticated reports whether the transport established an identity
func (c Caller) Authenticated() bool {
	return c.UID != ""
}

// Service is the synchronous entry point of the transform pipeline. Each call
// is an independent, stateless unit; all shared state lives in the stores.
type Service struct {
	sessions       SessionStore
	experiences    ExperienceStore
	projects       ProjectStore
	jobs           JobStore
	queue          TaskQueue
	links          ResultLinkResolver
	logger         *slog.Logger
	allowAnonymous bool
}

// NewService creates the pipeline service. links may be nil when no object
// storage is configured; allowAnonymous should only be true in local
// development.
func NewService(
	sessions SessionStore,
	experiences ExperienceStore,
	projects ProjectStore,
	jobs JobStore,
	queue TaskQueue,
	links ResultLinkResolver,
	logger *slog.Logger,
	allowAnonymous bool,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		sessions:       sessions,
		experiences:    experiences,
		projects:       projects,
		jobs:           jobs,
		queue:          queue,
		links:          links,
		logger:         logger,
		allowAnonymous: allowAnonymous,
	}
}

// StartTransformRequest identifies the session to transform
type StartTransformRequest struct {
	ProjectID string `json:"projectId"`
	SessionID string `json:"sessionId"`
}

// StartTransformResult is returned once the job is persisted and enqueued
type StartTransformResult struct {
	JobID   string `json:"jobId"`
	Message string `json:"message"`
}

// StartTransform runs the validation chain, captures the configuration
// snapshot, persists the job, claims the session and enqueues the transform
// task. Validation failures surface before any write; the only post-write
// failure (enqueue) is compensated by marking the session failed.
func (s *Service) StartTransform(ctx context.Context, caller Caller, req StartTransformRequest) (*StartTransformResult, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}
	if err := validateStartRequest(req); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetSession(ctx, req.ProjectID, req.SessionID)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("session not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to load session", err)
	}

	// Fast pre-check; the authoritative guard is the conditional claim below.
	if session.JobStatus == models.JobStatusPending {
		return nil, apperr.AlreadyExists("a transform job is already running for this session")
	}

	experience, err := s.experiences.GetExperience(ctx, session.ExperienceID)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("experience not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to load experience", err)
	}

	cfg, err := activeConfig(experience, session.ConfigSource)
	if err != nil {
		return nil, err
	}

	switch experience.Type {
	case models.ExperienceTypePhoto, models.ExperienceTypeAIImage, models.ExperienceTypeAIVideo:
		// transform executors exist for these
	case "":
		return nil, apperr.InvalidArgument("experience has no output type configured")
	default:
		return nil, apperr.InvalidArgument(fmt.Sprintf("experience type %q is not supported for transform", experience.Type))
	}

	if len(session.Responses) == 0 {
		return nil, apperr.InvalidArgument("session has no responses to transform")
	}

	outcome := cfg.OutputFor(experience.Type)
	if outcome == nil {
		return nil, apperr.InvalidArgument(fmt.Sprintf("active configuration is missing %s settings", experience.Type))
	}

	project, err := s.projects.GetProject(ctx, req.ProjectID)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("project not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to load project", err)
	}

	overlay := ResolveOverlay(project.Overlays, project.MainExperience.ApplyOverlay, outcome.AspectRatio())

	now := time.Now().UTC()
	job := &models.Job{
		ID:           uuid.NewString(),
		ProjectID:    req.ProjectID,
		SessionID:    req.SessionID,
		ExperienceID: experience.ID,
		Status:       models.JobStatusPending,
		Snapshot:     BuildSnapshot(session, experience, outcome, overlay),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, apperr.Internal("failed to create job", err)
	}

	claimed, err := s.sessions.ClaimJob(ctx, req.ProjectID, req.SessionID, job.ID)
	if err != nil {
		return nil, apperr.Internal("failed to update session", err)
	}
	if !claimed {
		// A concurrent request won the claim between the pre-check and here.
		// The losing job record stays behind, marked failed.
		if serr := s.jobs.SetStatus(ctx, req.ProjectID, job.ID, models.JobStatusFailed); serr != nil {
			s.logger.Error("failed to mark superseded job", "job_id", job.ID, "error", serr)
		}
		return nil, apperr.AlreadyExists("a transform job is already running for this session")
	}

	task := models.TransformTask{
		JobID:     job.ID,
		SessionID: req.SessionID,
		ProjectID: req.ProjectID,
	}
	if err := s.queue.EnqueueTransform(ctx, task); err != nil {
		// Job and session are already written. The job record stays for
		// audit; only the session pointer is rolled back so the guest can
		// retry.
		if serr := s.sessions.SetJobStatus(ctx, req.ProjectID, req.SessionID, models.JobStatusFailed); serr != nil {
			s.logger.Error("rollback failed after enqueue error", "session_id", req.SessionID, "job_id", job.ID, "error", serr)
		}
		return nil, apperr.Internal("failed to enqueue transform task", err)
	}

	s.logger.Info("transform job created", "job_id", job.ID, "session_id", req.SessionID, "project_id", req.ProjectID, "type", experience.Type)

	return &StartTransformResult{
		JobID:   job.ID,
		Message: "transform job created",
	}, nil
}

// JobStatusResult is the polling view of a job while the guest waits
type JobStatusResult struct {
	JobID       string                 `json:"jobId"`
	Status      models.JobStatus       `json:"status"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	ResultMedia *models.MediaReference `json:"resultMedia,omitempty"`
}

// GetJob returns a job's status, including the result media once the
// downstream worker has completed it.
func (s *Service) GetJob(ctx context.Context, caller Caller, projectID, jobID string) (*JobStatusResult, error) {
	if err := s.authorize(caller); err != nil {
		return nil, err
	}
	if projectID == "" || jobID == "" {
		return nil, apperr.InvalidArgument("projectId and jobId are required")
	}

	job, err := s.jobs.GetJob(ctx, projectID, jobID)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("job not found")
	}
	if err != nil {
		return nil, apperr.Internal("failed to load job", err)
	}

	result := &JobStatusResult{
		JobID:     job.ID,
		Status:    job.Status,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}

	if job.Status == models.JobStatusCompleted {
		session, err := s.sessions.GetSession(ctx, projectID, job.SessionID)
		if err == nil && session.ResultMedia != nil {
			result.ResultMedia = session.ResultMedia
		}
	}

	return result, nil
}

func (s *Service) authorize(caller Caller) error {
	if caller.Authenticated() {
		return nil
	}
	if s.allowAnonymous {
		return nil
	}
	return apperr.Unauthenticated("sign-in required")
}

// activeConfig selects the draft or published configuration object for the
// session's configuration source. Guests must never transform against an
// experience that was never published.
func activeConfig(experience *models.Experience, source models.ConfigSource) (*models.ExperienceConfig, error) {
	switch source {
	case models.ConfigSourcePublished:
		if experience.Published == nil {
			return nil, apperr.InvalidArgument("experience is not published")
		}
		return experience.Published, nil
	case models.ConfigSourceDraft:
		if experience.Draft == nil {
			return nil, apperr.InvalidArgument("experience has no draft configuration")
		}
		return experience.Draft, nil
	default:
		return nil, apperr.InvalidArgument(fmt.Sprintf("unknown configuration source %q", source))
	}
}
