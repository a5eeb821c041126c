package pipeline

import (
	"context"
	"errors"
	"strings"

	"photobooth-pipeline/core/apperr"
	"photobooth-pipeline/core/models"
)

// SubmitEmailRequest carries a guest's delivery address
type SubmitEmailRequest struct {
	ProjectID string `json:"projectId"`
	SessionID string `json:"sessionId"`
	Email     string `json:"email"`
}

// SubmitGuestEmail persists a guest's delivery address on the session and, if
// the session's job has already completed with result media, immediately
// enqueues the delivery task.
//
// Resubmitting overwrites the stored address (guests fix typos) and
// re-evaluates the immediate-send condition. Enqueue failure here is
// non-fatal: the address is durably saved and the dispatcher delivers it once
// the job completes.
func (s *Service) SubmitGuestEmail(ctx context.Context, caller Caller, req SubmitEmailRequest) error {
	if err := s.authorize(caller); err != nil {
		return err
	}
	if err := validateEmailRequest(req); err != nil {
		return err
	}

	session, err := s.sessions.GetSession(ctx, req.ProjectID, req.SessionID)
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound("session not found")
	}
	if err != nil {
		return apperr.Internal("failed to load session", err)
	}

	email := strings.TrimSpace(req.Email)
	if err := s.sessions.SetGuestEmail(ctx, req.ProjectID, req.SessionID, email); err != nil {
		return apperr.Internal("failed to save email", err)
	}

	if session.JobStatus != models.JobStatusCompleted || session.ResultMedia == nil {
		return nil
	}

	task := models.EmailDeliveryTask{
		ProjectID:   req.ProjectID,
		SessionID:   req.SessionID,
		ResultMedia: s.shareableMedia(ctx, *session.ResultMedia),
	}
	if err := s.queue.EnqueueEmailDelivery(ctx, task); err != nil {
		s.logger.Warn("email delivery enqueue failed, address saved for later delivery",
			"session_id", req.SessionID, "project_id", req.ProjectID, "error", err)
	}

	return nil
}

// shareableMedia fills in a URL for a result that only carries an object
// path. Resolution failure falls back to the reference as stored.
func (s *Service) shareableMedia(ctx context.Context, media models.MediaReference) models.MediaReference {
	if media.URL != "" || media.FilePath == "" || s.links == nil {
		return media
	}
	url, err := s.links.ResolveURL(ctx, media.FilePath)
	if err != nil {
		s.logger.Warn("could not resolve result media URL", "file_path", media.FilePath, "error", err)
		return media
	}
	media.URL = url
	return media
}
