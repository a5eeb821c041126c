package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"photobooth-pipeline/core/models"
	"photobooth-pipeline/core/pipeline"
	"photobooth-pipeline/core/queue"

	"github.com/redis/go-redis/v9"
)

// Worker consumes the export-dispatch queue and fans a completed job out to
// the third-party export and email-delivery queues. Both enqueues are
// best-effort: neither is required for the job's primary success criterion,
// so failures are logged and swallowed.
type Worker struct {
	rdb         *redis.Client
	jobs        pipeline.JobStore
	sessions    pipeline.SessionStore
	tasks       pipeline.TaskQueue
	links       pipeline.ResultLinkResolver
	logger      *slog.Logger
	pollTimeout time.Duration
}

// NewWorker creates a dispatch worker. links may be nil when no object
// storage is configured.
func NewWorker(
	rdb *redis.Client,
	jobs pipeline.JobStore,
	sessions pipeline.SessionStore,
	tasks pipeline.TaskQueue,
	links pipeline.ResultLinkResolver,
	logger *slog.Logger,
	pollTimeout time.Duration,
) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	if pollTimeout <= 0 {
		pollTimeout = 5 * time.Second
	}
	return &Worker{
		rdb:         rdb,
		jobs:        jobs,
		sessions:    sessions,
		tasks:       tasks,
		links:       links,
		logger:      logger,
		pollTimeout: pollTimeout,
	}
}

// Run blocks until ctx is cancelled, popping dispatch tasks as they arrive.
// Tasks arrive at least once; malformed payloads are dropped with a log line.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res, err := w.rdb.BLPop(ctx, w.pollTimeout, queue.KeyExportDispatch).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if errors.Is(err, context.Canceled) {
				return err
			}
			w.logger.Error("failed to pop dispatch task", "error", err)
			time.Sleep(time.Second)
			continue
		}

		if len(res) < 2 {
			continue
		}

		var task models.ExportDispatchTask
		if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
			w.logger.Error("invalid dispatch payload", "error", err)
			continue
		}

		if err := w.Dispatch(ctx, task); err != nil {
			w.logger.Error("dispatch failed", "job_id", task.JobID, "error", err)
		}
	}
}

// Dispatch fans one completed job out to its secondary queues
func (w *Worker) Dispatch(ctx context.Context, task models.ExportDispatchTask) error {
	job, err := w.jobs.GetJob(ctx, task.ProjectID, task.JobID)
	if errors.Is(err, pipeline.ErrNotFound) {
		w.logger.Warn("dispatch task for unknown job, dropping", "job_id", task.JobID)
		return nil
	}
	if err != nil {
		return err
	}

	if job.Status != models.JobStatusCompleted {
		w.logger.Warn("dispatch task for incomplete job, dropping", "job_id", task.JobID, "status", job.Status)
		return nil
	}

	session, err := w.sessions.GetSession(ctx, task.ProjectID, task.SessionID)
	if err != nil {
		return err
	}

	if session.ResultMedia == nil {
		w.logger.Warn("completed job has no result media, nothing to export", "job_id", task.JobID)
		return nil
	}

	media := w.shareableMedia(ctx, *session.ResultMedia)

	export := models.ThirdPartyExportTask{
		JobID:       task.JobID,
		ProjectID:   task.ProjectID,
		ResultMedia: &media,
	}
	if err := w.tasks.EnqueueThirdPartyExport(ctx, export); err != nil {
		w.logger.Warn("third-party export enqueue failed", "job_id", task.JobID, "error", err)
	}

	if session.GuestEmail != "" {
		delivery := models.EmailDeliveryTask{
			ProjectID:   task.ProjectID,
			SessionID:   task.SessionID,
			ResultMedia: media,
		}
		if err := w.tasks.EnqueueEmailDelivery(ctx, delivery); err != nil {
			w.logger.Warn("email delivery enqueue failed", "job_id", task.JobID, "error", err)
		}
	}

	return nil
}

func (w *Worker) shareableMedia(ctx context.Context, media models.MediaReference) models.MediaReference {
	if media.URL != "" || media.FilePath == "" || w.links == nil {
		return media
	}
	url, err := w.links.ResolveURL(ctx, media.FilePath)
	if err != nil {
		w.logger.Warn("could not resolve result media URL", "file_path", media.FilePath, "error", err)
		return media
	}
	media.URL = url
	return media
}
