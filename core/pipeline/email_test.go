package pipeline

import (
	"context"
	"errors"
	"testing"

	"photobooth-pipeline/core/apperr"
	"photobooth-pipeline/core/models"
)

var emailReq = SubmitEmailRequest{ProjectID: "proj-1", SessionID: "sess-1", Email: "guest@example.com"}

// TestSubmitGuestEmailSavesAddress: with no completed job the address is
// stored and nothing is enqueued.
func TestSubmitGuestEmailSavesAddress(t *testing.T) {
	f := testFixtures()
	f.session.JobStatus = models.JobStatusPending
	q := &fakeQueue{}
	svc := newTestService(f, q)

	if err := svc.SubmitGuestEmail(context.Background(), testCaller, emailReq); err != nil {
		t.Fatalf("SubmitGuestEmail: %v", err)
	}
	if f.session.GuestEmail != "guest@example.com" {
		t.Fatalf("stored email = %q", f.session.GuestEmail)
	}
	if len(q.deliveries) != 0 {
		t.Fatal("pending job must not trigger delivery")
	}
}

// TestSubmitGuestEmailImmediateDelivery: a completed job with result media
// enqueues the delivery task with that exact media reference.
func TestSubmitGuestEmailImmediateDelivery(t *testing.T) {
	f := testFixtures()
	f.session.JobStatus = models.JobStatusCompleted
	f.session.ResultMedia = &models.MediaReference{
		URL:         "https://cdn.example/result.png",
		FilePath:    "results/sess-1.png",
		DisplayName: "your photo",
	}
	q := &fakeQueue{}
	svc := newTestService(f, q)

	if err := svc.SubmitGuestEmail(context.Background(), testCaller, emailReq); err != nil {
		t.Fatalf("SubmitGuestEmail: %v", err)
	}
	if len(q.deliveries) != 1 {
		t.Fatalf("deliveries = %d, want 1", len(q.deliveries))
	}
	task := q.deliveries[0]
	if task.ProjectID != "proj-1" || task.SessionID != "sess-1" {
		t.Fatalf("task = %+v", task)
	}
	if task.ResultMedia != *f.session.ResultMedia {
		t.Fatalf("result media = %+v, want session's reference", task.ResultMedia)
	}
}

// TestSubmitGuestEmailOverwrite: a second submission replaces the address and
// re-evaluates the immediate-send condition.
func TestSubmitGuestEmailOverwrite(t *testing.T) {
	f := testFixtures()
	f.session.JobStatus = models.JobStatusCompleted
	f.session.ResultMedia = &models.MediaReference{URL: "https://cdn.example/result.png"}
	q := &fakeQueue{}
	svc := newTestService(f, q)

	first := emailReq
	second := SubmitEmailRequest{ProjectID: "proj-1", SessionID: "sess-1", Email: "fixed@example.com"}

	if err := svc.SubmitGuestEmail(context.Background(), testCaller, first); err != nil {
		t.Fatalf("first submission: %v", err)
	}
	if err := svc.SubmitGuestEmail(context.Background(), testCaller, second); err != nil {
		t.Fatalf("second submission: %v", err)
	}

	if f.session.GuestEmail != "fixed@example.com" {
		t.Fatalf("stored email = %q, want overwrite", f.session.GuestEmail)
	}
	if len(q.deliveries) != 2 {
		t.Fatalf("deliveries = %d, want re-evaluation on each submission", len(q.deliveries))
	}
}

// TestSubmitGuestEmailEnqueueFailureNonFatal: the address is durably saved,
// so a failed delivery enqueue still returns success.
func TestSubmitGuestEmailEnqueueFailureNonFatal(t *testing.T) {
	f := testFixtures()
	f.session.JobStatus = models.JobStatusCompleted
	f.session.ResultMedia = &models.MediaReference{URL: "https://cdn.example/result.png"}
	q := &fakeQueue{emailErr: errors.New("queue unavailable")}
	svc := newTestService(f, q)

	if err := svc.SubmitGuestEmail(context.Background(), testCaller, emailReq); err != nil {
		t.Fatalf("enqueue failure must not surface: %v", err)
	}
	if f.session.GuestEmail != "guest@example.com" {
		t.Fatal("email not saved")
	}
}

func TestSubmitGuestEmailInvalidAddress(t *testing.T) {
	svc := newTestService(testFixtures(), &fakeQueue{})

	req := SubmitEmailRequest{ProjectID: "proj-1", SessionID: "sess-1", Email: "not-an-address"}
	err := svc.SubmitGuestEmail(context.Background(), testCaller, req)
	assertCode(t, err, apperr.CodeInvalidArgument)
}

func TestSubmitGuestEmailSessionNotFound(t *testing.T) {
	svc := newTestService(testFixtures(), &fakeQueue{})

	req := SubmitEmailRequest{ProjectID: "proj-1", SessionID: "missing", Email: "guest@example.com"}
	err := svc.SubmitGuestEmail(context.Background(), testCaller, req)
	assertCode(t, err, apperr.CodeNotFound)
}
