package pipeline

import (
	"testing"

	"photobooth-pipeline/core/models"
)

// TestBuildSnapshotCopiesResponses verifies the snapshot holds its own copy
// of the session's responses.
func TestBuildSnapshotCopiesResponses(t *testing.T) {
	session := &models.Session{
		Responses: []models.Response{
			{Question: "mood", Answer: "cosmic"},
			{Question: "style", Answer: "retro"},
		},
	}
	experience := &models.Experience{Version: 7}
	outcome := &models.OutputConfig{
		Type:    models.ExperienceTypeAIImage,
		AIImage: &models.AIImageConfig{AspectRatio: "1:1", Prompt: "a portrait"},
	}
	overlay := &models.MediaReference{FilePath: "overlays/frame.png"}

	snapshot := BuildSnapshot(session, experience, outcome, overlay)

	if snapshot.ExperienceVersion != 7 {
		t.Fatalf("ExperienceVersion = %d, want 7", snapshot.ExperienceVersion)
	}
	if snapshot.Outcome != outcome {
		t.Fatal("Outcome not carried through")
	}
	if snapshot.Overlay != overlay {
		t.Fatal("Overlay not carried through")
	}
	if len(snapshot.Responses) != 2 {
		t.Fatalf("copied %d responses, want 2", len(snapshot.Responses))
	}

	// Mutating the session afterwards must not reach the snapshot.
	session.Responses[0].Answer = "edited"
	if snapshot.Responses[0].Answer != "cosmic" {
		t.Fatal("snapshot shares backing array with session responses")
	}
}

// TestBuildSnapshotEmptyOptionalFields checks nil outcome and overlay are
// preserved as null rather than zero values.
func TestBuildSnapshotEmptyOptionalFields(t *testing.T) {
	session := &models.Session{Responses: []models.Response{{Question: "q", Answer: "a"}}}
	experience := &models.Experience{Version: 1}

	snapshot := BuildSnapshot(session, experience, nil, nil)

	if snapshot.Outcome != nil {
		t.Fatal("expected nil outcome")
	}
	if snapshot.Overlay != nil {
		t.Fatal("expected nil overlay")
	}
}
