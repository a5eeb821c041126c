package apperr

import (
	"errors"
	"fmt"
	"testing"
)

// TestCodeOf covers typed errors, wrapped typed errors, and plain errors.
func TestCodeOf(t *testing.T) {
	if got := CodeOf(NotFound("session not found")); got != CodeNotFound {
		t.Fatalf("CodeOf = %s, want %s", got, CodeNotFound)
	}

	wrapped := fmt.Errorf("handler: %w", AlreadyExists("job running"))
	if got := CodeOf(wrapped); got != CodeAlreadyExists {
		t.Fatalf("CodeOf(wrapped) = %s, want %s", got, CodeAlreadyExists)
	}

	if got := CodeOf(errors.New("plain")); got != CodeInternal {
		t.Fatalf("CodeOf(plain) = %s, want %s", got, CodeInternal)
	}
}

// TestInternalUnwrap verifies the cause stays reachable through errors.Is.
func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to enqueue", cause)

	if !errors.Is(err, cause) {
		t.Fatal("cause lost through wrapping")
	}
	if MessageOf(err) != "failed to enqueue" {
		t.Fatalf("MessageOf = %q", MessageOf(err))
	}
}
