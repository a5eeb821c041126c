package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"photobooth-pipeline/core/apperr"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// TestRequireToken checks the shared-token gate and its local no-op mode.
func TestRequireToken(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		wantStatus int
	}{
		{"matching token passes", "secret", "Bearer secret", http.StatusOK},
		{"missing token rejected", "secret", "", http.StatusUnauthorized},
		{"wrong token rejected", "secret", "Bearer nope", http.StatusUnauthorized},
		{"non-bearer scheme rejected", "secret", "Basic secret", http.StatusUnauthorized},
		{"empty configuration disables the gate", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/transform-jobs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			RequireToken(tt.configured)(okHandler()).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

// TestCallerFromRequest verifies identity extraction prefers the guest header.
func TestCallerFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if callerFromRequest(req).Authenticated() {
		t.Fatal("bare request must be anonymous")
	}

	req.Header.Set("Authorization", "Bearer tok-1")
	if got := callerFromRequest(req).UID; got != "tok-1" {
		t.Fatalf("UID = %q, want bearer token", got)
	}

	req.Header.Set("X-Guest-ID", "guest-42")
	if got := callerFromRequest(req).UID; got != "guest-42" {
		t.Fatalf("UID = %q, want guest header", got)
	}
}

// TestWriteErrorStatusMapping pins the error-code to HTTP-status table.
func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{apperr.Unauthenticated("sign-in required"), http.StatusUnauthorized},
		{apperr.InvalidArgument("bad input"), http.StatusBadRequest},
		{apperr.NotFound("missing"), http.StatusNotFound},
		{apperr.AlreadyExists("conflict"), http.StatusConflict},
		{apperr.Internal("boom", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		writeError(rec, tt.err)
		if rec.Code != tt.wantStatus {
			t.Fatalf("%v: status = %d, want %d", tt.err, rec.Code, tt.wantStatus)
		}
	}
}
