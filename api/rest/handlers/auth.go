package handlers

import (
	"net/http"
	"strings"

	"photobooth-pipeline/core/pipeline"
)

// callerFromRequest extracts the caller identity the transport carries. Token
// verification happens in the shared-token middleware; here only the identity
// matters. An empty Caller means unauthenticated, which the service rejects
// outside local-development mode.
func callerFromRequest(r *http.Request) pipeline.Caller {
	if uid := r.Header.Get("X-Guest-ID"); uid != "" {
		return pipeline.Caller{UID: uid}
	}
	if token := bearerToken(r); token != "" {
		return pipeline.Caller{UID: token}
	}
	return pipeline.Caller{}
}

// RequireToken rejects requests whose bearer token does not match the
// configured API token. With an empty token it is a no-op, for local setups.
func RequireToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" && bearerToken(r) != token {
				writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"code":    "unauthenticated",
					"message": "invalid or missing API token",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}
