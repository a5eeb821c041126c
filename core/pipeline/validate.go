package pipeline

import (
	"net/mail"
	"strings"

	"photobooth-pipeline/core/apperr"
)

const maxEmailLength = 254

// validateStartRequest checks the transform request's shape. The first
// violation's message is what the client sees.
func validateStartRequest(req StartTransformRequest) error {
	if strings.TrimSpace(req.ProjectID) == "" {
		return apperr.InvalidArgument("projectId is required")
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return apperr.InvalidArgument("sessionId is required")
	}
	return nil
}

// validateEmailRequest checks the guest-email submission's shape
func validateEmailRequest(req SubmitEmailRequest) error {
	if strings.TrimSpace(req.ProjectID) == "" {
		return apperr.InvalidArgument("projectId is required")
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return apperr.InvalidArgument("sessionId is required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return apperr.InvalidArgument("email is required")
	}
	if len(email) > maxEmailLength {
		return apperr.InvalidArgument("email is too long")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return apperr.InvalidArgument("email address is not valid")
	}
	return nil
}
