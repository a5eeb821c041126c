package handlers

import (
	"encoding/json"
	"net/http"

	"photobooth-pipeline/core/apperr"
	"photobooth-pipeline/core/pipeline"

	"github.com/gorilla/mux"
)

// PipelineHandler exposes the transform pipeline's synchronous entry points
type PipelineHandler struct {
	service *pipeline.Service
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(service *pipeline.Service) *PipelineHandler {
	return &PipelineHandler{service: service}
}

// StartTransform handles POST /v1/transform-jobs
func (h *PipelineHandler) StartTransform(w http.ResponseWriter, r *http.Request) {
	var req pipeline.StartTransformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.InvalidArgument("invalid request body"))
		return
	}

	result, err := h.service.StartTransform(r.Context(), callerFromRequest(r), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"jobId":   result.JobID,
		"message": result.Message,
	})
}

// SubmitEmail handles POST /v1/guest-email
func (h *PipelineHandler) SubmitEmail(w http.ResponseWriter, r *http.Request) {
	var req pipeline.SubmitEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.InvalidArgument("invalid request body"))
		return
	}

	if err := h.service.SubmitGuestEmail(r.Context(), callerFromRequest(r), req); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

// GetJob handles GET /v1/projects/{projectId}/jobs/{id}
func (h *PipelineHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	result, err := h.service.GetJob(r.Context(), callerFromRequest(r), vars["projectId"], vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
