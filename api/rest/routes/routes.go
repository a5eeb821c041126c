package routes

import (
	"photobooth-pipeline/api/rest/handlers"
	"photobooth-pipeline/core/pipeline"

	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *mux.Router, service *pipeline.Service, apiToken string) {
	pipelineHandler := handlers.NewPipelineHandler(service)

	api := r.PathPrefix("/v1").Subrouter()
	api.Use(handlers.RequireToken(apiToken))

	api.HandleFunc("/transform-jobs", pipelineHandler.StartTransform).Methods("POST")
	api.HandleFunc("/guest-email", pipelineHandler.SubmitEmail).Methods("POST")
	api.HandleFunc("/projects/{projectId}/jobs/{id}", pipelineHandler.GetJob).Methods("GET")
}
