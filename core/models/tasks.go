package models

// Task payloads are the JSON messages pushed onto the queue, one shape per
// task kind. They are immutable once enqueued; delivery is at-least-once.

// TransformTask starts the media transform for a freshly created job
type TransformTask struct {
	JobID     string `json:"job_id"`
	SessionID string `json:"session_id"`
	ProjectID string `json:"project_id"`
}

// ExportDispatchTask asks the dispatcher to fan out a completed job's exports
type ExportDispatchTask struct {
	JobID     string `json:"job_id"`
	SessionID string `json:"session_id"`
	ProjectID string `json:"project_id"`
}

// ThirdPartyExportTask hands a result to the external export integration.
// Its consumer lives outside this subsystem; the shape is owned downstream.
type ThirdPartyExportTask struct {
	JobID       string          `json:"job_id"`
	ProjectID   string          `json:"project_id"`
	ResultMedia *MediaReference `json:"result_media,omitempty"`
}

// EmailDeliveryTask asks the mailer to send a guest their result
type EmailDeliveryTask struct {
	ProjectID   string         `json:"project_id"`
	SessionID   string         `json:"session_id"`
	ResultMedia MediaReference `json:"result_media"`
}
