package models

import "time"

// Session represents one guest's pass through an experience
type Session struct {
	ID           string
	ProjectID    string
	ExperienceID string
	ConfigSource ConfigSource
	Responses    []Response
	JobID        string
	JobStatus    JobStatus
	ResultMedia  *MediaReference
	GuestEmail   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Response is a single collected answer; order within the session matters
type Response struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ConfigSource selects which experience configuration a session transforms against
type ConfigSource string

const (
	ConfigSourceDraft     ConfigSource = "draft"
	ConfigSourcePublished ConfigSource = "published"
)
