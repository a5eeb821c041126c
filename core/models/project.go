package models

// OverlayDefaultKey is the fallback slot in a project's overlay map
const OverlayDefaultKey = "default"

// Project is the top-level container an event runs under. Read-only here.
type Project struct {
	ID             string
	Name           string
	Overlays       map[string]*MediaReference
	MainExperience MainExperienceRef
}

// MainExperienceRef points at the project's main experience and carries the
// per-project overlay opt-out.
type MainExperienceRef struct {
	ExperienceID string `json:"experienceId"`
	ApplyOverlay bool   `json:"applyOverlay"`
}
