package models

// Experience is a versioned configuration entity owned by the admin UI.
// This subsystem only ever reads it.
type Experience struct {
	ID          string
	WorkspaceID string
	Type        ExperienceType
	Version     int
	Draft       *ExperienceConfig
	Published   *ExperienceConfig
}

// ExperienceType restricts which output configuration is active
type ExperienceType string

const (
	ExperienceTypePhoto   ExperienceType = "photo"
	ExperienceTypeAIImage ExperienceType = "aiImage"
	ExperienceTypeAIVideo ExperienceType = "aiVideo"
	ExperienceTypeSurvey  ExperienceType = "survey"
)

// ExperienceConfig holds the per-output-type settings of one draft or
// published configuration object.
type ExperienceConfig struct {
	Photo   *PhotoConfig   `json:"photo,omitempty"`
	AIImage *AIImageConfig `json:"aiImage,omitempty"`
	AIVideo *AIVideoConfig `json:"aiVideo,omitempty"`
}

// PhotoConfig configures the plain photo output
type PhotoConfig struct {
	AspectRatio string `json:"aspectRatio"`
	Filter      string `json:"filter,omitempty"`
}

// AIImageConfig configures the AI image output
type AIImageConfig struct {
	AspectRatio string `json:"aspectRatio"`
	Prompt      string `json:"prompt"`
	Model       string `json:"model,omitempty"`
}

// AIVideoConfig configures the AI video output
type AIVideoConfig struct {
	AspectRatio     string `json:"aspectRatio"`
	Prompt          string `json:"prompt"`
	Model           string `json:"model,omitempty"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
}

// OutputConfig is the resolved configuration for one output type: the Type tag
// determines which sub-config is non-nil.
type OutputConfig struct {
	Type    ExperienceType `json:"type"`
	Photo   *PhotoConfig   `json:"photo,omitempty"`
	AIImage *AIImageConfig `json:"aiImage,omitempty"`
	AIVideo *AIVideoConfig `json:"aiVideo,omitempty"`
}

// OutputFor extracts the resolved output configuration for the given type.
// It returns nil when the configuration object carries no sub-config for that
// type, and for types that have no transform output at all.
func (c *ExperienceConfig) OutputFor(t ExperienceType) *OutputConfig {
	if c == nil {
		return nil
	}
	switch t {
	case ExperienceTypePhoto:
		if c.Photo == nil {
			return nil
		}
		return &OutputConfig{Type: t, Photo: c.Photo}
	case ExperienceTypeAIImage:
		if c.AIImage == nil {
			return nil
		}
		return &OutputConfig{Type: t, AIImage: c.AIImage}
	case ExperienceTypeAIVideo:
		if c.AIVideo == nil {
			return nil
		}
		return &OutputConfig{Type: t, AIVideo: c.AIVideo}
	default:
		return nil
	}
}

// AspectRatio returns the configured aspect ratio, falling back to 1:1
func (o *OutputConfig) AspectRatio() string {
	ratio := ""
	if o != nil {
		switch o.Type {
		case ExperienceTypePhoto:
			ratio = o.Photo.AspectRatio
		case ExperienceTypeAIImage:
			ratio = o.AIImage.AspectRatio
		case ExperienceTypeAIVideo:
			ratio = o.AIVideo.AspectRatio
		}
	}
	if ratio == "" {
		return "1:1"
	}
	return ratio
}
