package pipeline

import (
	"testing"

	"photobooth-pipeline/core/models"
)

// TestResolveOverlay exercises the full priority order: opt-out flag first,
// then exact aspect-ratio match, then the default slot, then nothing.
func TestResolveOverlay(t *testing.T) {
	square := &models.MediaReference{FilePath: "overlays/square.png", DisplayName: "square"}
	wide := &models.MediaReference{FilePath: "overlays/wide.png", DisplayName: "wide"}
	fallback := &models.MediaReference{FilePath: "overlays/default.png", DisplayName: "default"}

	tests := []struct {
		name         string
		overlays     map[string]*models.MediaReference
		applyOverlay bool
		aspectRatio  string
		want         *models.MediaReference
	}{
		{
			name:         "flag off ignores configuration",
			overlays:     map[string]*models.MediaReference{"1:1": square, "default": fallback},
			applyOverlay: false,
			aspectRatio:  "1:1",
			want:         nil,
		},
		{
			name:         "no overlays configured",
			overlays:     nil,
			applyOverlay: true,
			aspectRatio:  "1:1",
			want:         nil,
		},
		{
			name:         "empty overlay map",
			overlays:     map[string]*models.MediaReference{},
			applyOverlay: true,
			aspectRatio:  "1:1",
			want:         nil,
		},
		{
			name:         "exact aspect ratio match",
			overlays:     map[string]*models.MediaReference{"1:1": square, "16:9": wide, "default": fallback},
			applyOverlay: true,
			aspectRatio:  "16:9",
			want:         wide,
		},
		{
			name:         "missing ratio falls back to default",
			overlays:     map[string]*models.MediaReference{"16:9": wide, "default": fallback},
			applyOverlay: true,
			aspectRatio:  "1:1",
			want:         fallback,
		},
		{
			name:         "nil entry for exact ratio falls back to default",
			overlays:     map[string]*models.MediaReference{"1:1": nil, "default": fallback},
			applyOverlay: true,
			aspectRatio:  "1:1",
			want:         fallback,
		},
		{
			name:         "no match and no default",
			overlays:     map[string]*models.MediaReference{"16:9": wide},
			applyOverlay: true,
			aspectRatio:  "1:1",
			want:         nil,
		},
		{
			name:         "nil default with no match",
			overlays:     map[string]*models.MediaReference{"16:9": wide, "default": nil},
			applyOverlay: true,
			aspectRatio:  "1:1",
			want:         nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveOverlay(tt.overlays, tt.applyOverlay, tt.aspectRatio)
			if got != tt.want {
				t.Fatalf("ResolveOverlay() = %v, want %v", got, tt.want)
			}
		})
	}
}
