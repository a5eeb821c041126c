package pipeline

import "photobooth-pipeline/core/models"

// ResolveOverlay selects the overlay asset for an aspect ratio. Priority:
// the applyOverlay opt-out wins over everything, then an exact aspect-ratio
// match, then the default slot, then nothing.
//
// The function is pure; its result is frozen into the job snapshot, so later
// overlay configuration edits never affect jobs already created.
func ResolveOverlay(overlays map[string]*models.MediaReference, applyOverlay bool, aspectRatio string) *models.MediaReference {
	if !applyOverlay {
		return nil
	}
	if len(overlays) == 0 {
		return nil
	}
	if overlay := overlays[aspectRatio]; overlay != nil {
		return overlay
	}
	if overlay := overlays[models.OverlayDefaultKey]; overlay != nil {
		return overlay
	}
	return nil
}
