package vision

import "time"

// Labels and confidences used on the degraded paths.
const (
	// LabelGeneric is returned when no model is available or the image
	// cannot be classified.
	LabelGeneric = "image_complaint"
	LabelUnknown = "unknown"

	// ConfidencePlaceholder is reported by the model-less fallback.
	ConfidencePlaceholder = 0.7
	// ConfidenceDegraded is reported when decode or inference fails.
	ConfidenceDegraded = 0.5
)

// Config holds classifier settings.
type Config struct {
	// Endpoint is the inference service URL. Empty means no model is
	// deployed and the placeholder classification is used.
	Endpoint string
	// ClassNames maps logit indexes to labels for multi-class models.
	ClassNames []string
	Timeout    time.Duration
}

// inferRequest is the TF-Serving style inference payload: one instance
// of shape [224][224][3] with channel values in [0,1].
type inferRequest struct {
	Instances [][][][]float64 `json:"instances"`
}

type inferResponse struct {
	Predictions [][]float64 `json:"predictions"`
}
