package usecase

import (
	"context"

	"smartcity-complaints/internal/complaint"
	"smartcity-complaints/pkg/vision"
)

// HandleImage classifies an image complaint. The vision layer degrades
// internally, so beyond input validation this never fails.
func (uc *implUseCase) HandleImage(ctx context.Context, input complaint.ImageInput) (complaint.ImageOutput, error) {
	if len(input.Image) == 0 {
		return complaint.ImageOutput{}, complaint.ErrEmptyImage
	}

	label, confidence := uc.vision.ClassifyImage(ctx, input.Image)
	uc.l.Infof(ctx, "HandleImage: label=%s confidence=%.2f", label, confidence)

	return complaint.ImageOutput{
		Category:    label,
		Confidence:  confidence,
		Description: vision.Describe(label, confidence),
	}, nil
}
