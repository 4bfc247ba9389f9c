package usecase_test

import (
	"context"
	"errors"
	"testing"

	"smartcity-complaints/internal/complaint"
	"smartcity-complaints/internal/complaint/usecase"
	"smartcity-complaints/pkg/vision"
)

func TestHandleImage(t *testing.T) {
	img := []byte{0x89, 0x50, 0x4e, 0x47}

	t.Run("Classified Image", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGenerator{}, nil, &mockClassifier{label: "accident", conf: 0.92}, &mockRepo{}, usecase.Options{})

		out, err := uc.HandleImage(context.Background(), complaint.ImageInput{Image: img})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category != "accident" {
			t.Errorf("expected accident, got %q", out.Category)
		}
		if out.Confidence != 0.92 {
			t.Errorf("expected 0.92, got %v", out.Confidence)
		}
		if out.Description == "" {
			t.Errorf("expected a description")
		}
	})

	t.Run("Degraded Classification Still Succeeds", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGenerator{}, nil, &mockClassifier{label: vision.LabelUnknown, conf: vision.ConfidenceDegraded}, &mockRepo{}, usecase.Options{})

		out, err := uc.HandleImage(context.Background(), complaint.ImageInput{Image: img})
		if err != nil {
			t.Fatalf("degraded classification must not fail the request: %v", err)
		}
		if out.Category != vision.LabelUnknown {
			t.Errorf("expected %q, got %q", vision.LabelUnknown, out.Category)
		}
	})

	t.Run("Empty Image", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGenerator{}, nil, &mockClassifier{}, &mockRepo{}, usecase.Options{})

		_, err := uc.HandleImage(context.Background(), complaint.ImageInput{})
		if !errors.Is(err, complaint.ErrEmptyImage) {
			t.Errorf("expected ErrEmptyImage, got %v", err)
		}
	})
}
