package usecase_test

import (
	"context"
	"errors"
	"testing"

	"smartcity-complaints/internal/complaint"
	"smartcity-complaints/internal/complaint/usecase"
)

func TestHandleVoice(t *testing.T) {
	audio := []byte{0x52, 0x49, 0x46, 0x46} // payload content is opaque here

	t.Run("Success Path", func(t *testing.T) {
		llm := &mockGenerator{classify: "dogs", reply: "ok"}
		repo := &mockRepo{}
		tr := &mockTranscriber{text: "stray dogs near the school"}

		uc := usecase.New(&mockLogger{}, llm, tr, &mockClassifier{}, repo, usecase.Options{})

		out, err := uc.HandleVoice(context.Background(), complaint.VoiceInput{
			CitizenName: "Dana",
			Audio:       audio,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Complaint.Message != "stray dogs near the school" {
			t.Errorf("pipeline should run on the transcript, got %q", out.Complaint.Message)
		}
		if out.Complaint.Category != complaint.CategoryDogs {
			t.Errorf("expected dogs, got %q", out.Complaint.Category)
		}
		if len(repo.created) != 1 {
			t.Errorf("expected 1 persisted record, got %d", len(repo.created))
		}
	})

	t.Run("Transcription Failure Is Fatal", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(&mockLogger{}, &mockGenerator{classify: "dogs"}, &mockTranscriber{fail: true}, &mockClassifier{}, repo, usecase.Options{})

		_, err := uc.HandleVoice(context.Background(), complaint.VoiceInput{
			CitizenName: "Dana",
			Audio:       audio,
		})
		if !errors.Is(err, complaint.ErrTranscription) {
			t.Fatalf("expected ErrTranscription, got %v", err)
		}
		if len(repo.created) != 0 {
			t.Errorf("nothing should persist after a transcription fault")
		}
	})

	t.Run("No Transcriber Configured", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGenerator{}, nil, &mockClassifier{}, &mockRepo{}, usecase.Options{})

		_, err := uc.HandleVoice(context.Background(), complaint.VoiceInput{
			CitizenName: "Dana",
			Audio:       audio,
		})
		if !errors.Is(err, complaint.ErrTranscriberUnavailable) {
			t.Errorf("expected ErrTranscriberUnavailable, got %v", err)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGenerator{}, &mockTranscriber{}, &mockClassifier{}, &mockRepo{}, usecase.Options{})

		_, err := uc.HandleVoice(context.Background(), complaint.VoiceInput{CitizenName: "", Audio: audio})
		if !errors.Is(err, complaint.ErrEmptyCitizenName) {
			t.Errorf("expected ErrEmptyCitizenName, got %v", err)
		}

		_, err = uc.HandleVoice(context.Background(), complaint.VoiceInput{CitizenName: "Dana", Audio: nil})
		if !errors.Is(err, complaint.ErrEmptyAudio) {
			t.Errorf("expected ErrEmptyAudio, got %v", err)
		}
	})

	t.Run("Silent Recording Rejected As Empty", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGenerator{}, &mockTranscriber{text: ""}, &mockClassifier{}, &mockRepo{}, usecase.Options{})

		_, err := uc.HandleVoice(context.Background(), complaint.VoiceInput{
			CitizenName: "Dana",
			Audio:       audio,
		})
		if !errors.Is(err, complaint.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage for an empty transcript, got %v", err)
		}
	})
}
