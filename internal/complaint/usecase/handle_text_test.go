package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smartcity-complaints/internal/complaint"
	"smartcity-complaints/internal/complaint/usecase"
)

func TestHandleText(t *testing.T) {
	t.Run("Success Path", func(t *testing.T) {
		llm := &mockGenerator{classify: "dogs", reply: "Thank you, we are on it."}
		repo := &mockRepo{}

		uc := usecase.New(&mockLogger{}, llm, nil, &mockClassifier{}, repo, usecase.Options{})

		out, err := uc.HandleText(context.Background(), complaint.TextInput{
			CitizenName: "Alice",
			Message:     "Stray dogs keep barking near the park",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Complaint.Category != complaint.CategoryDogs {
			t.Errorf("expected category dogs, got %q", out.Complaint.Category)
		}
		if out.Complaint.Action != complaint.ActionAnimalControl {
			t.Errorf("expected Animal Control, got %q", out.Complaint.Action)
		}
		if strings.TrimSpace(out.Complaint.Reply) == "" {
			t.Errorf("expected non-empty reply")
		}
		if out.Complaint.ID == 0 {
			t.Errorf("expected store-assigned ID")
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected 1 persisted record, got %d", len(repo.created))
		}
		if repo.created[0].Message != "Stray dogs keep barking near the park" {
			t.Errorf("persisted message mutated: %q", repo.created[0].Message)
		}
	})

	t.Run("Unclassifiable Degrades To Unknown", func(t *testing.T) {
		llm := &mockGenerator{classify: "I cannot tell what this is about", reply: "ok"}
		repo := &mockRepo{}

		uc := usecase.New(&mockLogger{}, llm, nil, &mockClassifier{}, repo, usecase.Options{})

		out, err := uc.HandleText(context.Background(), complaint.TextInput{
			CitizenName: "Bob",
			Message:     "qwxz lorem gibberish",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Complaint.Category != complaint.CategoryUnknown {
			t.Errorf("expected unknown, got %q", out.Complaint.Category)
		}
		if out.Complaint.Action != complaint.ActionDefault {
			t.Errorf("expected default route, got %q", out.Complaint.Action)
		}
		if len(repo.created) != 1 {
			t.Errorf("unknown complaints must still persist")
		}
	})

	t.Run("Validation", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGenerator{}, nil, &mockClassifier{}, &mockRepo{}, usecase.Options{})

		_, err := uc.HandleText(context.Background(), complaint.TextInput{CitizenName: "  ", Message: "hi"})
		if !errors.Is(err, complaint.ErrEmptyCitizenName) {
			t.Errorf("expected ErrEmptyCitizenName, got %v", err)
		}

		_, err = uc.HandleText(context.Background(), complaint.TextInput{CitizenName: "Alice", Message: ""})
		if !errors.Is(err, complaint.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("Persist Failure Fails The Run", func(t *testing.T) {
		llm := &mockGenerator{classify: "noise", reply: "ok"}
		repo := &mockRepo{fail: true}

		uc := usecase.New(&mockLogger{}, llm, nil, &mockClassifier{}, repo, usecase.Options{})

		_, err := uc.HandleText(context.Background(), complaint.TextInput{
			CitizenName: "Carol",
			Message:     "Loud music every night",
		})
		if err == nil {
			t.Fatalf("expected persist error")
		}
		if !strings.Contains(err.Error(), "persist stage") {
			t.Errorf("error should name the failing stage, got %v", err)
		}
		if len(repo.created) != 0 {
			t.Errorf("no record should survive a failed persist")
		}
	})
}
