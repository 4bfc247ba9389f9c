package usecase_test

import (
	"context"
	"errors"
	"testing"

	"smartcity-complaints/internal/complaint"
	"smartcity-complaints/internal/complaint/usecase"
	"smartcity-complaints/internal/model"
)

func TestListAndDetail(t *testing.T) {
	repo := &mockRepo{records: map[int64]model.Complaint{
		1: {ID: 1, CitizenName: "Alice", Category: complaint.CategoryDogs},
		2: {ID: 2, CitizenName: "Bob", Category: complaint.CategoryNoise},
	}}
	uc := usecase.New(&mockLogger{}, &mockGenerator{}, nil, &mockClassifier{}, repo, usecase.Options{})

	t.Run("List", func(t *testing.T) {
		out, err := uc.List(context.Background(), complaint.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 2 {
			t.Errorf("expected total 2, got %d", out.Total)
		}
		if out.Limit != 20 {
			t.Errorf("expected default limit 20, got %d", out.Limit)
		}
	})

	t.Run("List With Category Filter", func(t *testing.T) {
		out, err := uc.List(context.Background(), complaint.ListInput{Category: complaint.CategoryDogs})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 1 {
			t.Errorf("expected total 1, got %d", out.Total)
		}
	})

	t.Run("List Caps Limit", func(t *testing.T) {
		out, err := uc.List(context.Background(), complaint.ListInput{Limit: 10000, Offset: -5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Limit != 100 {
			t.Errorf("expected limit capped at 100, got %d", out.Limit)
		}
		if out.Offset != 0 {
			t.Errorf("expected negative offset reset to 0, got %d", out.Offset)
		}
	})

	t.Run("Detail", func(t *testing.T) {
		out, err := uc.Detail(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Complaint.CitizenName != "Alice" {
			t.Errorf("expected Alice, got %q", out.Complaint.CitizenName)
		}
	})

	t.Run("Detail Not Found", func(t *testing.T) {
		_, err := uc.Detail(context.Background(), 99)
		if !errors.Is(err, complaint.ErrComplaintNotFound) {
			t.Errorf("expected ErrComplaintNotFound, got %v", err)
		}
	})
}
