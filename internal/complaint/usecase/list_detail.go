package usecase

import (
	"context"

	"smartcity-complaints/internal/complaint"
	"smartcity-complaints/internal/complaint/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// List returns a page of persisted complaints, newest first.
func (uc *implUseCase) List(ctx context.Context, input complaint.ListInput) (complaint.ListOutput, error) {
	if input.Limit <= 0 {
		input.Limit = defaultListLimit
	}
	if input.Limit > maxListLimit {
		input.Limit = maxListLimit
	}
	if input.Offset < 0 {
		input.Offset = 0
	}

	complaints, total, err := uc.repo.ListComplaints(ctx, repository.ListComplaintsOptions{
		Category: input.Category,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "List: %v", err)
		return complaint.ListOutput{}, err
	}

	return complaint.ListOutput{
		Complaints: complaints,
		Total:      total,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}, nil
}

// Detail returns one persisted complaint by ID.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (complaint.DetailOutput, error) {
	record, err := uc.repo.GetOneComplaint(ctx, repository.GetOneComplaintOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "Detail: %v", err)
		return complaint.DetailOutput{}, err
	}

	if record.ID == 0 {
		return complaint.DetailOutput{}, complaint.ErrComplaintNotFound
	}

	return complaint.DetailOutput{Complaint: record}, nil
}
