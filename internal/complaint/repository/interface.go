package repository

import (
	"context"

	"smartcity-complaints/internal/model"
)

// Repository defines all data access methods for the Complaint entity.
type Repository interface {
	// CreateComplaint inserts the finalized record atomically and
	// returns it with the store-assigned ID and creation timestamp.
	CreateComplaint(ctx context.Context, opt CreateComplaintOptions) (model.Complaint, error)

	// GetOneComplaint fetches a single record. Returns a zero-value
	// Complaint (ID == 0) when not found; not-found is not an error.
	GetOneComplaint(ctx context.Context, opt GetOneComplaintOptions) (model.Complaint, error)

	// ListComplaints returns a page of records and the total count.
	ListComplaints(ctx context.Context, opt ListComplaintsOptions) ([]model.Complaint, int, error)
}
