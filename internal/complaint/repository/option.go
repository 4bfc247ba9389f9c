package repository

// CreateComplaintOptions holds all fields of the record to insert.
type CreateComplaintOptions struct {
	CitizenName string
	Message     string
	Category    string
	Reply       string
	Action      string
}

// GetOneComplaintOptions holds filter parameters for fetching a single
// complaint. All non-zero fields are applied as AND conditions.
type GetOneComplaintOptions struct {
	ID int64
}

// ListComplaintsOptions holds filter and pagination parameters.
type ListComplaintsOptions struct {
	Category string
	Limit    int
	Offset   int
}
