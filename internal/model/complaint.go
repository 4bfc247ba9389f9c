package model

import "time"

// Complaint is the persisted complaint record. It is created once at
// the end of a successful pipeline run and never updated or deleted by
// this service.
type Complaint struct {
	ID          int64
	CitizenName string
	Message     string
	Category    string
	Reply       string
	Action      string
	CreatedAt   time.Time
}
