package repository

import "errors"

var (
	ErrFailedToInsert     = errors.New("failed to insert complaint")
	ErrFailedToGet        = errors.New("failed to get complaint")
	ErrFailedToList       = errors.New("failed to list complaints")
	ErrConstraintViolated = errors.New("complaint violates a storage constraint")
)
