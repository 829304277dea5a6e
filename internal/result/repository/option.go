package repository

import "ciblsport-api/internal/model"

// CreateOptions contains options for creating a result.
type CreateOptions struct {
	Result model.Result
}

// UpdateOptions contains options for updating a result.
type UpdateOptions struct {
	Result model.Result
}
