package repository

import "ciblsport-api/internal/model"

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	User model.User
}
