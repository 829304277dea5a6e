package model

import "time"

// User represents an accredited person in the championship system.
// PasswordHash is never serialized.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Nationality   string    `json:"nationality,omitempty"`
	Accreditation string    `json:"accreditation,omitempty"`
	IsTracked     bool      `json:"isTracked"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
