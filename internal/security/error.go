package security

import "errors"

var (
	ErrIncidentNotFound = errors.New("incident not found")
	ErrAlertNotFound    = errors.New("alert not found")
	ErrFieldRequired    = errors.New("field required")
	ErrInvalidSeverity  = errors.New("invalid severity")
	ErrInvalidStatus    = errors.New("invalid incident status")
	ErrInvalidAlertType = errors.New("invalid alert type")
)
