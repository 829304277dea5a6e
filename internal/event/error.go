package event

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidStatus = errors.New("invalid event status")
	ErrFieldRequired = errors.New("field required")
)
