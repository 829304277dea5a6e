package result

import "errors"

var (
	ErrResultNotFound = errors.New("result not found")
	ErrEventNotFound  = errors.New("event not found")
	ErrFieldRequired  = errors.New("field required")
	ErrInvalidStatus  = errors.New("invalid result status")
)
