package errors

import (
	"fmt"
	"net/http"
)

// NewValidationError creates a validation error with an explicit message.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewRequiredFieldError creates the canonical missing-field error. The
// message format is part of the wire contract: "<field> is required".
func NewRequiredFieldError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewHTTPError returns a new HTTPError with the given status code and message.
// If statusCode is 0, it defaults to http.StatusBadRequest.
func NewHTTPError(statusCode int, message string) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewUnauthorizedHTTPError returns a 401 Unauthorized error.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{StatusCode: http.StatusUnauthorized, Message: MessageUnauthorized}
}

// NewInvalidCredentialsError returns the 401 used by failed logins.
func NewInvalidCredentialsError() *HTTPError {
	return &HTTPError{StatusCode: http.StatusUnauthorized, Message: MessageInvalidCredentials}
}

// NewForbiddenHTTPError returns a 403 Forbidden error.
func NewForbiddenHTTPError() *HTTPError {
	return &HTTPError{StatusCode: http.StatusForbidden, Message: MessageForbidden}
}

// NewNotFoundHTTPError returns a 404 with the given message.
func NewNotFoundHTTPError(message string) *HTTPError {
	return &HTTPError{StatusCode: http.StatusNotFound, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}
