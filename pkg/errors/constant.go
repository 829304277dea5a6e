package errors

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
	// MessageInvalidCredentials is the 401 message for failed logins.
	MessageInvalidCredentials = "Invalid credentials"
	// MessageForbidden is the default message for 403.
	MessageForbidden = "Forbidden"
)
