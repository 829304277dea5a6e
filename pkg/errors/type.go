package errors

// ValidationError is a request validation failure tied to a single field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code and message.
type HTTPError struct {
	StatusCode int
	Message    string
}
