package response

import "ciblsport-api/pkg/errors"

// ErrResp is the error envelope for every non-2xx response.
type ErrResp struct {
	Error string `json:"error"`
}

// ErrorMapping maps domain sentinel errors to their HTTP translations.
type ErrorMapping map[error]*errors.HTTPError
