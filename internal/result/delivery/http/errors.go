package http

import (
	"ciblsport-api/internal/result"
	pkgErrors "ciblsport-api/pkg/errors"
	"ciblsport-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	result.ErrResultNotFound: pkgErrors.NewNotFoundHTTPError("Result not found"),
	result.ErrEventNotFound:  pkgErrors.NewNotFoundHTTPError("Event not found"),
	result.ErrFieldRequired:  pkgErrors.NewHTTPError(400, "eventId and athleteName are required"),
	result.ErrInvalidStatus:  pkgErrors.NewHTTPError(400, "Invalid result status"),
}
