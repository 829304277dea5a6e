package http

import (
	"ciblsport-api/internal/event"
	pkgErrors "ciblsport-api/pkg/errors"
	"ciblsport-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	event.ErrEventNotFound: pkgErrors.NewNotFoundHTTPError("Event not found"),
	event.ErrInvalidStatus: pkgErrors.NewHTTPError(400, "Invalid event status"),
	event.ErrFieldRequired: pkgErrors.NewHTTPError(400, "Name and venue are required"),
}
