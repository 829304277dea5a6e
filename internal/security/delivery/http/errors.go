package http

import (
	"ciblsport-api/internal/security"
	pkgErrors "ciblsport-api/pkg/errors"
	"ciblsport-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	security.ErrIncidentNotFound: pkgErrors.NewNotFoundHTTPError("Incident not found"),
	security.ErrAlertNotFound:    pkgErrors.NewNotFoundHTTPError("Alert not found"),
	security.ErrFieldRequired:    pkgErrors.NewHTTPError(400, "Required fields are missing"),
	security.ErrInvalidSeverity:  pkgErrors.NewHTTPError(400, "Invalid severity"),
	security.ErrInvalidStatus:    pkgErrors.NewHTTPError(400, "Invalid incident status"),
	security.ErrInvalidAlertType: pkgErrors.NewHTTPError(400, "Invalid alert type"),
}
