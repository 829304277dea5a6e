package http

import (
	"ciblsport-api/internal/venue"
	pkgErrors "ciblsport-api/pkg/errors"
	"ciblsport-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	venue.ErrVenueNotFound:   pkgErrors.NewNotFoundHTTPError("Venue not found"),
	venue.ErrMapNotAvailable: pkgErrors.NewNotFoundHTTPError("Venue map not available"),
}
