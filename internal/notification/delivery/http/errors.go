package http

import (
	"ciblsport-api/internal/notification"
	pkgErrors "ciblsport-api/pkg/errors"
	"ciblsport-api/pkg/response"
)

var errorMapping = response.ErrorMapping{
	notification.ErrNotificationNotFound: pkgErrors.NewNotFoundHTTPError("Notification not found"),
	notification.ErrInvalidType:          pkgErrors.NewHTTPError(400, "Invalid notification type"),
}
