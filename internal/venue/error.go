package venue

import "errors"

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrMapNotAvailable = errors.New("venue map not available")
)
