package venue

import "time"

type MapURLOutput struct {
	URL       string
	ExpiresAt time.Time
}
