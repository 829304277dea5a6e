package model

import "time"

const (
	ResultStatusOfficial     = "official"
	ResultStatusProvisional  = "provisional"
	ResultStatusDisqualified = "disqualified"
)

// Record classification tags for a result.
const (
	RecordWorld        = "WR"
	RecordEuropean     = "ER"
	RecordChampionship = "CR"
	RecordNational     = "NR"
	RecordPersonalBest = "PB"
)

// Result is one finisher's outcome within an event. Position is
// caller-supplied; duplicates are permitted (validation is a product
// decision left open upstream).
type Result struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	AthleteID   string    `json:"athleteId"`
	AthleteName string    `json:"athleteName"`
	Country     string    `json:"country,omitempty"`
	Time        string    `json:"time,omitempty"`
	Position    int       `json:"position"`
	Lane        int       `json:"lane,omitempty"`
	Splits      []string  `json:"splits,omitempty"`
	RecordType  string    `json:"recordType,omitempty"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}
