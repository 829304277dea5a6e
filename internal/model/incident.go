package model

import "time"

const (
	IncidentTypeSecurity  = "security"
	IncidentTypeMedical   = "medical"
	IncidentTypeTechnical = "technical"
	IncidentTypeWeather   = "weather"
	IncidentTypeCrowd     = "crowd"
	IncidentTypeOther     = "other"
)

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Incident status progression is reported -> investigating -> resolved ->
// closed, but callers may set any status directly; only the first
// transition into resolved stamps ResolvedAt.
const (
	IncidentStatusReported      = "reported"
	IncidentStatusInvestigating = "investigating"
	IncidentStatusResolved      = "resolved"
	IncidentStatusClosed        = "closed"
)

const (
	AudienceAll           = "all"
	AudienceStaff         = "commissioners"
	AudienceStaffAthletes = "commissioners-athletes"
	AudienceVenue         = "venue-specific"
)

// IncidentUpdate is an append-only progress note on an incident.
type IncidentUpdate struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// Incident is a reported security/medical/technical situation.
type Incident struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Type             string           `json:"type"`
	Severity         string           `json:"severity"`
	Status           string           `json:"status"`
	Location         string           `json:"location"`
	Venue            string           `json:"venue,omitempty"`
	ReportedBy       string           `json:"reportedBy"`
	ReportedAt       time.Time        `json:"reportedAt"`
	ResolvedAt       *time.Time       `json:"resolvedAt,omitempty"`
	AffectedAudience string           `json:"affectedAudience,omitempty"`
	AssignedTo       string           `json:"assignedTo,omitempty"`
	Updates          []IncidentUpdate `json:"updates"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// IsHighSeverity reports whether the incident warrants an automatic alert.
func (i Incident) IsHighSeverity() bool {
	return i.Severity == SeverityHigh || i.Severity == SeverityCritical
}
