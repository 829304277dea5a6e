package http

import (
	"time"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/security"
)

type incidentsResp struct {
	Incidents []model.Incident `json:"incidents"`
}

type incidentResp struct {
	Incident model.Incident `json:"incident"`
}

type alertsResp struct {
	Alerts []model.Alert `json:"alerts"`
}

type alertResp struct {
	Alert model.Alert `json:"alert"`
}

type addIncidentReq struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Type             string `json:"type"`
	Severity         string `json:"severity"`
	Location         string `json:"location"`
	Venue            string `json:"venue"`
	AffectedAudience string `json:"affectedAudience"`
	AssignedTo       string `json:"assignedTo"`
}

// firstMissingField returns the name of the first required field absent
// from the request, or "" when all are present.
func (req addIncidentReq) firstMissingField() string {
	switch {
	case req.Title == "":
		return "title"
	case req.Description == "":
		return "description"
	case req.Type == "":
		return "type"
	case req.Severity == "":
		return "severity"
	}
	return ""
}

func (req addIncidentReq) toInput() security.AddIncidentInput {
	return security.AddIncidentInput{
		Title:            req.Title,
		Description:      req.Description,
		Type:             req.Type,
		Severity:         req.Severity,
		Location:         req.Location,
		Venue:            req.Venue,
		AffectedAudience: req.AffectedAudience,
		AssignedTo:       req.AssignedTo,
	}
}

type updateIncidentReq struct {
	Status     *string `json:"status"`
	Severity   *string `json:"severity"`
	AssignedTo *string `json:"assignedTo"`
}

func (req updateIncidentReq) toInput(id string) security.UpdateIncidentInput {
	return security.UpdateIncidentInput{
		ID:         id,
		Status:     req.Status,
		Severity:   req.Severity,
		AssignedTo: req.AssignedTo,
	}
}

type addIncidentUpdateReq struct {
	Message string `json:"message"`
	Author  string `json:"author"`
}

type listIncidentQuery struct {
	Status   string `form:"status"`
	Severity string `form:"severity"`
	Type     string `form:"type"`
	Venue    string `form:"venue"`
}

func (q listIncidentQuery) toInput() security.ListIncidentsInput {
	return security.ListIncidentsInput{
		Filter: security.IncidentFilter{
			Status:   q.Status,
			Severity: q.Severity,
			Type:     q.Type,
			Venue:    q.Venue,
		},
	}
}

type createAlertReq struct {
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	Venue     string     `json:"venue"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

func (req createAlertReq) toInput() security.CreateAlertInput {
	return security.CreateAlertInput{
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		Venue:     req.Venue,
		ExpiresAt: req.ExpiresAt,
	}
}
