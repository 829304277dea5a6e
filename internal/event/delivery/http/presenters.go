package http

import (
	"time"

	"ciblsport-api/internal/event"
	"ciblsport-api/internal/model"
	"ciblsport-api/pkg/paginator"
)

type athleteReq struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Lane    int    `json:"lane"`
	Seed    string `json:"seed"`
}

type createEventReq struct {
	Name            string       `json:"name"`
	Type            string       `json:"type"`
	Sport           string       `json:"sport"`
	Discipline      string       `json:"discipline"`
	Venue           string       `json:"venue"`
	StartTime       time.Time    `json:"startTime"`
	EndTime         time.Time    `json:"endTime"`
	Status          string       `json:"status"`
	MaxParticipants int          `json:"maxParticipants"`
	Description     string       `json:"description"`
	Athletes        []athleteReq `json:"athletes"`
}

func (req createEventReq) toInput() event.CreateInput {
	athletes := make([]model.Athlete, 0, len(req.Athletes))
	for _, a := range req.Athletes {
		athletes = append(athletes, model.Athlete{
			ID:      a.ID,
			Name:    a.Name,
			Country: a.Country,
			Lane:    a.Lane,
			Seed:    a.Seed,
		})
	}

	return event.CreateInput{
		Name:            req.Name,
		Type:            req.Type,
		Sport:           req.Sport,
		Discipline:      req.Discipline,
		Venue:           req.Venue,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          req.Status,
		MaxParticipants: req.MaxParticipants,
		Description:     req.Description,
		Athletes:        athletes,
	}
}

// firstMissingField returns the name of the first required field absent
// from the request, or "" when all are present.
func (req createEventReq) firstMissingField() string {
	switch {
	case req.Name == "":
		return "name"
	case req.Type == "":
		return "type"
	case req.Sport == "":
		return "sport"
	case req.Venue == "":
		return "venue"
	case req.StartTime.IsZero():
		return "startTime"
	case req.EndTime.IsZero():
		return "endTime"
	}
	return ""
}

type eventResp struct {
	Event model.Event `json:"event"`
}

type listEventQuery struct {
	Status string `form:"status"`
	Venue  string `form:"venue"`
	Type   string `form:"type"`
	Sport  string `form:"sport"`
	paginator.PaginateQuery
}

func (q listEventQuery) toInput() event.ListInput {
	return event.ListInput{
		Filter: event.Filter{
			Status: q.Status,
			Venue:  q.Venue,
			Type:   q.Type,
			Sport:  q.Sport,
		},
		PaginateQuery: q.PaginateQuery,
	}
}

type listEventResp struct {
	Events []model.Event               `json:"events"`
	Meta   paginator.PaginatorResponse `json:"meta"`
}

func newListEventResp(o event.ListOutput) listEventResp {
	return listEventResp{
		Events: o.Events,
		Meta:   o.Paginator.ToResponse(),
	}
}

type updateStatusReq struct {
	Status string `json:"status"`
}
