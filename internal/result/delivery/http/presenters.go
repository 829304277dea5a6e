package http

import (
	"ciblsport-api/internal/model"
	"ciblsport-api/internal/result"
)

type resultsResp struct {
	Results []model.Result `json:"results"`
}

type resultResp struct {
	Result model.Result `json:"result"`
}

type addResultReq struct {
	EventID     string   `json:"eventId"`
	AthleteID   string   `json:"athleteId"`
	AthleteName string   `json:"athleteName"`
	Country     string   `json:"country"`
	Time        string   `json:"time"`
	Position    int      `json:"position"`
	Lane        int      `json:"lane"`
	Splits      []string `json:"splits"`
	RecordType  string   `json:"recordType"`
	Status      string   `json:"status"`
}

func (req addResultReq) toInput() result.AddResultInput {
	return result.AddResultInput{
		EventID:     req.EventID,
		AthleteID:   req.AthleteID,
		AthleteName: req.AthleteName,
		Country:     req.Country,
		Time:        req.Time,
		Position:    req.Position,
		Lane:        req.Lane,
		Splits:      req.Splits,
		RecordType:  req.RecordType,
		Status:      req.Status,
	}
}

type updateResultReq struct {
	Time       *string  `json:"time"`
	Position   *int     `json:"position"`
	Lane       *int     `json:"lane"`
	Splits     []string `json:"splits"`
	RecordType *string  `json:"recordType"`
	Status     *string  `json:"status"`
}

func (req updateResultReq) toInput(id string) result.UpdateResultInput {
	return result.UpdateResultInput{
		ID:         id,
		Time:       req.Time,
		Position:   req.Position,
		Lane:       req.Lane,
		Splits:     req.Splits,
		RecordType: req.RecordType,
		Status:     req.Status,
	}
}
