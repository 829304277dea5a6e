package event

import (
	"time"

	"ciblsport-api/internal/model"
	"ciblsport-api/pkg/paginator"
)

type CreateInput struct {
	Name            string
	Type            string
	Sport           string
	Discipline      string
	Venue           string
	StartTime       time.Time
	EndTime         time.Time
	Status          string
	MaxParticipants int
	Description     string
	Athletes        []model.Athlete
}

type Filter struct {
	Status string
	Venue  string
	Type   string
	Sport  string
}

type ListInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Events    []model.Event
	Paginator paginator.Paginator
}

type UpdateStatusInput struct {
	ID     string
	Status string
}
