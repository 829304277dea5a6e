package inmem

import (
	"sync"

	"ciblsport-api/internal/event/repository"
	"ciblsport-api/internal/model"
	pkgLog "ciblsport-api/pkg/log"
)

type inmemRepository struct {
	l pkgLog.Logger

	mu     sync.RWMutex
	events map[string]model.Event
}

// New creates an in-memory event repository.
func New(l pkgLog.Logger) repository.Repository {
	return &inmemRepository{
		l:      l,
		events: make(map[string]model.Event),
	}
}
