package inmem

import (
	"sync"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/result/repository"
	pkgLog "ciblsport-api/pkg/log"
)

type inmemRepository struct {
	l pkgLog.Logger

	mu sync.RWMutex
	// results are grouped per event and kept sorted by finishing position.
	byEvent map[string][]model.Result
	byID    map[string]string // result id -> event id
}

// New creates an in-memory result repository.
func New(l pkgLog.Logger) repository.Repository {
	return &inmemRepository{
		l:       l,
		byEvent: make(map[string][]model.Result),
		byID:    make(map[string]string),
	}
}
