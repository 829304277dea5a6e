package inmem

import (
	"sync"

	"ciblsport-api/internal/auth/repository"
	"ciblsport-api/internal/model"
	pkgLog "ciblsport-api/pkg/log"
)

type inmemRepository struct {
	l pkgLog.Logger

	mu    sync.RWMutex
	users map[string]model.User
}

// New creates an in-memory user repository.
func New(l pkgLog.Logger) repository.Repository {
	return &inmemRepository{
		l:     l,
		users: make(map[string]model.User),
	}
}
