package usecase

import (
	"ciblsport-api/internal/venue"
	"ciblsport-api/internal/venue/repository"
	pkgLog "ciblsport-api/pkg/log"
	pkgMinio "ciblsport-api/pkg/minio"
)

type usecase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	storage pkgMinio.MinIO
	bucket  string
}

// New creates the venue usecase. storage may be nil when object storage
// is disabled; map URLs are then unavailable.
func New(l pkgLog.Logger, repo repository.Repository, storage pkgMinio.MinIO, bucket string) venue.UseCase {
	return &usecase{
		l:       l,
		repo:    repo,
		storage: storage,
		bucket:  bucket,
	}
}
