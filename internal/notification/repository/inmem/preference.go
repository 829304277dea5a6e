package inmem

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/friendsofgo/errors"

	"ciblsport-api/internal/model"
	"ciblsport-api/internal/notification/repository"
	pkgLog "ciblsport-api/pkg/log"
)

// preferenceRepository keeps the active preference set in memory and,
// when a path is configured, mirrors it to a JSON file so preferences
// survive restarts.
type preferenceRepository struct {
	l    pkgLog.Logger
	path string

	mu    sync.RWMutex
	prefs model.Preferences
}

// NewPreferenceRepository creates a preference repository. An empty path
// disables file persistence.
func NewPreferenceRepository(l pkgLog.Logger, path string) repository.PreferenceRepository {
	r := &preferenceRepository{
		l:     l,
		path:  path,
		prefs: model.DefaultPreferences(),
	}
	if path != "" {
		if err := r.load(); err != nil {
			l.Warnf(context.Background(), "internal.notification.repository.inmem.NewPreferenceRepository: %v", err)
		}
	}
	return r
}

func (r *preferenceRepository) load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "read preferences file")
	}

	var prefs model.Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return errors.Wrap(err, "parse preferences file")
	}

	r.prefs = prefs
	return nil
}

func (r *preferenceRepository) Get(ctx context.Context) (model.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prefs, nil
}

func (r *preferenceRepository) Save(ctx context.Context, prefs model.Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs = prefs

	if r.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal preferences")
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return errors.Wrap(err, "write preferences file")
	}
	return nil
}
