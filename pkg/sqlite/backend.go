// Package sqlite provides the public API for the SQLite activity store.
// This package exposes the factory function while keeping implementation
// details internal.
package sqlite

import (
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/activitylog/internal/sqlite"
	"github.com/mesh-intelligence/activitylog/pkg/types"
)

// Open opens (creating if absent) the activity database at path and returns
// its repository. A nil logger uses the logrus standard logger.
//
// Example:
//
//	repo, err := sqlite.Open("ActividadFisica.db", nil)
//	if err != nil {
//	    return err
//	}
//	defer repo.Close()
//	id, err := repo.Create(types.NewCardioExercise("Run", 30, 250))
func Open(path string, logger logrus.FieldLogger) (types.ActivityRepository, error) {
	repo, err := sqlite.OpenActivities(path, logger)
	if err != nil {
		return nil, err
	}
	return repo, nil
}
