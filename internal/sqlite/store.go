// Package sqlite implements activity storage on an embedded SQLite file.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/activitylog/pkg/types"
)

// dsnOptions are appended to the file path when opening the database.
const dsnOptions = "?_pragma=busy_timeout(5000)"

// Store owns the single connection to a database file.
// It is not safe for concurrent use; the tool runs one operation at a time.
type Store struct {
	path string
	db   *sql.DB
	log  logrus.FieldLogger
}

// Open opens the database at path, creating the file if it does not exist,
// and ensures the schema. A failure to open or read the file is returned
// wrapped in types.ErrConnection and no Store is returned. A schema failure
// is logged and the Store is still returned; later statements will report
// their own errors.
//
// A nil logger uses the logrus standard logger.
func Open(path string, logger logrus.FieldLogger) (*Store, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger = logger.WithField("db", path)

	db, err := sql.Open("sqlite", path+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrConnection, path, err)
	}
	// One connection keeps the file handle and pragmas stable for the session.
	db.SetMaxOpenConns(1)

	// Ping alone does not read the file, so a corrupt file would only surface
	// on the first statement. Touch sqlite_master to fail here instead.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %s: %w", types.ErrConnection, path, err)
	}
	var n int
	if err := db.QueryRow("SELECT count(*) FROM sqlite_master").Scan(&n); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %s: %w", types.ErrConnection, path, err)
	}

	s := &Store{path: path, db: db, log: logger}
	if err := s.EnsureSchema(); err != nil {
		logger.WithError(err).Error("schema setup failed")
	}
	logger.Debug("database opened")
	return s, nil
}

// EnsureSchema creates the activities table if it is missing. Idempotent.
func (s *Store) EnsureSchema() error {
	if s.db == nil {
		return types.ErrStoreClosed
	}
	if _, err := s.db.Exec(createActivities); err != nil {
		return fmt.Errorf("%w: %w", types.ErrSchema, err)
	}
	return nil
}

// Path returns the database file path the Store was opened with.
func (s *Store) Path() string { return s.path }

// Close releases the connection. Idempotent: later calls return nil.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.log.Debug("database closed")
	return nil
}

// handle returns the open connection or ErrStoreClosed.
func (s *Store) handle() (*sql.DB, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}
