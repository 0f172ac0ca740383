package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/activitylog/pkg/types"
)

// Compile-time interface check: Activities must implement ActivityRepository.
var _ types.ActivityRepository = (*Activities)(nil)

// Activities is the activity repository. It owns its Store; every call goes
// to the database and commits before returning.
type Activities struct {
	store *Store
	log   logrus.FieldLogger
}

// NewActivities returns a repository over an open Store.
func NewActivities(store *Store) *Activities {
	return &Activities{
		store: store,
		log:   store.log.WithField("table", tableActivities),
	}
}

// OpenActivities opens the database at path and returns its repository.
func OpenActivities(path string, logger logrus.FieldLogger) (*Activities, error) {
	store, err := Open(path, logger)
	if err != nil {
		return nil, err
	}
	return NewActivities(store), nil
}

// Store returns the underlying Store.
func (a *Activities) Store() *Store { return a.store }

// Create inserts the activity with its variant label in the tipo column and
// returns the id assigned by SQLite.
func (a *Activities) Create(act types.Activity) (int64, error) {
	id, err := a.create(act)
	if err != nil {
		a.log.WithError(err).WithField("op", "create").Error("insert activity failed")
		return 0, err
	}
	a.log.WithFields(logrus.Fields{"op": "create", "id": id}).Debug("activity created")
	return id, nil
}

func (a *Activities) create(act types.Activity) (int64, error) {
	db, err := a.store.handle()
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO activities (nombre, tipo, duracion, calorias_quemadas) VALUES (?, ?, ?, ?)",
		act.Name, act.Kind.Label(), act.DurationMinutes, act.CaloriesBurned,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting activity: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing activity: %w", err)
	}
	return id, nil
}

// List returns all records in the table's natural order. On error the
// returned slice is empty, never nil.
func (a *Activities) List() ([]types.Record, error) {
	records, err := a.list()
	if err != nil {
		a.log.WithError(err).WithField("op", "list").Error("read activities failed")
		return []types.Record{}, err
	}
	return records, nil
}

func (a *Activities) list() ([]types.Record, error) {
	db, err := a.store.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(selectActivities)
	if err != nil {
		return nil, fmt.Errorf("querying activities: %w", err)
	}
	defer rows.Close()

	records := []types.Record{}
	for rows.Next() {
		r, err := hydrateRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return records, nil
}

// Update rewrites the fields present in patch on the record with the given
// id. Fields holding "" or 0 are skipped. An empty patch does not touch the
// database. Returns the number of rows changed; 0 when no row matches.
func (a *Activities) Update(id int64, patch types.ActivityPatch) (int64, error) {
	n, err := a.update(id, patch)
	fields := logrus.Fields{"op": "update", "id": id}
	if err != nil {
		a.log.WithError(err).WithFields(fields).Error("update activity failed")
		return 0, err
	}
	a.log.WithFields(fields).WithField("rows", n).Debug("activity updated")
	return n, nil
}

func (a *Activities) update(id int64, patch types.ActivityPatch) (int64, error) {
	db, err := a.store.handle()
	if err != nil {
		return 0, err
	}

	query, args := buildUpdate(id, patch)
	if query == "" {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("updating activity %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing activity update: %w", err)
	}
	return n, nil
}

// Delete removes the record with the given id. Returns 0 when no row matches.
func (a *Activities) Delete(id int64) (int64, error) {
	n, err := a.delete(id)
	fields := logrus.Fields{"op": "delete", "id": id}
	if err != nil {
		a.log.WithError(err).WithFields(fields).Error("delete activity failed")
		return 0, err
	}
	a.log.WithFields(fields).WithField("rows", n).Debug("activity deleted")
	return n, nil
}

func (a *Activities) delete(id int64) (int64, error) {
	db, err := a.store.handle()
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM activities WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("deleting activity %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing activity deletion: %w", err)
	}
	return n, nil
}

// Close closes the underlying Store.
func (a *Activities) Close() error {
	return a.store.Close()
}

// patchField binds one patchable column to its value in an ActivityPatch.
type patchField struct {
	column string
	value  func(types.ActivityPatch) (any, bool)
}

// patchFields is the fixed column order of UPDATE statements.
var patchFields = []patchField{
	{colName, func(p types.ActivityPatch) (any, bool) {
		if !p.HasName() {
			return nil, false
		}
		return *p.Name, true
	}},
	{colDuration, func(p types.ActivityPatch) (any, bool) {
		if !p.HasDuration() {
			return nil, false
		}
		return *p.DurationMinutes, true
	}},
	{colCalories, func(p types.ActivityPatch) (any, bool) {
		if !p.HasCalories() {
			return nil, false
		}
		return *p.CaloriesBurned, true
	}},
}

// buildUpdate returns the UPDATE statement and its arguments for the present
// fields of patch. Only column names from patchFields reach the query text;
// values are always bound. Returns "" when no field is present.
func buildUpdate(id int64, patch types.ActivityPatch) (string, []any) {
	var sets []string
	var args []any
	for _, f := range patchFields {
		v, ok := f.value(patch)
		if !ok {
			continue
		}
		sets = append(sets, f.column+" = ?")
		args = append(args, v)
	}
	if len(sets) == 0 {
		return "", nil
	}
	args = append(args, id)
	return "UPDATE " + tableActivities + " SET " + strings.Join(sets, ", ") + " WHERE " + colID + " = ?", args
}

// hydrateRecord scans one row selected with selectActivities.
func hydrateRecord(rows *sql.Rows) (types.Record, error) {
	var r types.Record
	if err := rows.Scan(&r.ID, &r.Name, &r.Kind, &r.DurationMinutes, &r.CaloriesBurned); err != nil {
		return types.Record{}, err
	}
	return r, nil
}
