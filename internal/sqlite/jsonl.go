package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/activitylog/pkg/types"
)

// Export writes every record to path as JSON lines, replacing the file
// atomically. Returns the number of records written.
func (a *Activities) Export(path string) (int, error) {
	records, err := a.List()
	if err != nil {
		return 0, err
	}

	lines := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			return 0, fmt.Errorf("marshaling activity %d: %w", r.ID, err)
		}
		lines = append(lines, b)
	}
	if err := writeJSONL(path, lines); err != nil {
		a.log.WithError(err).WithFields(logrus.Fields{"op": "export", "path": path}).Error("export failed")
		return 0, err
	}
	a.log.WithFields(logrus.Fields{"op": "export", "path": path, "rows": len(lines)}).Info("activities exported")
	return len(lines), nil
}

// Import inserts the records of a JSONL file written by Export. Ids in the
// file are ignored and reassigned by storage. Lines that do not decode or
// carry an unknown kind are skipped with a warning. Returns the number of records inserted; on a storage error the
// records inserted before it stay committed.
func (a *Activities) Import(path string) (int, error) {
	lines, err := readJSONL(path)
	if err != nil {
		return 0, err
	}

	n := 0
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		var r types.Record
		if err := json.Unmarshal(line, &r); err != nil {
			a.log.WithError(err).WithField("line", i+1).Warn("skipping unreadable record")
			continue
		}
		kind, err := types.ParseKind(r.Kind)
		if err != nil {
			a.log.WithError(err).WithField("line", i+1).Warn("skipping record")
			continue
		}
		act := types.Activity{
			Kind:            kind,
			Name:            r.Name,
			DurationMinutes: r.DurationMinutes,
			CaloriesBurned:  r.CaloriesBurned,
		}
		if _, err := a.Create(act); err != nil {
			return n, fmt.Errorf("importing line %d: %w", i+1, err)
		}
		n++
	}
	return n, nil
}

// readJSONL returns every line of a JSONL file, empty ones included, so the
// index of a line is its line number minus one.
func readJSONL(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		cp := make([]byte, len(line))
		copy(cp, line)
		lines = append(lines, cp)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return lines, nil
}

// exportFileMode replaces the 0600 mode os.CreateTemp gives the temp file.
const exportFileMode = 0o644

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail(fmt.Errorf("writing record: %w", err))
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail(fmt.Errorf("writing newline: %w", err))
		}
	}
	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("flushing buffer: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing temp file: %w", err))
	}
	if err := tmp.Chmod(exportFileMode); err != nil {
		return fail(fmt.Errorf("setting file mode: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
