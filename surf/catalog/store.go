// Package catalog records loaded objects in a libsql database.
package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "github.com/tursodatabase/go-libsql"

	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.New("catalog entry not found")

// Entry is one catalogued object.
type Entry struct {
	ID         uuid.UUID
	Path       string
	Object     int // 1-based index in the file
	Name       string
	Kind       types.StudiableType
	Sensor     types.SensorType
	Cols       int32
	Rows       int32
	ZMin       int32
	ZMax       int32
	Comment    string
	Acquired   types.Timestamp
	RecordedAt time.Time
}

// Store is the catalog database plus its in-memory path index.
type Store struct {
	db    *sql.DB
	index *PathIndex
	log   zerolog.Logger
}

// Open connects to dsn (for example "file:/var/lib/surf/catalog.db"),
// creates the schema and loads the path index.
func Open(dsn string, log zerolog.Logger) (*Store, error) {
	if path, ok := strings.CutPrefix(dsn, "file:"); ok {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("could not create catalog directory: %w", err)
		}
	}
	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", dsn, err)
	}
	s := &Store{db: db, index: NewPathIndex(), log: log}
	if err := s.InitSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.rebuildIndex(); err != nil {
		db.Close()
		return nil, err
	}
	log.Debug().Str("dsn", dsn).Int("paths", s.index.Len()).Msg("catalog opened")
	return s, nil
}

// InitSchema creates the tables if they do not exist.
func (s *Store) InitSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS objects (
		id TEXT PRIMARY KEY UNIQUE,
		path TEXT NOT NULL,
		object_index INTEGER NOT NULL,
		name TEXT,
		kind INTEGER,
		sensor INTEGER,
		col_count INTEGER,
		row_count INTEGER,
		z_min INTEGER,
		z_max INTEGER,
		comment TEXT,
		acquired TEXT,
		recorded_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create objects table: %w", err)
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS objects_path ON objects (path)`); err != nil {
		return fmt.Errorf("failed to create path index: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record replaces every entry of path with one entry per non-nil
// collection.
func (s *Store) Record(path string, collections []*types.Collection) ([]Entry, error) {
	path = normalizePath(path)
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	if _, err := tx.Exec("DELETE FROM objects WHERE path = ?", path); err != nil {
		return nil, fmt.Errorf("failed to clear %s: %w", path, err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	var entries []Entry
	for i, c := range collections {
		if c == nil {
			continue
		}
		md := &c.Metadata
		e := Entry{
			ID:         uuid.New(),
			Path:       path,
			Object:     i + 1,
			Name:       md.Name,
			Kind:       md.Kind,
			Sensor:     md.Sensor,
			Cols:       md.Cols,
			Rows:       md.Rows,
			ZMin:       md.ZMin,
			ZMax:       md.ZMax,
			Comment:    c.Comment,
			Acquired:   md.Acquired,
			RecordedAt: now,
		}
		_, err := tx.Exec(`INSERT INTO objects
			(id, path, object_index, name, kind, sensor, col_count, row_count, z_min, z_max, comment, acquired, recorded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID.String(), e.Path, e.Object, e.Name, int(e.Kind), int(e.Sensor),
			e.Cols, e.Rows, e.ZMin, e.ZMax, e.Comment, e.Acquired.String(), now.Format(time.RFC3339))
		if err != nil {
			return nil, fmt.Errorf("failed to insert object %d of %s: %w", i+1, path, err)
		}
		entries = append(entries, e)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.index.Put(path, entries)
	s.log.Debug().Str("path", path).Int("entries", len(entries)).Msg("recorded")
	return entries, nil
}

const selectEntries = `SELECT id, path, object_index, name, kind, sensor, col_count, row_count,
	z_min, z_max, comment, acquired, recorded_at FROM objects`

// Get returns the entry with id.
func (s *Store) Get(id uuid.UUID) (Entry, error) {
	row := s.db.QueryRow(selectEntries+" WHERE id = ?", id.String())
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, err
}

// List returns every entry ordered by path and object index.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(selectEntries + " ORDER BY path, object_index")
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ByPrefix returns the entries of every path under prefix from the index.
func (s *Store) ByPrefix(prefix string) []Entry {
	return s.index.Prefix(prefix)
}

// Delete removes every entry of path and returns how many were removed.
func (s *Store) Delete(path string) (int, error) {
	path = normalizePath(path)
	res, err := s.db.Exec("DELETE FROM objects WHERE path = ?", path)
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", path, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	s.index.Remove(path)
	return int(n), nil
}

func (s *Store) rebuildIndex() error {
	entries, err := s.List()
	if err != nil {
		return err
	}
	s.index = NewPathIndex()
	for _, e := range entries {
		s.index.Add(e)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e                   Entry
		id, acquired, stamp string
		name, comment       sql.NullString
		kind, sensor        int
	)
	err := sc.Scan(&id, &e.Path, &e.Object, &name, &kind, &sensor,
		&e.Cols, &e.Rows, &e.ZMin, &e.ZMax, &comment, &acquired, &stamp)
	if err != nil {
		return Entry{}, err
	}
	if e.ID, err = uuid.Parse(id); err != nil {
		return Entry{}, fmt.Errorf("bad id %q: %w", id, err)
	}
	e.Name, e.Comment = name.String, comment.String
	e.Kind, e.Sensor = types.StudiableType(kind), types.SensorType(sensor)
	e.Acquired = parseTimestamp(acquired)
	if e.RecordedAt, err = time.Parse(time.RFC3339, stamp); err != nil {
		return Entry{}, fmt.Errorf("bad timestamp %q: %w", stamp, err)
	}
	return e, nil
}

func parseTimestamp(s string) types.Timestamp {
	var t types.Timestamp
	// raw fields, possibly not a valid date
	_, _ = fmt.Sscanf(s, "%d-%d-%d %d:%d:%d", &t.Year, &t.Month, &t.Day, &t.Hour, &t.Minute, &t.Second)
	return t
}
