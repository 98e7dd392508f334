package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // dialect registration
	_ "modernc.org/sqlite"                             // database driver

	"github.com/cristianoliveira/tui-relay/internal/triggers"
)

const (
	dialectSQLite    = "sqlite3"
	tableInvocations = "invocations"

	colID            = "id"
	colFiredAt       = "fired_at"
	colTrigger       = "trigger_key"
	colCommand       = "command"
	colOutcome       = "outcome"
	colParameterJSON = "parameter_json"
	colPayloadJSON   = "payload_json"
	colError         = "error"
	colDurationUS    = "duration_us"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS invocations (
	id TEXT PRIMARY KEY,
	fired_at TEXT NOT NULL,
	trigger_key TEXT NOT NULL,
	command TEXT NOT NULL,
	outcome TEXT NOT NULL,
	parameter_json TEXT NOT NULL DEFAULT 'null',
	payload_json TEXT NOT NULL DEFAULT 'null',
	error TEXT NOT NULL DEFAULT '',
	duration_us INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_invocations_fired_at ON invocations(fired_at);
CREATE INDEX IF NOT EXISTS idx_invocations_command ON invocations(command);
`

// Store is the SQLite-backed invocation journal.
type Store struct {
	db *sql.DB
}

// Open creates or opens the journal database at dbPath.
func Open(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("journal: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("journal: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: open db: %w", err)
	}

	store := &Store{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("journal: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("journal: create schema: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Append writes one entry.
func (s *Store) Append(entry Entry) error {
	if err := entry.validate(); err != nil {
		return err
	}

	insert := goqu.Dialect(dialectSQLite).
		Insert(tableInvocations).
		Rows(goqu.Record{
			colID:            entry.ID,
			colFiredAt:       entry.FiredAt.UTC().Format(timeLayout),
			colTrigger:       entry.Trigger,
			colCommand:       entry.Command,
			colOutcome:       entry.Outcome,
			colParameterJSON: string(entry.ParameterJSON),
			colPayloadJSON:   string(entry.PayloadJSON),
			colError:         entry.Error,
			colDurationUS:    entry.Duration.Microseconds(),
		})
	query, _, err := insert.ToSQL()
	if err != nil {
		return fmt.Errorf("journal: build insert: %w", err)
	}
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("journal: append entry: %w", err)
	}
	return nil
}

// Record converts a firing into an entry and appends it.
func (s *Store) Record(firing triggers.Firing) error {
	entry, err := NewEntry(firing)
	if err != nil {
		return err
	}
	return s.Append(entry)
}

// List returns entries matching filter, newest first.
func (s *Store) List(filter Filter) ([]Entry, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}

	stmt := goqu.Dialect(dialectSQLite).
		From(tableInvocations).
		Select(colID, colFiredAt, colTrigger, colCommand, colOutcome,
			colParameterJSON, colPayloadJSON, colError, colDurationUS).
		Order(goqu.I(colFiredAt).Desc(), goqu.I(colID).Asc())
	if filter.Command != "" {
		stmt = stmt.Where(goqu.Ex{colCommand: filter.Command})
	}
	if filter.Outcome != "" {
		stmt = stmt.Where(goqu.Ex{colOutcome: filter.Outcome})
	}
	if !filter.Since.IsZero() {
		stmt = stmt.Where(goqu.C(colFiredAt).Gte(filter.Since.UTC().Format(timeLayout)))
	}
	if filter.Limit > 0 {
		stmt = stmt.Limit(uint(filter.Limit))
	}

	query, _, err := stmt.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("journal: build select: %w", err)
	}
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("journal: list entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			entry       Entry
			firedAt     string
			paramJSON   string
			payloadJSON string
			durationUS  int64
		)
		if err := rows.Scan(&entry.ID, &firedAt, &entry.Trigger, &entry.Command,
			&entry.Outcome, &paramJSON, &payloadJSON, &entry.Error, &durationUS); err != nil {
			return nil, fmt.Errorf("journal: scan entry: %w", err)
		}
		ts, err := time.Parse(timeLayout, firedAt)
		if err != nil {
			return nil, fmt.Errorf("journal: parse fired_at %q: %w", firedAt, err)
		}
		entry.FiredAt = ts
		entry.ParameterJSON = []byte(paramJSON)
		entry.PayloadJSON = []byte(payloadJSON)
		entry.Duration = time.Duration(durationUS) * time.Microsecond
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: iterate entries: %w", err)
	}
	return entries, nil
}

// Purge deletes entries fired before cutoff and reports how many went.
func (s *Store) Purge(cutoff time.Time) (int64, error) {
	del := goqu.Dialect(dialectSQLite).
		Delete(tableInvocations).
		Where(goqu.C(colFiredAt).Lt(cutoff.UTC().Format(timeLayout)))
	query, _, err := del.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("journal: build delete: %w", err)
	}
	result, err := s.db.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("journal: purge entries: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("journal: purge rows affected: %w", err)
	}
	return affected, nil
}

// CountByOutcome aggregates entry counts per outcome label.
func (s *Store) CountByOutcome() (map[string]int64, error) {
	stmt := goqu.Dialect(dialectSQLite).
		From(tableInvocations).
		Select(colOutcome, goqu.COUNT(colID).As("n")).
		GroupBy(colOutcome)
	query, _, err := stmt.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("journal: build count: %w", err)
	}
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("journal: count entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := map[string]int64{}
	for rows.Next() {
		var outcome string
		var n int64
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("journal: scan count: %w", err)
		}
		counts[outcome] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: iterate counts: %w", err)
	}
	return counts, nil
}
