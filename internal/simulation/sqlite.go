package simulation

import (
	"database/sql"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// DefaultDatabaseFile is the SQLite database used when none is configured.
const DefaultDatabaseFile = "sim_index.db"

// Event is one recorded write of the offset.
type Event struct {
	ID        int64
	Value     int
	CreatedAt time.Time
}

// SQLiteBackend stores the offset in a single-row table and appends every
// write to an event history.
type SQLiteBackend struct {
	conn *sql.DB
	mu   sync.RWMutex
}

// NewSQLiteBackend opens (or creates) the database at dbPath and makes sure
// the schema exists.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	b := &SQLiteBackend{conn: conn}

	if err := b.migrate(); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return b, nil
}

// migrate creates the necessary tables if they don't exist.
func (b *SQLiteBackend) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sim_offset (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		value INTEGER NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS offset_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		value INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_offset_events_created_at ON offset_events(created_at);
	`

	_, err := b.conn.Exec(schema)
	return err
}

// Load returns the stored offset. An empty table is reported as sql.ErrNoRows.
func (b *SQLiteBackend) Load() (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var value int
	err := b.conn.QueryRow(`SELECT value FROM sim_offset WHERE id = 1`).Scan(&value)
	if err != nil {
		return 0, errors.Wrap(err, "failed to query offset")
	}
	return value, nil
}

// Save upserts the offset and records the write in offset_events.
func (b *SQLiteBackend) Save(value int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx, err := b.conn.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	if _, err := tx.Exec(`
		INSERT INTO sim_offset (id, value, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, value, now); err != nil {
		return errors.Wrap(err, "failed to store offset")
	}

	if _, err := tx.Exec(`
		INSERT INTO offset_events (value, created_at) VALUES (?, ?)
	`, value, now); err != nil {
		return errors.Wrap(err, "failed to record offset event")
	}

	return tx.Commit()
}

// Events returns up to limit of the most recent writes, newest first.
func (b *SQLiteBackend) Events(limit int) ([]Event, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rows, err := b.conn.Query(`
		SELECT id, value, created_at FROM offset_events
		ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query offset events")
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Value, &e.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan offset event")
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.conn.Close()
}
