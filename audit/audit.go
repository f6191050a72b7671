package audit

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the relational audit trail. Privileged mutations against the
// document store are mirrored here so admin tooling has a queryable ledger.
type Store struct {
	db *sql.DB
}

type Event struct {
	ID        int64     `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityId  string    `json:"entityId"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

const schema = `
CREATE TABLE IF NOT EXISTS audit_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	actor TEXT NOT NULL,
	action TEXT NOT NULL,
	entity TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	details TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audit_events_created_at ON audit_events(created_at);
`

// OpenStore opens (and if needed creates) the audit database.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one audit event.
func (s *Store) Record(ctx context.Context, actor, action, entity, entityId, details string) error {
	if actor == "" {
		actor = "system"
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_events (actor, action, entity, entity_id, details, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		actor, action, entity, entityId, details, time.Now().UTC())
	return err
}

// List returns the most recent events, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, actor, action, entity, entity_id, details, created_at
		 FROM audit_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.Entity, &e.EntityId, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

var defaultStore *Store

// Init opens the process-wide audit store. Auditing is best effort: when the
// store cannot be opened the application runs without it.
func Init(path string) {
	if path == "" {
		path = "audit.db"
	}
	store, err := OpenStore(path)
	if err != nil {
		log.Println("Audit store unavailable:", err)
		return
	}
	defaultStore = store
}

// Record writes to the process-wide store, logging failures instead of
// propagating them.
func Record(ctx context.Context, actor, action, entity, entityId, details string) {
	if defaultStore == nil {
		return
	}
	if err := defaultStore.Record(ctx, actor, action, entity, entityId, details); err != nil {
		log.Println("Error recording audit event:", err)
	}
}

// List reads from the process-wide store.
func List(ctx context.Context, limit int) ([]Event, error) {
	if defaultStore == nil {
		return []Event{}, nil
	}
	return defaultStore.List(ctx, limit)
}
