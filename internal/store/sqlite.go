package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/todo/internal/model"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db   *sqlx.DB
	opts options
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string, opts ...Option) (*SQLiteStore, error) {
	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// One connection: a single writer, and an in-memory database is
	// private to the connection that created it.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	s := &SQLiteStore{db: db, opts: buildOptions(opts)}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// todoRow is the database shape of a todo. end_at is RFC 3339 text so the
// stored value is independent of the driver's time handling.
type todoRow struct {
	ID        string         `db:"id"`
	Title     string         `db:"title"`
	Note      string         `db:"note"`
	EndAt     sql.NullString `db:"end_at"`
	URL       string         `db:"url"`
	Completed int            `db:"completed"`
	Position  int            `db:"position"`
}

func toRow(t model.Todo, position int) todoRow {
	r := todoRow{
		ID:        t.ID,
		Title:     t.Title,
		Note:      t.Note,
		URL:       t.URL,
		Completed: boolToInt(t.Completed),
		Position:  position,
	}
	if t.EndAt != nil {
		r.EndAt = sql.NullString{String: t.EndAt.Format(time.RFC3339Nano), Valid: true}
	}
	return r
}

func (r todoRow) toTodo() (model.Todo, error) {
	t := model.Todo{
		ID:        r.ID,
		Title:     r.Title,
		Note:      r.Note,
		URL:       r.URL,
		Completed: r.Completed != 0,
	}
	if r.EndAt.Valid && r.EndAt.String != "" {
		end, err := time.Parse(time.RFC3339Nano, r.EndAt.String)
		if err != nil {
			return model.Todo{}, fmt.Errorf("parsing end_at of todo %s: %w", r.ID, err)
		}
		end = end.Local()
		t.EndAt = &end
	}
	return t, nil
}

// LoadTodos returns all todos ordered by their position.
func (s *SQLiteStore) LoadTodos(ctx context.Context) ([]model.Todo, error) {
	var rows []todoRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, title, note, end_at, url, completed, position
		FROM todos
		ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}

	todos := make([]model.Todo, 0, len(rows))
	for _, r := range rows {
		t, err := r.toTodo()
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, nil
}

// SaveTodos replaces the stored collection inside a single transaction.
func (s *SQLiteStore) SaveTodos(ctx context.Context, todos []model.Todo) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM todos"); err != nil {
		return fmt.Errorf("clearing todos: %w", err)
	}

	if len(todos) > 0 {
		stmt, err := tx.PrepareNamedContext(ctx, `
			INSERT INTO todos (id, title, note, end_at, url, completed, position)
			VALUES (:id, :title, :note, :end_at, :url, :completed, :position)`)
		if err != nil {
			return fmt.Errorf("preparing insert statement: %w", err)
		}
		defer stmt.Close()

		for i, t := range todos {
			if _, err := stmt.ExecContext(ctx, toRow(t, i)); err != nil {
				return fmt.Errorf("inserting todo %s: %w", t.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing todos: %w", err)
	}
	return nil
}

// LoadPreferences returns the stored preferences, or the defaults when
// none are stored.
func (s *SQLiteStore) LoadPreferences(ctx context.Context) (model.Preferences, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw, "SELECT value FROM preferences WHERE key = ?", PreferencesKey)
	if errors.Is(err, sql.ErrNoRows) {
		return s.opts.defaults, nil
	}
	if err != nil {
		return model.Preferences{}, fmt.Errorf("reading preferences: %w", err)
	}

	p := s.opts.defaults
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return model.Preferences{}, fmt.Errorf("decoding preferences: %w", err)
	}
	return p.Normalize(), nil
}

// SavePreferences upserts the preferences under PreferencesKey.
func (s *SQLiteStore) SavePreferences(ctx context.Context, p model.Preferences) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		PreferencesKey, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

// boolToInt converts a Go bool to an SQLite integer (0 or 1).
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
