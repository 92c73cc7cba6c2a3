package checklist

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wristlist/internal/errors"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore is a write-through store: items are cached in memory for the
// view's per-draw lookups and every mutation is committed to SQLite first.
type SQLiteStore struct {
	path   string
	limits Limits
	db     *sql.DB
	keys   []string
	items  []Item
	added  []time.Time
}

// NewSQLiteStore returns a store backed by the database at path. The
// database is opened by Init.
func NewSQLiteStore(path string, limits Limits) *SQLiteStore {
	return &SQLiteStore{path: strings.TrimSpace(path), limits: limits}
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Init() error {
	if s.db != nil {
		return nil
	}
	if s.path == "" {
		return errors.NewStoreError("sqlite db path is empty", "init", errors.StoreOperationFailed, nil)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.NewStoreError("create db directory", "init", errors.StoreOperationFailed, err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return errors.NewStoreError("open sqlite", "init", errors.StoreOperationFailed, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return errors.NewStoreError("exec "+p, "init", errors.StoreOperationFailed, err)
		}
	}

	s.db = db
	if err := s.ensureSchema(); err != nil {
		s.close()
		return errors.NewStoreError("ensure schema", "init", errors.StoreOperationFailed, err)
	}
	if err := s.Reload(); err != nil {
		s.close()
		return err
	}
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS items (
		key        TEXT PRIMARY KEY,
		seq        INTEGER NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		checked    INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Deinit closes the database and drops the cache.
func (s *SQLiteStore) Deinit() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.keys = nil
	s.items = nil
	s.added = nil
	if err != nil {
		return errors.NewStoreError("close sqlite", "deinit", errors.StoreOperationFailed, err)
	}
	return nil
}

func (s *SQLiteStore) close() {
	_ = s.db.Close()
	s.db = nil
}

// Reload refreshes the cache from the database, picking up writes made by
// other processes.
func (s *SQLiteStore) Reload() error {
	if s.db == nil {
		return errors.ErrStoreNotInitialized
	}
	rows, err := s.db.Query(`SELECT key, name, checked, created_at FROM items ORDER BY seq ASC`)
	if err != nil {
		return errors.NewStoreError("query items", "reload", errors.StoreOperationFailed, err)
	}
	defer rows.Close()

	var keys []string
	var items []Item
	var added []time.Time
	for rows.Next() {
		var key, name, createdAt string
		var checked int
		if err := rows.Scan(&key, &name, &checked, &createdAt); err != nil {
			return errors.NewStoreError("scan item", "reload", errors.StoreOperationFailed, err)
		}
		// A malformed timestamp only loses the age, not the item
		ts, _ := time.Parse(time.RFC3339Nano, createdAt)
		keys = append(keys, key)
		items = append(items, Item{Name: name, IsChecked: checked != 0})
		added = append(added, ts)
	}
	if err := rows.Err(); err != nil {
		return errors.NewStoreError("iterate items", "reload", errors.StoreOperationFailed, err)
	}
	s.keys = keys
	s.items = items
	s.added = added
	return nil
}

func (s *SQLiteStore) ItemCount() int {
	return len(s.items)
}

func (s *SQLiteStore) CheckedCount() int {
	n := 0
	for _, it := range s.items {
		if it.IsChecked {
			n++
		}
	}
	return n
}

func (s *SQLiteStore) ItemByID(id int) (Item, error) {
	if id < 0 || id >= len(s.items) {
		return Item{}, errors.NewStoreError("checklist item not found", "item_by_id", errors.ItemNotFound, nil)
	}
	return s.items[id], nil
}

func (s *SQLiteStore) AddItem(name string) error {
	if s.db == nil {
		return errors.ErrStoreNotInitialized
	}
	item, err := newItem(name, len(s.items), s.limits)
	if err != nil {
		return err
	}

	key := uuid.NewString()
	now := time.Now().UTC()
	_, err = s.db.Exec(`
		INSERT INTO items (key, seq, name, checked, created_at)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM items), ?, 0, ?)`,
		key, item.Name, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return errors.NewStoreError("insert item", "add", errors.StoreOperationFailed, err)
	}
	s.keys = append(s.keys, key)
	s.items = append(s.items, item)
	s.added = append(s.added, now)
	return nil
}

// AddedAt returns when the item was added.
func (s *SQLiteStore) AddedAt(id int) (time.Time, error) {
	if id < 0 || id >= len(s.added) {
		return time.Time{}, errors.NewStoreError("checklist item not found", "added_at", errors.ItemNotFound, nil)
	}
	return s.added[id], nil
}

func (s *SQLiteStore) ToggleChecked(id int) error {
	if s.db == nil {
		return errors.ErrStoreNotInitialized
	}
	if id < 0 || id >= len(s.items) {
		return errors.NewStoreError("checklist item not found", "toggle", errors.ItemNotFound, nil)
	}
	checked := !s.items[id].IsChecked
	res, err := s.db.Exec(`UPDATE items SET checked = ? WHERE key = ?`, boolToInt(checked), s.keys[id])
	if err != nil {
		return errors.NewStoreError("update item", "toggle", errors.StoreOperationFailed, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.NewStoreError("rows affected", "toggle", errors.StoreOperationFailed, err)
	}
	if n == 0 {
		// Deleted by another writer since the last reload
		if err := s.Reload(); err != nil {
			return err
		}
		return errors.NewStoreError("checklist item was removed", "toggle", errors.ItemNotFound, nil)
	}
	s.items[id].IsChecked = checked
	return nil
}

func (s *SQLiteStore) DeleteCompleted() (int, error) {
	if s.db == nil {
		return 0, errors.ErrStoreNotInitialized
	}
	// Only the items this store shows as checked; another writer may have
	// checked more since the last reload.
	var keys []any
	for i, it := range s.items {
		if it.IsChecked {
			keys = append(keys, s.keys[i])
		}
	}
	var n int64
	if len(keys) > 0 {
		query := `DELETE FROM items WHERE checked = 1 AND key IN (?` + strings.Repeat(", ?", len(keys)-1) + `)`
		res, err := s.db.Exec(query, keys...)
		if err != nil {
			return 0, errors.NewStoreError("delete completed", "delete_completed", errors.StoreOperationFailed, err)
		}
		n, err = res.RowsAffected()
		if err != nil {
			return 0, errors.NewStoreError("rows affected", "delete_completed", errors.StoreOperationFailed, err)
		}
	}
	if err := s.Reload(); err != nil {
		return int(n), err
	}
	return int(n), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
