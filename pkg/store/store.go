// Package store persists mind maps to a local sqlite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tessarin/mindcanvas/pkg/model"
)

// Store handles mind map persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the map database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		kind TEXT NOT NULL,
		language TEXT NOT NULL DEFAULT 'zh',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS nodes (
		id TEXT PRIMARY KEY,
		map_id TEXT NOT NULL REFERENCES maps(id) ON DELETE CASCADE,
		parent_id TEXT,
		text TEXT NOT NULL,
		position INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_nodes_map_id ON nodes(map_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveMap writes a map and all its nodes, replacing any previous version.
// The map's UpdatedAt is bumped to now.
func (s *Store) SaveMap(m *model.Map) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid map: %w", err)
	}
	m.UpdatedAt = time.Now()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO maps (id, title, kind, language, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			kind = excluded.kind,
			language = excluded.language,
			updated_at = excluded.updated_at
	`, m.ID, m.Title, string(m.Kind), m.Language, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save map row: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM nodes WHERE map_id = ?`, m.ID); err != nil {
		return fmt.Errorf("clear old nodes: %w", err)
	}

	insert, err := tx.Prepare(`
		INSERT INTO nodes (id, map_id, parent_id, text, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare node insert: %w", err)
	}
	defer insert.Close()

	for _, n := range m.Nodes {
		parent := sql.NullString{String: n.ParentID, Valid: n.ParentID != ""}
		if _, err := insert.Exec(n.ID, m.ID, parent, n.Text, n.Order, n.CreatedAt, n.UpdatedAt); err != nil {
			return fmt.Errorf("save node %s: %w", n.ID, err)
		}
	}

	return tx.Commit()
}

// LoadMap reads a map and its nodes. Stored maps that fail validation are
// reported as errors rather than returned broken.
func (s *Store) LoadMap(id string) (*model.Map, error) {
	m := &model.Map{}
	var kind string
	err := s.db.QueryRow(`
		SELECT id, title, kind, language, created_at, updated_at
		FROM maps WHERE id = ?
	`, id).Scan(&m.ID, &m.Title, &kind, &m.Language, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", id, err)
	}
	m.Kind = model.MapKind(kind)

	rows, err := s.db.Query(`
		SELECT id, parent_id, text, position, created_at, updated_at
		FROM nodes WHERE map_id = ?
		ORDER BY position, created_at
	`, id)
	if err != nil {
		return nil, fmt.Errorf("load nodes for %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		n := &model.Node{}
		var parent sql.NullString
		if err := rows.Scan(&n.ID, &parent, &n.Text, &n.Order, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan node: %w", err)
		}
		n.ParentID = parent.String
		m.Nodes = append(m.Nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("stored map %s is corrupt: %w", id, err)
	}
	return m, nil
}

// MapInfo summarizes a stored map for pickers.
type MapInfo struct {
	ID        string
	Title     string
	Kind      model.MapKind
	NodeCount int
	UpdatedAt time.Time
}

// ListMaps returns all stored maps, most recently updated first.
func (s *Store) ListMaps() ([]MapInfo, error) {
	rows, err := s.db.Query(`
		SELECT m.id, m.title, m.kind, COUNT(n.id), m.updated_at
		FROM maps m LEFT JOIN nodes n ON n.map_id = m.id
		GROUP BY m.id
		ORDER BY m.updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list maps: %w", err)
	}
	defer rows.Close()

	var infos []MapInfo
	for rows.Next() {
		var info MapInfo
		var kind string
		if err := rows.Scan(&info.ID, &info.Title, &kind, &info.NodeCount, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan map info: %w", err)
		}
		info.Kind = model.MapKind(kind)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteMap removes a map and, via cascade, all its nodes.
func (s *Store) DeleteMap(id string) error {
	_, err := s.db.Exec(`DELETE FROM maps WHERE id = ?`, id)
	return err
}

// LatestMapID returns the most recently updated map's ID, or "" when the
// store is empty.
func (s *Store) LatestMapID() (string, error) {
	var id string
	err := s.db.QueryRow(`SELECT id FROM maps ORDER BY updated_at DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("find latest map: %w", err)
	}
	return id, nil
}
