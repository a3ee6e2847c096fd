// Package patternstore is a small sqlite-backed catalogue of named RLE
// patterns, grounded on gloudx-ues-lite's sqlite-backed stores. It persists
// pattern *source text* only — never node-table state, which spec §1
// explicitly keeps out of scope.
package patternstore

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hashicorp/go-uuid"
	"github.com/kestrelsim/hashlife/pkg/hlerr"
)

// Pattern is one catalogued entry.
type Pattern struct {
	ID          string
	Name        string
	Description string
	RLE         string
	CreatedAt   time.Time
}

// Store wraps a sqlite database holding the pattern catalogue.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// ensures the patterns table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, hlerr.Wrap(hlerr.CodeIO, "failed to open pattern store", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS patterns (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	rle TEXT NOT NULL,
	created_at INTEGER NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, hlerr.Wrap(hlerr.CodeIO, "failed to initialize pattern store schema", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts a new pattern, generating its ID, and returns the stored
// record.
func (s *Store) Put(name, description, rle string) (*Pattern, error) {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return nil, hlerr.Wrap(hlerr.CodeIO, "failed to generate pattern id", err)
	}

	p := &Pattern{
		ID:          id,
		Name:        name,
		Description: description,
		RLE:         rle,
		CreatedAt:   time.Now().UTC(),
	}

	_, err = s.db.Exec(
		`INSERT INTO patterns (id, name, description, rle, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.RLE, p.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, hlerr.Wrap(hlerr.CodeIO, "failed to insert pattern", err)
	}
	return p, nil
}

// Get fetches a pattern by ID or name.
func (s *Store) Get(idOrName string) (*Pattern, error) {
	row := s.db.QueryRow(
		`SELECT id, name, description, rle, created_at FROM patterns WHERE id = ? OR name = ?`,
		idOrName, idOrName,
	)

	var p Pattern
	var createdAt int64
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.RLE, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, hlerr.Newf(hlerr.CodeNotFound, "no pattern named or with id %q", idOrName)
		}
		return nil, hlerr.Wrap(hlerr.CodeIO, "failed to fetch pattern", err)
	}
	p.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &p, nil
}

// List returns all catalogued patterns ordered by name.
func (s *Store) List() ([]Pattern, error) {
	rows, err := s.db.Query(`SELECT id, name, description, rle, created_at FROM patterns ORDER BY name`)
	if err != nil {
		return nil, hlerr.Wrap(hlerr.CodeIO, "failed to list patterns", err)
	}
	defer rows.Close()

	var out []Pattern
	for rows.Next() {
		var p Pattern
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.RLE, &createdAt); err != nil {
			return nil, hlerr.Wrap(hlerr.CodeIO, "failed to scan pattern row", err)
		}
		p.CreatedAt = time.Unix(createdAt, 0).UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes a pattern by ID or name.
func (s *Store) Delete(idOrName string) error {
	res, err := s.db.Exec(`DELETE FROM patterns WHERE id = ? OR name = ?`, idOrName, idOrName)
	if err != nil {
		return hlerr.Wrap(hlerr.CodeIO, "failed to delete pattern", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return hlerr.Wrap(hlerr.CodeIO, "failed to confirm pattern deletion", err)
	}
	if n == 0 {
		return hlerr.Newf(hlerr.CodeNotFound, "no pattern named or with id %q", idOrName)
	}
	return nil
}
