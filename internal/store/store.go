// Package store handles SQLite persistence of imported word lists.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/typeline/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrNotFound is returned when a word list name is not in the store.
var ErrNotFound = errors.New("word list not found")

// Store wraps SQLite access for word lists.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS word_lists (
			name TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			imported_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS words (
			list_name TEXT NOT NULL,
			position INTEGER NOT NULL,
			word TEXT NOT NULL,
			PRIMARY KEY (list_name, position)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ImportList stores words under name, replacing any list with that name.
func (s *Store) ImportList(ctx context.Context, name, source string, words []string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM words WHERE list_name = ?`, name); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO word_lists (name, source, imported_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET source = excluded.source, imported_at = excluded.imported_at`,
		name, source, time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (list_name, position, word) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	for i, word := range words {
		if _, err = stmt.ExecContext(ctx, name, i, word); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListLists returns every imported list with its word count, ordered by name.
func (s *Store) ListLists(ctx context.Context) ([]model.WordListInfo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT l.name, l.source, l.imported_at, COUNT(w.word)
		FROM word_lists l
		LEFT JOIN words w ON w.list_name = l.name
		GROUP BY l.name
		ORDER BY l.name ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.WordListInfo
	for rows.Next() {
		var info model.WordListInfo
		var importedAt string
		if err := rows.Scan(&info.Name, &info.Source, &importedAt, &info.Words); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, importedAt)
		if err != nil {
			return nil, err
		}
		info.ImportedAt = parsed
		result = append(result, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// LoadWords returns the words of a list whose length is in [minLen, maxLen),
// in import order.
func (s *Store) LoadWords(ctx context.Context, name string, minLen, maxLen int) ([]string, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM word_lists WHERE name = ?`, name).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT word FROM words
		WHERE list_name = ? AND length(word) >= ? AND length(word) < ?
		ORDER BY position ASC`, name, minLen, maxLen)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
