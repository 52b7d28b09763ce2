package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Store keeps the raw catalog rows in a SQLite database. It never stores
// derived feature vectors.
type Store struct {
	db *sql.DB
}

// NewStore creates a SQLite-backed Store and ensures the items schema exists.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("catalog: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("catalog: ensure schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Import replaces the stored catalog with cat in a single transaction.
func (s *Store) Import(ctx context.Context, cat *Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("catalog: clear items: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO items(position, title, tags) VALUES(?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 0; i < cat.Len(); i++ {
		it := cat.Item(i)
		if _, err := stmt.ExecContext(ctx, it.Index, it.Title, it.Tags); err != nil {
			return fmt.Errorf("catalog: insert item %d: %w", it.Index, err)
		}
	}
	return tx.Commit()
}

// Load reads all items ordered by position. NULL tags load as empty strings.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT title, tags FROM items ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var title string
		var tags sql.NullString
		if err := rows.Scan(&title, &tags); err != nil {
			return nil, err
		}
		items = append(items, Item{Title: title, Tags: tags.String})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return New(items), nil
}

// Count returns the number of stored items.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM items`).Scan(&n)
	return n, err
}
