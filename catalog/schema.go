package catalog

import (
	"context"
	"database/sql"
)

const itemsSchema = `
CREATE TABLE IF NOT EXISTS items (
    position INTEGER PRIMARY KEY,
    title    TEXT NOT NULL,
    tags     TEXT
);
`

// EnsureSchema creates the items table in the provided database if it does
// not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, itemsSchema)
	return err
}
