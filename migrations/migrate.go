// Package migrations embeds the goose schema migrations for both sides of
// learnsync: the client's SQLite offline stores under client/ and the
// server's PostgreSQL tables under server/.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

// Up applies all pending migrations from the named directory ("client" or
// "server") using the given goose dialect ("sqlite3" or "pgx").
func Up(db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
