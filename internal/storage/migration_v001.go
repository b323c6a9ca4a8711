package storage

import "database/sql"

// migrateV001 creates the two profile tables. Every statement uses
// IF NOT EXISTS so a half-applied database can be migrated again.
func migrateV001(tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS history (
			address   TEXT NOT NULL,
			title     TEXT NOT NULL DEFAULT '',
			timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS bookmarks (
			address TEXT PRIMARY KEY,
			title   TEXT NOT NULL DEFAULT '',
			folder  TEXT NOT NULL DEFAULT ''
		)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func migrateV002(tx *sql.Tx) error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_history_address   ON history(address)`,
		`CREATE INDEX IF NOT EXISTS idx_history_timestamp ON history(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_bookmarks_folder  ON bookmarks(folder)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
