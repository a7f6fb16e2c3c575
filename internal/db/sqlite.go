package db

import (
	"database/sql"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

// InitSQLite opens (or creates) the SQLite database at path and ensures the schema.
func InitSQLite(path string) *sql.DB {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := MigrateSQLite(db); err != nil {
		log.Fatalf("Error creating schema: %v", err)
	}

	return db
}

// MigrateSQLite creates the tables if they do not exist. Exported so tests
// can bootstrap an in-memory database.
func MigrateSQLite(db *sql.DB) error {
	createUsersTable := `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	createNotesTable := `CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		text TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		author_id INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(author_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	if _, err := db.Exec(createUsersTable); err != nil {
		return err
	}
	if _, err := db.Exec(createNotesTable); err != nil {
		return err
	}
	return nil
}
