package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"
)

// InitMySQL connects to MySQL and ensures the schema.
func InitMySQL(user, password, host, dbName string) *sql.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", user, password, host, dbName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL database: %v", err)
	}

	if err := db.Ping(); err != nil {
		log.Fatalf("MySQL ping failed: %v", err)
	}

	if err := MigrateMySQL(db); err != nil {
		log.Fatalf("Error creating schema: %v", err)
	}

	return db
}

// MigrateMySQL creates the tables if they do not exist.
func MigrateMySQL(db *sql.DB) error {
	createUsersTable := `CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(150) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB;`

	createNotesTable := `CREATE TABLE IF NOT EXISTS notes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title TEXT NOT NULL,
		text TEXT NOT NULL,
		slug VARCHAR(100) NOT NULL UNIQUE,
		author_id INT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		FOREIGN KEY (author_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB;`

	if _, err := db.Exec(createUsersTable); err != nil {
		return err
	}
	if _, err := db.Exec(createNotesTable); err != nil {
		return err
	}
	return nil
}
