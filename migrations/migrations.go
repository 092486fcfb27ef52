package migrations

import (
	"database/sql"
	"time"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE
	);`,
	`CREATE TABLE IF NOT EXISTS classes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		subject_id INT NOT NULL,
		FOREIGN KEY (subject_id) REFERENCES subjects(id)
	);`,
	`CREATE TABLE IF NOT EXISTS students (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS student_classes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		student_id INT NOT NULL,
		class_id INT NOT NULL,
		FOREIGN KEY (student_id) REFERENCES students(id),
		FOREIGN KEY (class_id) REFERENCES classes(id)
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	);`,
}

// AutoMigrate creates the schema if it does not exist. Tables are
// created in foreign-key order; each statement is retried.
func AutoMigrate(retries int, db *sql.DB) error {
	for _, query := range tables {
		_, err := db.Exec(query)
		for i := 0; err != nil && i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SeedUser inserts a login user if the username is not taken. The
// password must already be hashed.
func SeedUser(db *sql.DB, username, passwordHash string) error {
	query := `INSERT IGNORE INTO users (username, password) VALUES (?, ?)`
	_, err := db.Exec(query, username, passwordHash)
	return err
}
