package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	// clientFoundRows=true -> UPDATE reports matched rows, not changed rows,
	// so a no-op update on an existing record is not mistaken for a miss
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the users table when it does not exist yet. The
// unique index on username backs the duplicate-registration check.
func EnsureSchema(db *sql.DB) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS users (
	id            CHAR(36)     NOT NULL,
	username      VARCHAR(191) NOT NULL,
	password_hash VARCHAR(100) NOT NULL,
	role          VARCHAR(16)  NOT NULL,
	full_name     VARCHAR(255) NOT NULL DEFAULT '',
	phone         VARCHAR(64)  NOT NULL DEFAULT '',
	email         VARCHAR(255) NOT NULL DEFAULT '',
	created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	PRIMARY KEY (id),
	UNIQUE KEY uq_users_username (username)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := db.ExecContext(ctx, ddl)
	return err
}
