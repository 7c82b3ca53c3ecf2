package leaderboard

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SchemaVersion is the latest schema supported by the migrator.
const SchemaVersion = 1

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open leaderboard db: %w", err)
	}
	return db, nil
}

// Migrate ensures the schema exists and is current.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`)
	if err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current)
	if err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}
	if current >= SchemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrate: begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			day INTEGER NOT NULL,
			category TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate: create entries table: %w", err)
	}
	_, err = tx.Exec(`CREATE INDEX IF NOT EXISTS idx_entries_category_day ON entries (category, day);`)
	if err != nil {
		return fmt.Errorf("migrate: create entries index: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?);`, SchemaVersion)
	if err != nil {
		return fmt.Errorf("migrate: record version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate: commit: %w", err)
	}
	return nil
}

// SQLiteRepo is the durable Repository backed by SQLite.
type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepo migrates the schema and returns the repository.
func NewSQLiteRepo(db *sql.DB) (*SQLiteRepo, error) {
	if db == nil {
		return nil, fmt.Errorf("leaderboard: db is nil")
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return &SQLiteRepo{db: db}, nil
}

func (r *SQLiteRepo) Append(ctx context.Context, e Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO entries (name, day, category) VALUES (?, ?, ?);`,
		e.Name, e.Day, string(e.Category))
	if err != nil {
		return fmt.Errorf("leaderboard append: %w", err)
	}
	return nil
}

func (r *SQLiteRepo) Top(ctx context.Context, cat Category, limit int) ([]Entry, error) {
	order := "DESC"
	if cat == CategoryGood {
		order = "ASC"
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT name, day, category FROM entries WHERE category = ? ORDER BY day `+order+` LIMIT ?;`,
		string(cat), limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard top: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var category string
		if err := rows.Scan(&e.Name, &e.Day, &category); err != nil {
			return nil, fmt.Errorf("leaderboard top: scan: %w", err)
		}
		e.Category = Category(category)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leaderboard top: rows: %w", err)
	}
	return entries, nil
}
