package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tasklist/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the list in a private in-memory SQLite database. The
// database lives exactly as long as the store; Close discards it.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens a fresh in-memory database and creates the schema.
func OpenSQLiteStore(ctx context.Context) (*SQLiteStore, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is its own database, so pin one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`PRAGMA foreign_keys=ON;`,
		`CREATE TABLE IF NOT EXISTS tasks (
			seq  INTEGER PRIMARY KEY AUTOINCREMENT,
			id   TEXT NOT NULL UNIQUE,
			text TEXT NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("sqlite migrate: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, text FROM tasks ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Text); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Insert(ctx context.Context, t model.Task) error {
	if _, err := s.db.ExecContext(ctx, `INSERT INTO tasks(id, text) VALUES(?, ?)`, t.ID, t.Text); err != nil {
		return fmt.Errorf("insert %s: %w", t.ID, err)
	}
	return nil
}

func (s *SQLiteStore) Update(ctx context.Context, t model.Task) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET text = ? WHERE id = ?`, t.Text, t.ID)
	if err != nil {
		return fmt.Errorf("update %s: %w", t.ID, err)
	}
	return requireOneRow(res, "update", t.ID)
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	return requireOneRow(res, "delete", id)
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func requireOneRow(res sql.Result, op, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", op, id, ErrTaskNotFound)
	}
	if n > 1 {
		return errors.New(op + " " + id + ": more than one row affected")
	}
	return nil
}
