// Package store keeps batch runs and their results in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection.
type DB struct {
	conn *sqlx.DB
}

// Run is one invocation of the batch evaluator.
type Run struct {
	ID        string `db:"id"`
	Config    string `db:"config"`     // job file as read
	CreatedAt int64  `db:"created_at"` // unix nanoseconds
	Count     int    `db:"count"`
}

// ResultRow is one evaluation outcome. Re/Im are NULL for non-finite values.
type ResultRow struct {
	RunID    string          `db:"run_id"`
	Idx      int             `db:"idx"`
	Name     string          `db:"name"`
	Op       string          `db:"op"`
	Re       sql.NullFloat64 `db:"re"`
	Im       sql.NullFloat64 `db:"im"`
	Category string          `db:"category"`
	Err      string          `db:"err"`
}

// NewRunID returns a fresh run identifier.
func NewRunID() string { return uuid.NewString() }

// NewRun stamps a run with a new id and the current time.
func NewRun(config string, count int) Run {
	return Run{ID: NewRunID(), Config: config, CreatedAt: time.Now().UnixNano(), Count: count}
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		config TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL REFERENCES runs(id),
		idx INTEGER NOT NULL,
		name TEXT NOT NULL,
		op TEXT NOT NULL,
		re REAL,
		im REAL,
		category TEXT NOT NULL,
		err TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, idx)
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun stores a run and all of its rows in one transaction.
func (db *DB) SaveRun(ctx context.Context, run Run, rows []ResultRow) error {
	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx,
		`INSERT INTO runs (id, config, created_at, count) VALUES (:id, :config, :created_at, :count)`, run); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	for i := range rows {
		rows[i].RunID = run.ID
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO results (run_id, idx, name, op, re, im, category, err)
			 VALUES (:run_id, :idx, :name, :op, :re, :im, :category, :err)`, rows[i]); err != nil {
			return fmt.Errorf("insert result %d: %w", rows[i].Idx, err)
		}
	}
	return tx.Commit()
}

// Runs lists stored runs, oldest first.
func (db *DB) Runs(ctx context.Context) ([]Run, error) {
	var runs []Run
	err := db.conn.SelectContext(ctx, &runs, `SELECT id, config, created_at, count FROM runs ORDER BY created_at, id`)
	return runs, err
}

// Results loads the rows of one run in evaluation order.
func (db *DB) Results(ctx context.Context, runID string) ([]ResultRow, error) {
	var rows []ResultRow
	err := db.conn.SelectContext(ctx, &rows,
		`SELECT run_id, idx, name, op, re, im, category, err FROM results WHERE run_id = ? ORDER BY idx`, runID)
	return rows, err
}
