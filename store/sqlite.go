package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	k BLOB PRIMARY KEY,
	v BLOB NOT NULL
) WITHOUT ROWID`

// SQLiteState keeps the key space in a single kv table.
type SQLiteState struct {
	sqlDB *sql.DB
}

// OpenSQLite opens (and creates) the database at path. ":memory:" gives a private
// in-memory database.
func OpenSQLite(path string) (*SQLiteState, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteState{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *SQLiteState) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SQLiteState) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := s.sqlDB.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, []byte(key)).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get key: %w", err)
	}
	return v, true, nil
}

func (s *SQLiteState) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if _, err := s.sqlDB.ExecContext(ctx, upsertSQL, []byte(key), nonNil(value)); err != nil {
		return fmt.Errorf("set key: %w", err)
	}
	return nil
}

func (s *SQLiteState) Delete(ctx context.Context, key string) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM kv WHERE k = ?`, []byte(key)); err != nil {
		return fmt.Errorf("delete key: %w", err)
	}
	return nil
}

func (s *SQLiteState) Keys(ctx context.Context, prefix string) ([]string, error) {
	var (
		rows *sql.Rows
		err  error
	)
	end := prefixEnd(prefix)
	switch {
	case prefix == "":
		rows, err = s.sqlDB.QueryContext(ctx, `SELECT k FROM kv ORDER BY k`)
	case end == "":
		rows, err = s.sqlDB.QueryContext(ctx, `SELECT k FROM kv WHERE k >= ? ORDER BY k`, []byte(prefix))
	default:
		rows, err = s.sqlDB.QueryContext(ctx, `SELECT k FROM kv WHERE k >= ? AND k < ? ORDER BY k`,
			[]byte(prefix), []byte(end))
	}
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var k []byte
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		out = append(out, string(k))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return out, nil
}

func (s *SQLiteState) Apply(ctx context.Context, b *Batch) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	for _, o := range b.ops {
		if o.key == "" {
			_ = tx.Rollback()
			return ErrEmptyKey
		}
		if o.del {
			_, err = tx.ExecContext(ctx, `DELETE FROM kv WHERE k = ?`, []byte(o.key))
		} else {
			_, err = tx.ExecContext(ctx, upsertSQL, []byte(o.key), nonNil(o.value))
		}
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply batch: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

const upsertSQL = `INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`

// nonNil keeps empty values from being written as NULL.
func nonNil(v []byte) []byte {
	if v == nil {
		return []byte{}
	}
	return v
}
