package versioned

import (
	"context"
	"database/sql"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/delver-sim/internal/errors"
	"github.com/KirkDiggler/delver-sim/internal/pkg/clock"
	"github.com/KirkDiggler/delver-sim/internal/repositories/versioned/migrations"
)

// SQLiteConfig contains configuration for the SQLite backend
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("storage path is required")
	}
	return nil
}

// SQLiteBackend keeps revisions as rows of the entity_versions table
type SQLiteBackend struct {
	db    *sql.DB
	clock clock.Clock
}

// OpenSQLite opens the database at cfg.Path and applies the schema
func OpenSQLite(cfg *SQLiteConfig) (*SQLiteBackend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "open sqlite db")
	}
	// sqlite allows a single writer; concurrent saves queue on one connection
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "ping sqlite db")
	}
	if err := applyMigrations(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteBackend{db: db, clock: c}, nil
}

func applyMigrations(db *sql.DB, fsys fs.FS) error {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return errors.Wrap(err, "list migrations")
	}
	sort.Strings(names)
	for _, name := range names {
		stmt, err := fs.ReadFile(fsys, name)
		if err != nil {
			return errors.Wrapf(err, "read migration %s", name)
		}
		if _, err := db.Exec(string(stmt)); err != nil {
			return errors.Wrapf(err, "run migration %s", name)
		}
	}
	return nil
}

// Close closes the database handle
func (b *SQLiteBackend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Append implements Backend
func (b *SQLiteBackend) Append(ctx context.Context, table, id string, data []byte) (int, error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var current int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM entity_versions WHERE entity_table = ? AND entity_id = ?`,
		table, id,
	).Scan(&current)
	if err != nil {
		return 0, errors.Wrap(err, "read current version")
	}

	version := current + 1
	_, err = tx.ExecContext(ctx,
		`INSERT INTO entity_versions (entity_table, entity_id, version, data, created_at) VALUES (?, ?, ?, ?, ?)`,
		table, id, version, data, b.clock.Now().UTC().UnixMilli(),
	)
	if err != nil {
		if isConstraintViolation(err) {
			return 0, errors.WrapWithCode(err, errors.CodeAborted, "concurrent revision of "+table+" "+id)
		}
		return 0, errors.Wrap(err, "insert revision")
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeUnavailable, "commit revision")
	}
	return version, nil
}

// Latest implements Backend
func (b *SQLiteBackend) Latest(ctx context.Context, table, id string) ([]byte, int, error) {
	var (
		data    []byte
		version int
	)
	err := b.db.QueryRowContext(ctx,
		`SELECT data, version FROM entity_versions
		 WHERE entity_table = ? AND entity_id = ?
		 ORDER BY version DESC LIMIT 1`,
		table, id,
	).Scan(&data, &version)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, 0, errors.NotFoundf("%s %s has no revisions", table, id)
		}
		return nil, 0, errors.Wrap(err, "read latest revision")
	}
	return data, version, nil
}

// Versions implements Backend
func (b *SQLiteBackend) Versions(ctx context.Context, table, id string) (int, error) {
	var n int
	err := b.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entity_versions WHERE entity_table = ? AND entity_id = ?`,
		table, id,
	).Scan(&n)
	if err != nil {
		return 0, errors.Wrap(err, "count revisions")
	}
	return n, nil
}

func isConstraintViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}
