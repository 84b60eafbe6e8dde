package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/serroba/linkbox/internal/shortener"
	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	_ "modernc.org/sqlite"                               // Local SQLite driver
)

// SQLiteStore is an embedded SQLite (or remote libSQL) implementation of shortener.Repository.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database at dsn and creates the schema if needed.
// libsql:// and wss:// DSNs are served by the libSQL driver.
func NewSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	driverName := "sqlite"
	if strings.HasPrefix(dsn, "libsql://") || strings.HasPrefix(dsn, "wss://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	// A single local connection serializes writers and keeps :memory: databases shared.
	if driverName == "sqlite" {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS short_links (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		target_url TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	`

	_, err := db.ExecContext(ctx, query)

	return err
}

func (s *SQLiteStore) Insert(ctx context.Context, link *shortener.ShortLink) error {
	id := link.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := `
		INSERT INTO short_links (id, code, target_url, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (code) DO NOTHING
	`

	res, err := s.db.ExecContext(ctx, query,
		id.String(),
		string(link.Code),
		link.TargetURL,
		link.CreatedAt.UnixNano(),
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return shortener.ErrDuplicateCode
	}

	link.ID = id

	return nil
}

func (s *SQLiteStore) FindByCode(ctx context.Context, code shortener.Code) (*shortener.ShortLink, error) {
	query := `
		SELECT id, code, target_url, created_at
		FROM short_links
		WHERE code = ?
	`

	var (
		id, storedCode, targetURL string
		createdAt                 int64
	)

	err := s.db.QueryRowContext(ctx, query, string(code)).Scan(&id, &storedCode, &targetURL, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	return &shortener.ShortLink{
		ID:        parsedID,
		Code:      shortener.Code(storedCode),
		TargetURL: targetURL,
		CreatedAt: time.Unix(0, createdAt).UTC(),
	}, nil
}

// Ping checks database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Shutdown closes the database.
func (s *SQLiteStore) Shutdown() error {
	return s.db.Close()
}

var _ shortener.Repository = (*SQLiteStore)(nil)
