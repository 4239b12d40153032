package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pthana/linkshort/pkg/core/domain"
	"github.com/pthana/linkshort/pkg/ports"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at dbURL and applies migrations.
// A libsql:// (or wss://) URL selects the remote Turso driver; anything else
// is treated as a local SQLite path/DSN.
func NewSQLiteRepository(dbURL string) (*SQLiteRepository, error) {
	driver := "sqlite"
	if strings.HasPrefix(dbURL, "libsql://") || strings.HasPrefix(dbURL, "wss://") {
		driver = "libsql"
	}

	db, err := sql.Open(driver, dbURL)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		// A single connection serializes writes, which is what makes the
		// concurrent-increment guarantee hold without app-level locking.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		_, _ = db.Exec("PRAGMA busy_timeout = 5000;")
		_, _ = db.Exec("PRAGMA journal_mode = WAL;")
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		original_url TEXT NOT NULL,
		short_code TEXT NOT NULL DEFAULT '',
		click_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_links_short_code ON links(short_code) WHERE short_code <> '';
	CREATE INDEX IF NOT EXISTS idx_links_created_at ON links(created_at);
	CREATE INDEX IF NOT EXISTS idx_links_updated_at ON links(updated_at);
	`
	_, err := db.Exec(query)
	return err
}

func (r *SQLiteRepository) Create(ctx context.Context, link *domain.Link) error {
	query := `INSERT INTO links (original_url, short_code, click_count, created_at, updated_at)
			  VALUES (?, '', 0, ?, ?)`

	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, link.OriginalURL, now, now)
	if err != nil {
		return fmt.Errorf("insert link: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert link: %w", err)
	}

	link.ID = id
	link.ClickCount = 0
	link.CreatedAt = now
	link.UpdatedAt = now
	return nil
}

func (r *SQLiteRepository) SetShortCode(ctx context.Context, id int64, code string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE links SET short_code = ? WHERE id = ?`, code, id)
	if err != nil {
		return fmt.Errorf("set short code: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) GetByShortCode(ctx context.Context, code string) (*domain.Link, error) {
	query := `SELECT id, original_url, short_code, click_count, created_at, updated_at
			  FROM links WHERE short_code = ?`

	var link domain.Link
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&link.ID, &link.OriginalURL, &link.ShortCode, &link.ClickCount,
		&link.CreatedAt, &link.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get link by code: %w", err)
	}
	return &link, nil
}

// IncrementClick is a single atomic UPDATE so that concurrent redirects to the
// same code never lose an increment.
func (r *SQLiteRepository) IncrementClick(ctx context.Context, code string) (*domain.Link, error) {
	query := `UPDATE links SET click_count = click_count + 1, updated_at = ?
			  WHERE short_code = ?
			  RETURNING id, original_url, short_code, click_count, created_at, updated_at`

	var link domain.Link
	err := r.db.QueryRowContext(ctx, query, time.Now().UTC(), code).Scan(
		&link.ID, &link.OriginalURL, &link.ShortCode, &link.ClickCount,
		&link.CreatedAt, &link.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("increment click: %w", err)
	}
	return &link, nil
}

func (r *SQLiteRepository) List(ctx context.Context, limit, offset int) ([]domain.Link, error) {
	query := `SELECT id, original_url, short_code, click_count, created_at, updated_at
			  FROM links WHERE short_code <> ''
			  ORDER BY created_at ASC, id ASC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.ID, &l.OriginalURL, &l.ShortCode, &l.ClickCount, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// DeleteInactive is one bulk DELETE, not delete-then-recount, so a concurrent
// increment that refreshes updated_at mid-scan either saves the row or loses
// the race cleanly.
func (r *SQLiteRepository) DeleteInactive(ctx context.Context, olderThan time.Duration) (int64, error) {
	threshold := time.Now().UTC().Add(-olderThan)
	res, err := r.db.ExecContext(ctx, `DELETE FROM links WHERE updated_at < ?`, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete inactive links: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteRepository) Close() error { return r.db.Close() }

// Ensure interface compliance
var _ ports.LinkRepository = (*SQLiteRepository)(nil)
