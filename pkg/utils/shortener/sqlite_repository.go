package shortener

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	_ "modernc.org/sqlite"                               // Local SQLite driver
)

// SQLRepository keeps links in SQLite, or in Turso when the URL is libsql:// or wss://.
type SQLRepository struct {
	db *sql.DB
}

func DriverFor(dbURL string) string {
	if strings.HasPrefix(dbURL, "libsql://") || strings.HasPrefix(dbURL, "wss://") {
		return "libsql"
	}
	return "sqlite"
}

func NewSQLRepository(ctx context.Context, dbURL string) (*SQLRepository, error) {
	db, err := sql.Open(DriverFor(dbURL), dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &SQLRepository{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS links (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		short_code TEXT NOT NULL UNIQUE,
		original_url TEXT NOT NULL,
		clicks INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_links_original_url ON links(original_url);
	`
	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *SQLRepository) Create(ctx context.Context, link *Link) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO links (short_code, original_url, clicks, created_at) VALUES (?, ?, 0, ?)`,
		link.ShortCode, link.OriginalURL, link.CreatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	link.ID = id
	return nil
}

func (r *SQLRepository) GetByShortCode(ctx context.Context, code string) (*Link, error) {
	return r.getOne(ctx, `SELECT id, short_code, original_url, clicks, created_at FROM links WHERE short_code = ?`, code)
}

func (r *SQLRepository) GetByOriginalURL(ctx context.Context, originalURL string) (*Link, error) {
	return r.getOne(ctx, `SELECT id, short_code, original_url, clicks, created_at FROM links WHERE original_url = ? ORDER BY id LIMIT 1`, originalURL)
}

// getOne returns nil, nil when no row matches.
func (r *SQLRepository) getOne(ctx context.Context, query string, arg interface{}) (*Link, error) {
	var link Link
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&link.ID, &link.ShortCode, &link.OriginalURL, &link.Clicks, &link.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *SQLRepository) IncrementClicks(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE links SET clicks = clicks + 1 WHERE id = ?`, id)
	return err
}

func (r *SQLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLRepository) Close() error {
	return r.db.Close()
}
