package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Repository represents a data repository that interacts with the database
// and provides logging capabilities. It holds a reference to the database
// and a logger instance for logging operations.
type Repository struct {
	db  *sql.DB
	log *slog.Logger
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(ctx context.Context, log *slog.Logger, storagePath string) (*Repository, error) {
	// Open (or create if it doesn't exist) the database file.
	dtb, err := sql.Open("sqlite3", fmt.Sprintf("%s?_pragma=foreign_keys(1)", storagePath))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Check if the connection is actually established.
	if err = dtb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("unable to establish connection to database: %w", err)
	}

	// Perform the initial schema migration.
	if err = initSchema(ctx, dtb); err != nil {
		return nil, fmt.Errorf("DB schema initialization error: %w", err)
	}

	return &Repository{db: dtb, log: log}, nil
}

// NewForTest wraps an existing database handle, used by tests with sqlmock.
func NewForTest(dtb *sql.DB) *Repository {
	return &Repository{db: dtb, log: slog.Default()}
}

// initSchema creates the necessary tables and indexes if they don't already exist.
func initSchema(ctx context.Context, dtb *sql.DB) error {
	const migrationQuery = `
	CREATE TABLE IF NOT EXISTS websites (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL,
		base_url TEXT NOT NULL,
		country TEXT NOT NULL DEFAULT 'FR',
		currency TEXT NOT NULL DEFAULT 'EUR',
		scraping_config TEXT NOT NULL DEFAULT '{}',
		active INTEGER NOT NULL DEFAULT 1,
		last_scraped TIMESTAMP,
		error_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		category TEXT NOT NULL,
		brand TEXT NOT NULL,
		model TEXT NOT NULL,
		specifications TEXT NOT NULL DEFAULT '{}',
		best_price REAL,
		best_currency TEXT,
		best_website_id INTEGER,
		best_website_name TEXT,
		best_updated_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS prices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER NOT NULL REFERENCES products(id),
		website_id INTEGER NOT NULL REFERENCES websites(id),
		price REAL NOT NULL,
		currency TEXT NOT NULL,
		product_url TEXT NOT NULL DEFAULT '',
		availability TEXT NOT NULL DEFAULT 'unknown',
		condition TEXT NOT NULL DEFAULT 'new',
		shipping_cost REAL,
		seller TEXT NOT NULL DEFAULT '',
		scraped_at TIMESTAMP NOT NULL,
		raw_data TEXT NOT NULL DEFAULT '{}'
	);

	CREATE TABLE IF NOT EXISTS subscriptions (
		chat_id INTEGER PRIMARY KEY
	);

	CREATE INDEX IF NOT EXISTS idx_products_category_brand ON products(category, brand);
	CREATE INDEX IF NOT EXISTS idx_products_best_price ON products(best_price);
	CREATE INDEX IF NOT EXISTS idx_prices_product_scraped ON prices(product_id, scraped_at DESC);
	CREATE INDEX IF NOT EXISTS idx_prices_website_scraped ON prices(website_id, scraped_at DESC);
	`
	_, err := dtb.ExecContext(ctx, migrationQuery)
	if err != nil {
		return fmt.Errorf("failed to execute migration query: %w", err)
	}

	return nil
}

// Close closes the connection to the database.
func (r *Repository) Close() error {
	if err := r.db.Close(); err != nil {
		r.log.Error("failed to close the database", "op", "repository.sqlite.Close", "error", err)
		return fmt.Errorf("failed to close the database: %w", err)
	}

	return nil
}

// DB is a getter for database handler.
func (r *Repository) DB() *sql.DB {
	return r.db
}
