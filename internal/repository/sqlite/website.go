package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Houeta/price-scout/internal/models"
	"github.com/Houeta/price-scout/internal/repository"
)

// UpsertWebsite inserts the website by its unique name. On conflict the
// mutable fields are updated in place; the row identifier and creation time
// never change, so repeated calls with identical input are safe.
func (r *Repository) UpsertWebsite(ctx context.Context, website *models.Website) (int64, error) {
	const opn = "repository.sqlite.UpsertWebsite"

	cfg, err := json.Marshal(website.ScrapingConfig)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to marshal scraping config: %w", opn, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO websites (name, display_name, base_url, country, currency, scraping_config, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			display_name = excluded.display_name,
			base_url = excluded.base_url,
			country = excluded.country,
			currency = excluded.currency,
			scraping_config = excluded.scraping_config,
			active = excluded.active`,
		website.Name, website.DisplayName, website.BaseURL, website.Country,
		website.Currency, string(cfg), website.Active, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to upsert website %s: %w", opn, website.Name, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, "SELECT id FROM websites WHERE name = ?", website.Name).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: failed to resolve website id: %w", opn, err)
	}

	return id, nil
}

// WebsiteByName returns the stored website with the given unique name.
func (r *Repository) WebsiteByName(ctx context.Context, name string) (*models.Website, error) {
	const opn = "repository.sqlite.WebsiteByName"

	var (
		website     models.Website
		cfg         string
		lastScraped sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, display_name, base_url, country, currency, scraping_config,
		       active, last_scraped, error_count, created_at
		FROM websites WHERE name = ?`, name,
	).Scan(
		&website.ID, &website.Name, &website.DisplayName, &website.BaseURL,
		&website.Country, &website.Currency, &cfg, &website.Active,
		&lastScraped, &website.ErrorCount, &website.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrWebsiteNotFound
		}
		return nil, fmt.Errorf("%s: failed to get website %s: %w", opn, name, err)
	}

	if lastScraped.Valid {
		website.LastScraped = lastScraped.Time
	}
	if err = json.Unmarshal([]byte(cfg), &website.ScrapingConfig); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal scraping config: %w", opn, err)
	}

	return &website, nil
}

// MarkScraped stamps the website's last-scrape time after a run. A failed run
// additionally increments the error counter.
func (r *Repository) MarkScraped(ctx context.Context, websiteID int64, at time.Time, failed bool) error {
	const opn = "repository.sqlite.MarkScraped"

	query := "UPDATE websites SET last_scraped = ? WHERE id = ?"
	if failed {
		query = "UPDATE websites SET last_scraped = ?, error_count = error_count + 1 WHERE id = ?"
	}

	if _, err := r.db.ExecContext(ctx, query, at.UTC(), websiteID); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	return nil
}
