package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Houeta/price-scout/internal/models"
	"github.com/Houeta/price-scout/internal/repository"
)

const hoursPerDay = 24

// InsertPrice appends one immutable price observation. The row is validated
// before the write: a non-positive price or an availability value outside the
// enumerated set fails with a *repository.ValidationError and writes nothing.
func (r *Repository) InsertPrice(ctx context.Context, price *models.Price) (int64, error) {
	const opn = "repository.sqlite.InsertPrice"

	if price.Price <= 0 {
		return 0, fmt.Errorf("%s: %w", opn, &repository.ValidationError{
			Field:  "price",
			Reason: fmt.Sprintf("must be positive, got %v", price.Price),
		})
	}

	availability := price.Availability
	if availability == "" {
		availability = models.AvailabilityUnknown
	}
	if !availability.Valid() {
		return 0, fmt.Errorf("%s: %w", opn, &repository.ValidationError{
			Field:  "availability",
			Reason: fmt.Sprintf("unknown value %q", availability),
		})
	}

	condition := price.Condition
	if condition == "" {
		condition = "new"
	}

	raw, err := json.Marshal(price.RawData)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to marshal raw data: %w", opn, err)
	}

	scrapedAt := price.ScrapedAt
	if scrapedAt.IsZero() {
		scrapedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO prices (product_id, website_id, price, currency, product_url,
		                    availability, condition, shipping_cost, seller, scraped_at, raw_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		price.ProductID, price.WebsiteID, price.Price, price.Currency, price.ProductURL,
		string(availability), condition, price.ShippingCost, price.Seller, scrapedAt, string(raw),
	)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to insert price: %w", opn, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to read inserted id: %w", opn, err)
	}

	return id, nil
}

// RecentPrices returns the product's price observations within the trailing
// window, newest first.
func (r *Repository) RecentPrices(ctx context.Context, productID int64, days int) ([]models.Price, error) {
	const opn = "repository.sqlite.RecentPrices"

	cutoff := time.Now().UTC().Add(-time.Duration(days) * hoursPerDay * time.Hour)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, website_id, price, currency, product_url,
		       availability, condition, shipping_cost, seller, scraped_at, raw_data
		FROM prices
		WHERE product_id = ? AND scraped_at >= ?
		ORDER BY scraped_at DESC`, productID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get prices: %w", opn, err)
	}
	defer rows.Close()

	var prices []models.Price
	for rows.Next() {
		var (
			price    models.Price
			raw      string
			shipping sql.NullFloat64
		)

		err = rows.Scan(
			&price.ID, &price.ProductID, &price.WebsiteID, &price.Price,
			&price.Currency, &price.ProductURL, &price.Availability,
			&price.Condition, &shipping, &price.Seller, &price.ScrapedAt, &raw,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan price: %w", opn, err)
		}

		if shipping.Valid {
			price.ShippingCost = &shipping.Float64
		}
		if err = json.Unmarshal([]byte(raw), &price.RawData); err != nil {
			return nil, fmt.Errorf("%s: failed to unmarshal raw data: %w", opn, err)
		}

		prices = append(prices, price)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return prices, nil
}

// PruneOldPrices deletes price rows older than the retention cutoff in bulk
// and returns the number deleted. Product and website records are untouched.
func (r *Repository) PruneOldPrices(ctx context.Context, retentionDays int) (int64, error) {
	const opn = "repository.sqlite.PruneOldPrices"

	cutoff := time.Now().UTC().Add(-time.Duration(retentionDays) * hoursPerDay * time.Hour)

	res, err := r.db.ExecContext(ctx, "DELETE FROM prices WHERE scraped_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to delete old prices: %w", opn, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to read rows affected: %w", opn, err)
	}

	return deleted, nil
}
