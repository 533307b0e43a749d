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

// UpsertProduct resolves product identity by slug: it inserts the product if
// the slug is unseen, otherwise updates the mutable fields of the existing
// record. The identifier and creation time are never touched on update. The
// returned flag reports whether a new record was created.
func (r *Repository) UpsertProduct(ctx context.Context, product *models.Product) (int64, bool, error) {
	const opn = "repository.sqlite.UpsertProduct"

	specs, err := json.Marshal(product.Specifications)
	if err != nil {
		return 0, false, fmt.Errorf("%s: failed to marshal specifications: %w", opn, err)
	}

	now := time.Now().UTC()

	var id int64
	err = r.db.QueryRowContext(ctx, "SELECT id FROM products WHERE slug = ?", product.Slug).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		// ON CONFLICT DO NOTHING tolerates a uniqueness race between the
		// lookup above and this insert; the fallthrough update below then
		// resolves against the winning row.
		res, insErr := r.db.ExecContext(ctx, `
			INSERT INTO products (name, slug, category, brand, model, specifications, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(slug) DO NOTHING`,
			product.Name, product.Slug, product.Category, product.Brand,
			product.Model, string(specs), now, now,
		)
		if insErr != nil {
			return 0, false, fmt.Errorf("%s: failed to insert product %s: %w", opn, product.Slug, insErr)
		}

		affected, insErr := res.RowsAffected()
		if insErr != nil {
			return 0, false, fmt.Errorf("%s: failed to read rows affected: %w", opn, insErr)
		}
		if affected == 1 {
			id, insErr = res.LastInsertId()
			if insErr != nil {
				return 0, false, fmt.Errorf("%s: failed to read inserted id: %w", opn, insErr)
			}
			return id, true, nil
		}

		// Lost the race: the row exists now, fetch its id and update.
		if insErr = r.db.QueryRowContext(ctx, "SELECT id FROM products WHERE slug = ?", product.Slug).Scan(&id); insErr != nil {
			return 0, false, fmt.Errorf("%s: failed to re-resolve product %s: %w", opn, product.Slug, insErr)
		}
	} else if err != nil {
		return 0, false, fmt.Errorf("%s: failed to look up product %s: %w", opn, product.Slug, err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, category = ?, brand = ?, model = ?, specifications = ?, updated_at = ?
		WHERE id = ?`,
		product.Name, product.Category, product.Brand, product.Model, string(specs), now, id,
	)
	if err != nil {
		return 0, false, fmt.Errorf("%s: failed to update product %s: %w", opn, product.Slug, err)
	}

	return id, false, nil
}

// ProductBySlug returns the stored product with the given unique slug.
func (r *Repository) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	const opn = "repository.sqlite.ProductBySlug"

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, slug, category, brand, model, specifications,
		       best_price, best_currency, best_website_id, best_website_name, best_updated_at,
		       created_at, updated_at
		FROM products WHERE slug = ?`, slug)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrProductNotFound
		}
		return nil, fmt.Errorf("%s: failed to get product %s: %w", opn, slug, err)
	}

	return product, nil
}

// SearchProducts matches the query against product name, brand and model,
// returning the cheapest cached best prices first.
func (r *Repository) SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error) {
	const opn = "repository.sqlite.SearchProducts"

	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, slug, category, brand, model, specifications,
		       best_price, best_currency, best_website_id, best_website_name, best_updated_at,
		       created_at, updated_at
		FROM products
		WHERE name LIKE ? OR brand LIKE ? OR model LIKE ?
		ORDER BY best_price IS NULL, best_price ASC
		LIMIT ?`, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to search products: %w", opn, err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: failed to scan product: %w", opn, scanErr)
		}
		products = append(products, *product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return products, nil
}

// RecomputeBestPrice refreshes the product's denormalized best-price cache.
// The aggregation is two-stage: first the most recent observation per website,
// then the minimum price among those. A website therefore competes only with
// its current price, never with a stale historical low. Ties on price go to
// the earlier-inserted observation. A product with no price history keeps its
// cache untouched.
func (r *Repository) RecomputeBestPrice(ctx context.Context, productID int64) error {
	const opn = "repository.sqlite.RecomputeBestPrice"

	var (
		price       float64
		currency    string
		websiteID   int64
		websiteName string
		scrapedAt   time.Time
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT pr.price, pr.currency, pr.website_id, w.name, pr.scraped_at
		FROM prices pr
		JOIN (
			SELECT website_id, MAX(scraped_at) AS latest_at
			FROM prices
			WHERE product_id = ?
			GROUP BY website_id
		) latest ON pr.website_id = latest.website_id AND pr.scraped_at = latest.latest_at
		JOIN websites w ON w.id = pr.website_id
		WHERE pr.product_id = ?
		ORDER BY pr.price ASC, pr.id ASC
		LIMIT 1`, productID, productID,
	).Scan(&price, &currency, &websiteID, &websiteName, &scrapedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("%s: failed to aggregate best price: %w", opn, err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE products
		SET best_price = ?, best_currency = ?, best_website_id = ?, best_website_name = ?,
		    best_updated_at = ?, updated_at = ?
		WHERE id = ?`,
		price, currency, websiteID, websiteName, scrapedAt, time.Now().UTC(), productID,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to write best price cache: %w", opn, err)
	}

	return nil
}

// scanProduct reads one product row, including the nullable best-price cache.
func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	var (
		product     models.Product
		specs       string
		bestPrice   sql.NullFloat64
		bestCur     sql.NullString
		bestSite    sql.NullInt64
		bestName    sql.NullString
		bestUpdated sql.NullTime
	)

	err := row.Scan(
		&product.ID, &product.Name, &product.Slug, &product.Category,
		&product.Brand, &product.Model, &specs,
		&bestPrice, &bestCur, &bestSite, &bestName, &bestUpdated,
		&product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal([]byte(specs), &product.Specifications); err != nil {
		return nil, fmt.Errorf("failed to unmarshal specifications: %w", err)
	}

	if bestPrice.Valid {
		product.BestPrice = &models.BestPrice{
			Price:       bestPrice.Float64,
			Currency:    bestCur.String,
			WebsiteID:   bestSite.Int64,
			WebsiteName: bestName.String,
			LastUpdated: bestUpdated.Time,
		}
	}

	return &product, nil
}
