package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Houeta/price-scout/internal/models"
)

var (
	// ErrWebsiteNotFound is returned when no website matches the given name.
	ErrWebsiteNotFound = errors.New("website not found")
	// ErrProductNotFound is returned when no product matches the given slug.
	ErrProductNotFound = errors.New("product not found")
)

// ValidationError reports a price observation that violates the data model
// and must not be written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Interface describes the product/price store used by the scraper and the bot.
type Interface interface {
	// UpsertWebsite inserts a website by its unique name, or updates the
	// mutable fields of the existing record. Identity and creation time are
	// preserved across repeated calls.
	UpsertWebsite(ctx context.Context, website *models.Website) (int64, error)
	// WebsiteByName returns the website with the given name, or ErrWebsiteNotFound.
	WebsiteByName(ctx context.Context, name string) (*models.Website, error)
	// MarkScraped stamps the website's last-scrape time; failed additionally
	// increments its error counter.
	MarkScraped(ctx context.Context, websiteID int64, at time.Time, failed bool) error

	// UpsertProduct inserts a product by its unique slug or updates the
	// mutable fields of the existing record. The returned flag reports
	// whether a new record was created.
	UpsertProduct(ctx context.Context, product *models.Product) (int64, bool, error)
	// ProductBySlug returns the product with the given slug, or ErrProductNotFound.
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	// SearchProducts matches the query against product name, brand and model,
	// cheapest cached best price first.
	SearchProducts(ctx context.Context, query string, limit int) ([]models.Product, error)
	// RecomputeBestPrice refreshes the product's cached best price from its
	// price history: each website competes with its most recent observation
	// only, and the minimum among those wins.
	RecomputeBestPrice(ctx context.Context, productID int64) error

	// InsertPrice appends one immutable price observation. A non-positive
	// price or an availability outside the enumerated set fails with a
	// *ValidationError and writes nothing.
	InsertPrice(ctx context.Context, price *models.Price) (int64, error)
	// RecentPrices returns the product's observations within the trailing
	// window, newest first.
	RecentPrices(ctx context.Context, productID int64, days int) ([]models.Price, error)
	// PruneOldPrices deletes price rows older than the retention cutoff and
	// returns the number deleted. Products and websites are untouched.
	PruneOldPrices(ctx context.Context, retentionDays int) (int64, error)

	// SubscribeChat registers a chat for run summary notifications.
	SubscribeChat(ctx context.Context, chatID int64) error
	// UnsubscribeChat removes the chat from the notification list.
	UnsubscribeChat(ctx context.Context, chatID int64) error
	// GetSubscribedChats returns all subscribed chat IDs.
	GetSubscribedChats(ctx context.Context) ([]int64, error)
}
