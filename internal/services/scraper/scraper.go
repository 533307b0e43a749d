package scraper

import (
	"context"

	"github.com/Houeta/price-scout/internal/models"
)

// Scraper is the capability implemented by every per-site scraper. Concrete
// scrapers compose a fetcher, a parser and the repository rather than sharing
// state through a base type.
type Scraper interface {
	// SetupWebsiteConfig upserts the site's configuration record and returns
	// its identifier. Safe to call on every startup.
	SetupWebsiteConfig(ctx context.Context) (int64, error)
	// ScrapeListings drives one full run across paginated listings and
	// returns the aggregated outcome. A summary is produced even when the
	// run aborts, reflecting the progress made before the failure.
	ScrapeListings(ctx context.Context, maxPages int) (*models.RunSummary, error)
}
