package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/price-scout/internal/fetcher"
	"github.com/Houeta/price-scout/internal/models"
	"github.com/Houeta/price-scout/internal/parser"
	"github.com/Houeta/price-scout/internal/repository"
)

const (
	topAchatName       = "topachat"
	topAchatListingURL = "https://www.topachat.com/pages/produits_cat_est_micro_puis_rubrique_est_wgfx_pcie.html"
	topAchatCurrency   = "EUR"
)

// TopAchatSelectors returns the CSS selectors for the TopAchat GPU listing.
func TopAchatSelectors() parser.Selectors {
	return parser.Selectors{
		Container:    ".product-list__product-wrapper",
		Name:         ".product__label",
		Price:        ".product__price",
		Availability: ".dispo, .stock, .availability",
		Link:         "a",
	}
}

// TopAchat scrapes GPU listings from topachat.com.
type TopAchat struct {
	log     *slog.Logger
	fetcher fetcher.PageFetcher
	parser  parser.ListingParser
	repo    repository.Interface

	websiteID int64
}

// NewTopAchat creates the TopAchat scraper from its collaborators.
func NewTopAchat(log *slog.Logger, pf fetcher.PageFetcher, lp parser.ListingParser, repo repository.Interface) *TopAchat {
	return &TopAchat{log: log, fetcher: pf, parser: lp, repo: repo}
}

// SetupWebsiteConfig upserts the TopAchat website record and remembers its
// identifier for the runs that follow.
func (s *TopAchat) SetupWebsiteConfig(ctx context.Context) (int64, error) {
	const opn = "scraper.TopAchat.SetupWebsiteConfig"

	selectors := TopAchatSelectors()
	website := &models.Website{
		Name:        topAchatName,
		DisplayName: "TopAchat",
		BaseURL:     "https://www.topachat.com",
		Country:     "FR",
		Currency:    topAchatCurrency,
		ScrapingConfig: map[string]any{
			"base_gpu_url": topAchatListingURL,
			"selectors": map[string]any{
				"product_container": selectors.Container,
				"name":              selectors.Name,
				"price":             selectors.Price,
				"availability":      selectors.Availability,
				"link":              selectors.Link,
			},
		},
		Active: true,
	}

	id, err := s.repo.UpsertWebsite(ctx, website)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opn, err)
	}

	s.websiteID = id

	return id, nil
}

// ScrapeListings iterates listing pages from 1 to maxPages: fetch, parse,
// store, next page. A fetch failure on the first page is fatal for the run; a
// page with zero parsed products ends the pagination quietly. Per-product
// validation failures are recorded and skipped, any other storage failure
// aborts the run while keeping the progress made so far.
func (s *TopAchat) ScrapeListings(ctx context.Context, maxPages int) (*models.RunSummary, error) {
	const opn = "scraper.TopAchat.ScrapeListings"
	log := s.log.With("op", opn)

	start := time.Now()
	summary := &models.RunSummary{
		Website:   topAchatName,
		ScrapedAt: start.UTC(),
	}

	defer func() {
		summary.Duration = time.Since(start)
		if err := s.repo.MarkScraped(ctx, s.websiteID, time.Now(), !summary.Success); err != nil {
			log.ErrorContext(ctx, "failed to update website last_scraped", "error", err)
		}
	}()

	fatal := false

pages:
	for page := 1; page <= maxPages; page++ {
		pageURL := topAchatListingURL
		if page > 1 {
			pageURL = fmt.Sprintf("%s?page=%d", topAchatListingURL, page)
		}

		log.InfoContext(ctx, "Fetching listing page", "page", page, "url", pageURL)
		summary.PagesAttempted++

		html, err := s.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("failed to fetch page %d: %v", page, err))
			if page == 1 {
				// Nothing scraped at all, the run cannot produce anything useful.
				log.ErrorContext(ctx, "first page fetch failed, aborting run", "error", err)
				fatal = true
				break
			}
			log.WarnContext(ctx, "page fetch failed, continuing with next page", "page", page, "error", err)
			continue
		}

		listings, err := s.parser.ParseListings(ctx, html, pageURL)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("failed to parse page %d: %v", page, err))
			continue
		}

		if len(listings) == 0 {
			log.InfoContext(ctx, "No products found, end of listing", "page", page)
			break
		}

		for _, listing := range listings {
			if listing.Price == nil {
				log.WarnContext(ctx, "skipping product without usable price", "name", listing.Name)
				continue
			}

			summary.ProductsFound++

			created, err := s.storeListing(ctx, listing)
			if err != nil {
				summary.Errors = append(summary.Errors, fmt.Sprintf("error processing product %s: %v", listing.Name, err))

				var validationErr *repository.ValidationError
				if errors.As(err, &validationErr) {
					continue
				}

				// Storage-level failure is fatal: stop the run but keep the
				// progress made so far.
				log.ErrorContext(ctx, "storage failure, aborting run", "error", err)
				fatal = true
				break pages
			}

			summary.ProductsProcessed++
			if created {
				summary.ProductsCreated++
			} else {
				summary.ProductsUpdated++
			}
		}
	}

	summary.Success = !fatal

	log.InfoContext(ctx, "Scrape run finished",
		"success", summary.Success,
		"found", summary.ProductsFound,
		"processed", summary.ProductsProcessed,
		"created", summary.ProductsCreated,
		"updated", summary.ProductsUpdated,
		"errors", len(summary.Errors),
	)

	return summary, nil
}

// storeListing resolves product identity, appends the price observation and
// refreshes the best-price cache for one listing.
func (s *TopAchat) storeListing(ctx context.Context, listing models.Listing) (bool, error) {
	brand, model := s.parser.ParseBrandModel(listing.Name)

	product := &models.Product{
		Name:           listing.Name,
		Slug:           parser.MakeSlug(listing.Name),
		Category:       "gpu",
		Brand:          brand,
		Model:          model,
		Specifications: parser.ExtractSpecs(listing.Name),
	}

	productID, created, err := s.repo.UpsertProduct(ctx, product)
	if err != nil {
		return false, err
	}

	price := &models.Price{
		ProductID:    productID,
		WebsiteID:    s.websiteID,
		Price:        *listing.Price,
		Currency:     topAchatCurrency,
		ProductURL:   listing.URL,
		Availability: listing.Availability,
		Condition:    "new",
		ScrapedAt:    time.Now().UTC(),
		RawData: map[string]any{
			"name":         listing.Name,
			"price":        *listing.Price,
			"url":          listing.URL,
			"availability": string(listing.Availability),
		},
	}

	if _, err = s.repo.InsertPrice(ctx, price); err != nil {
		return created, err
	}

	if err = s.repo.RecomputeBestPrice(ctx, productID); err != nil {
		return created, err
	}

	return created, nil
}
