package scraper_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/Houeta/price-scout/internal/models"
	"github.com/Houeta/price-scout/internal/repository"
	"github.com/Houeta/price-scout/internal/services/scraper"
	"github.com/Houeta/price-scout/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const websiteID = int64(7)

func newTestScraper(t *testing.T) (*scraper.TopAchat, *mocks.PageFetcher, *mocks.ListingParser, *mocks.Interface) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mFetcher := mocks.NewPageFetcher(t)
	mParser := mocks.NewListingParser(t)
	mRepo := mocks.NewInterface(t)

	s := scraper.NewTopAchat(logger, mFetcher, mParser, mRepo)

	mRepo.On("UpsertWebsite", mock.Anything, mock.AnythingOfType("*models.Website")).Return(websiteID, nil).Once()
	id, err := s.SetupWebsiteConfig(context.Background())
	require.NoError(t, err)
	require.Equal(t, websiteID, id)

	return s, mFetcher, mParser, mRepo
}

func listingWithPrice(name string, price float64) models.Listing {
	return models.Listing{
		Name:         name,
		Price:        &price,
		URL:          "https://www.topachat.com/fiche/in1.html",
		Availability: models.AvailabilityInStock,
	}
}

func TestScrapeListings_SuccessfulRun(t *testing.T) {
	s, mFetcher, mParser, mRepo := newTestScraper(t)
	ctx := context.Background()

	withPrice := listingWithPrice("MSI GeForce RTX 4070 Ti 12GB", 849.99)
	priceless := models.Listing{Name: "ASUS GeForce RTX 4090", Availability: models.AvailabilityUnknown}

	// Page 1 yields one storable product and one priceless record;
	// page 2 is empty and ends the pagination.
	mFetcher.On("Fetch", ctx, mock.AnythingOfType("string")).Return("<html>page1</html>", nil).Once()
	mParser.On("ParseListings", ctx, "<html>page1</html>", mock.AnythingOfType("string")).
		Return([]models.Listing{withPrice, priceless}, nil).Once()
	mFetcher.On("Fetch", ctx, mock.AnythingOfType("string")).Return("<html>page2</html>", nil).Once()
	mParser.On("ParseListings", ctx, "<html>page2</html>", mock.AnythingOfType("string")).
		Return(nil, nil).Once()

	mParser.On("ParseBrandModel", withPrice.Name).Return("nvidia", "4070-ti").Once()
	mRepo.On("UpsertProduct", ctx, mock.AnythingOfType("*models.Product")).Return(int64(42), true, nil).Once()
	mRepo.On("InsertPrice", ctx, mock.AnythingOfType("*models.Price")).Return(int64(1), nil).Once()
	mRepo.On("RecomputeBestPrice", ctx, int64(42)).Return(nil).Once()
	mRepo.On("MarkScraped", ctx, websiteID, mock.AnythingOfType("time.Time"), false).Return(nil).Once()

	summary, err := s.ScrapeListings(ctx, 5)

	require.NoError(t, err)
	assert.True(t, summary.Success)
	assert.Equal(t, 2, summary.PagesAttempted)
	assert.Equal(t, 1, summary.ProductsFound, "priceless record is excluded from all counters")
	assert.Equal(t, 1, summary.ProductsProcessed)
	assert.Equal(t, 1, summary.ProductsCreated)
	assert.Equal(t, 0, summary.ProductsUpdated)
	assert.Empty(t, summary.Errors)
}

func TestScrapeListings_FirstPageFetchFailureIsFatal(t *testing.T) {
	s, mFetcher, _, mRepo := newTestScraper(t)
	ctx := context.Background()

	mFetcher.On("Fetch", ctx, mock.AnythingOfType("string")).
		Return("", errors.New("connection refused")).Once()
	mRepo.On("MarkScraped", ctx, websiteID, mock.AnythingOfType("time.Time"), true).Return(nil).Once()

	summary, err := s.ScrapeListings(ctx, 5)

	require.NoError(t, err)
	assert.False(t, summary.Success)
	assert.Equal(t, 1, summary.PagesAttempted)
	assert.Len(t, summary.Errors, 1)
	assert.Zero(t, summary.ProductsFound)
}

func TestScrapeListings_LaterPageFetchFailureIsRecoverable(t *testing.T) {
	s, mFetcher, mParser, mRepo := newTestScraper(t)
	ctx := context.Background()

	withPrice := listingWithPrice("MSI GeForce RTX 4070 Ti 12GB", 849.99)

	// Page 1 succeeds, page 2 fails all retries, page 3 ends the listing.
	mFetcher.On("Fetch", ctx, mock.AnythingOfType("string")).Return("<html>page1</html>", nil).Once()
	mParser.On("ParseListings", ctx, "<html>page1</html>", mock.AnythingOfType("string")).
		Return([]models.Listing{withPrice}, nil).Once()
	mFetcher.On("Fetch", ctx, mock.AnythingOfType("string")).
		Return("", errors.New("status code error: [503]")).Once()
	mFetcher.On("Fetch", ctx, mock.AnythingOfType("string")).Return("<html>page3</html>", nil).Once()
	mParser.On("ParseListings", ctx, "<html>page3</html>", mock.AnythingOfType("string")).
		Return(nil, nil).Once()

	mParser.On("ParseBrandModel", withPrice.Name).Return("nvidia", "4070-ti").Once()
	mRepo.On("UpsertProduct", ctx, mock.AnythingOfType("*models.Product")).Return(int64(42), false, nil).Once()
	mRepo.On("InsertPrice", ctx, mock.AnythingOfType("*models.Price")).Return(int64(1), nil).Once()
	mRepo.On("RecomputeBestPrice", ctx, int64(42)).Return(nil).Once()
	mRepo.On("MarkScraped", ctx, websiteID, mock.AnythingOfType("time.Time"), false).Return(nil).Once()

	summary, err := s.ScrapeListings(ctx, 5)

	require.NoError(t, err)
	assert.True(t, summary.Success, "a mid-run page failure does not fail the run")
	assert.Equal(t, 3, summary.PagesAttempted)
	assert.Len(t, summary.Errors, 1)
	assert.Equal(t, 1, summary.ProductsProcessed)
	assert.Equal(t, 1, summary.ProductsUpdated)
}

func TestScrapeListings_ValidationFailureSkipsProduct(t *testing.T) {
	s, mFetcher, mParser, mRepo := newTestScraper(t)
	ctx := context.Background()

	bad := listingWithPrice("Gigabyte GeForce RTX 4060", 299.99)
	good := listingWithPrice("MSI GeForce RTX 4070 Ti 12GB", 849.99)

	mFetcher.On("Fetch", ctx, mock.AnythingOfType("string")).Return("<html>page1</html>", nil).Once()
	mParser.On("ParseListings", ctx, "<html>page1</html>", mock.AnythingOfType("string")).
		Return([]models.Listing{bad, good}, nil).Once()
	mFetcher.On("Fetch", ctx, mock.AnythingOfType("string")).Return("<html>page2</html>", nil).Once()
	mParser.On("ParseListings", ctx, "<html>page2</html>", mock.AnythingOfType("string")).
		Return(nil, nil).Once()

	mParser.On("ParseBrandModel", bad.Name).Return("nvidia", "4060").Once()
	mParser.On("ParseBrandModel", good.Name).Return("nvidia", "4070-ti").Once()
	mRepo.On("UpsertProduct", ctx, mock.AnythingOfType("*models.Product")).Return(int64(41), false, nil).Once()
	mRepo.On("UpsertProduct", ctx, mock.AnythingOfType("*models.Product")).Return(int64(42), false, nil).Once()

	validationErr := fmt.Errorf("insert price: %w", &repository.ValidationError{Field: "price", Reason: "must be positive"})
	mRepo.On("InsertPrice", ctx, mock.AnythingOfType("*models.Price")).Return(int64(0), validationErr).Once()
	mRepo.On("InsertPrice", ctx, mock.AnythingOfType("*models.Price")).Return(int64(2), nil).Once()
	mRepo.On("RecomputeBestPrice", ctx, int64(42)).Return(nil).Once()
	mRepo.On("MarkScraped", ctx, websiteID, mock.AnythingOfType("time.Time"), false).Return(nil).Once()

	summary, err := s.ScrapeListings(ctx, 5)

	require.NoError(t, err)
	assert.True(t, summary.Success)
	assert.Len(t, summary.Errors, 1, "validation failure lands in the error list")
	assert.Equal(t, 2, summary.ProductsFound)
	assert.Equal(t, 1, summary.ProductsProcessed, "failed item is excluded from processed counts")
}

func TestScrapeListings_StorageFailureAbortsRun(t *testing.T) {
	s, mFetcher, mParser, mRepo := newTestScraper(t)
	ctx := context.Background()

	first := listingWithPrice("MSI GeForce RTX 4070 Ti 12GB", 849.99)
	second := listingWithPrice("Gigabyte GeForce RTX 4060", 299.99)

	mFetcher.On("Fetch", ctx, mock.AnythingOfType("string")).Return("<html>page1</html>", nil).Once()
	mParser.On("ParseListings", ctx, "<html>page1</html>", mock.AnythingOfType("string")).
		Return([]models.Listing{first, second}, nil).Once()

	mParser.On("ParseBrandModel", first.Name).Return("nvidia", "4070-ti").Once()
	mRepo.On("UpsertProduct", ctx, mock.AnythingOfType("*models.Product")).Return(int64(42), true, nil).Once()
	mRepo.On("InsertPrice", ctx, mock.AnythingOfType("*models.Price")).Return(int64(1), nil).Once()
	mRepo.On("RecomputeBestPrice", ctx, int64(42)).Return(nil).Once()

	// The second product hits a dead database: fatal, but progress is kept.
	mParser.On("ParseBrandModel", second.Name).Return("nvidia", "4060").Once()
	mRepo.On("UpsertProduct", ctx, mock.AnythingOfType("*models.Product")).
		Return(int64(0), false, errors.New("database is locked")).Once()
	mRepo.On("MarkScraped", ctx, websiteID, mock.AnythingOfType("time.Time"), true).Return(nil).Once()

	summary, err := s.ScrapeListings(ctx, 5)

	require.NoError(t, err)
	assert.False(t, summary.Success, "storage failure marks the run unsuccessful")
	assert.Len(t, summary.Errors, 1)
	assert.Equal(t, 1, summary.ProductsProcessed, "progress before the failure is retained")
	assert.Equal(t, 1, summary.ProductsCreated)
}
