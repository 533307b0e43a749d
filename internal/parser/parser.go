package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/Houeta/price-scout/internal/models"
	"github.com/PuerkitoBio/goquery"
)

// ListingParser extracts structured product records from listing page HTML.
type ListingParser interface {
	ParseListings(ctx context.Context, html string, pageURL string) ([]models.Listing, error)
	ParseBrandModel(name string) (string, string)
}

// Selectors describes where product data lives inside a listing page.
type Selectors struct {
	Container    string
	Name         string
	Price        string
	Availability string
	Link         string
}

// gpuKeywords is the allowlist applied to extracted names; records that match
// none of these are dropped silently.
var gpuKeywords = []string{
	"geforce", "rtx", "gtx", "radeon", "rx", "carte graphique",
	"nvidia", "amd", "gpu", "graphics card",
}

var priceRegex = regexp.MustCompile(`\d+[.,]\d+`)

// modelPatterns are tried in order; the first match wins, so the specific
// RTX/GTX/RX rules take priority over the bare 4-digit fallback.
var modelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`rtx\s*(\d+(?:\s*ti)?(?:\s*super)?)`),
	regexp.MustCompile(`gtx\s*(\d+(?:\s*ti)?)`),
	regexp.MustCompile(`rx\s*(\d+(?:\s*xt)?)`),
	regexp.MustCompile(`(\d{4}(?:\s*xt)?)`),
}

var (
	slugInvalidRegex = regexp.MustCompile(`[^a-z0-9]+`)
	memoryRegex      = regexp.MustCompile(`(?i)(\d+)\s*(?:go|gb)\b`)
)

type Parser struct {
	log       *slog.Logger
	selectors Selectors
}

func NewParser(log *slog.Logger, selectors Selectors) *Parser {
	return &Parser{log: log, selectors: selectors}
}

// ParseListings extracts raw product records from one page of listing HTML.
// An empty result is not an error: it signals the end of the listing to the
// caller. A malformed container is logged and skipped without aborting the
// rest of the page.
func (p *Parser) ParseListings(ctx context.Context, html string, pageURL string) ([]models.Listing, error) {
	const opn = "parser.ParseListings"

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%s: data cannot be parsed as HTML: %w", opn, err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse page URL %s: %w", opn, pageURL, err)
	}

	var listings []models.Listing
	doc.Find(p.selectors.Container).Each(func(idx int, sel *goquery.Selection) {
		listing, ok := p.extractListing(sel, base)
		if !ok {
			p.log.WarnContext(ctx, "skipping malformed product container", "index", idx, "url", pageURL)
			return
		}
		if !isGPUProduct(listing.Name) {
			return
		}
		listings = append(listings, listing)
	})

	return listings, nil
}

// extractListing pulls name, price, product URL and availability out of one
// product container.
func (p *Parser) extractListing(sel *goquery.Selection, base *url.URL) (models.Listing, bool) {
	name := strings.TrimSpace(sel.Find(p.selectors.Name).First().Text())
	if name == "" {
		return models.Listing{}, false
	}

	listing := models.Listing{
		Name:         name,
		Price:        parsePrice(sel.Find(p.selectors.Price).First().Text()),
		Availability: p.classifyAvailability(sel),
	}

	if href, exists := sel.Find(p.selectors.Link).First().Attr("href"); exists {
		if ref, err := url.Parse(href); err == nil {
			listing.URL = base.ResolveReference(ref).String()
		}
	}

	return listing, true
}

// parsePrice finds the first decimal-looking substring and normalizes the
// comma decimal separator to a dot. Nil means no usable price.
func parsePrice(text string) *float64 {
	match := priceRegex.FindString(text)
	if match == "" {
		return nil
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
	if err != nil {
		return nil
	}

	return &value
}

// classifyAvailability maps stock keywords in the container text onto the
// availability enum. The configured selector is preferred; if it matches
// nothing the whole container text is classified.
func (p *Parser) classifyAvailability(sel *goquery.Selection) models.Availability {
	text := sel.Find(p.selectors.Availability).First().Text()
	if strings.TrimSpace(text) == "" {
		text = sel.Text()
	}
	text = strings.ToLower(text)

	switch {
	case strings.Contains(text, "stock limité") || strings.Contains(text, "limited"):
		return models.AvailabilityLimited
	case strings.Contains(text, "rupture") || strings.Contains(text, "épuisé") || strings.Contains(text, "out of stock"):
		return models.AvailabilityOutOfStock
	case strings.Contains(text, "précommande") || strings.Contains(text, "pre-order"):
		return models.AvailabilityPreOrder
	case strings.Contains(text, "disponible") || strings.Contains(text, "en stock") || strings.Contains(text, "in stock"):
		return models.AvailabilityInStock
	default:
		return models.AvailabilityUnknown
	}
}

// isGPUProduct checks the name against the GPU keyword allowlist.
func isGPUProduct(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range gpuKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

// ParseBrandModel derives a brand and model from a raw product name using an
// ordered set of case-insensitive rules; the first matching rule wins and an
// unmatched field yields "unknown".
func (p *Parser) ParseBrandModel(name string) (string, string) {
	lower := strings.ToLower(name)

	brand := "unknown"
	switch {
	case strings.Contains(lower, "nvidia") || strings.Contains(lower, "geforce"):
		brand = "nvidia"
	case strings.Contains(lower, "amd") || strings.Contains(lower, "radeon"):
		brand = "amd"
	case strings.Contains(lower, "intel"):
		brand = "intel"
	}

	model := "unknown"
	for _, pattern := range modelPatterns {
		if match := pattern.FindStringSubmatch(lower); match != nil {
			model = strings.Join(strings.Fields(match[1]), "-")
			break
		}
	}

	return brand, model
}

// MakeSlug derives the product's unique, URL-safe identity from its name.
// The name carries the distinguishing attributes (vendor line, memory size),
// so normalizing it is enough to keep slugs distinct per catalog entry.
func MakeSlug(name string) string {
	slug := slugInvalidRegex.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// ExtractSpecs captures documented free-form attributes from the name.
// Currently the memory size in GB, when present.
func ExtractSpecs(name string) map[string]any {
	specs := make(map[string]any)
	if match := memoryRegex.FindStringSubmatch(name); match != nil {
		if gb, err := strconv.Atoi(match[1]); err == nil {
			specs["memory_gb"] = gb
		}
	}

	return specs
}
