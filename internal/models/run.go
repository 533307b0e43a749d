package models

import "time"

// Listing is one raw product record extracted from a listing page.
type Listing struct {
	Name         string
	Price        *float64 // nil when no usable price was found
	URL          string
	Availability Availability
}

// RunSummary aggregates the outcome of one full scrape run for one website.
type RunSummary struct {
	Website           string
	Success           bool
	PagesAttempted    int
	ProductsFound     int
	ProductsProcessed int
	ProductsCreated   int
	ProductsUpdated   int
	Errors            []string
	ScrapedAt         time.Time
	Duration          time.Duration
}
