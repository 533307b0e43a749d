package models

import "time"

// Website describes one scraper target and its stored configuration.
type Website struct {
	ID          int64
	Name        string // unique key, e.g. "topachat"
	DisplayName string
	BaseURL     string
	Country     string
	Currency    string
	// ScrapingConfig is a free-form configuration document (selectors,
	// rate limit, retry count). Stored as JSON.
	ScrapingConfig map[string]any
	Active         bool
	LastScraped    time.Time
	ErrorCount     int
	CreatedAt      time.Time
}
