package models

import "time"

// Product is a catalog entry identified by its unique slug.
type Product struct {
	ID       int64
	Name     string
	Slug     string
	Category string
	Brand    string
	Model    string
	// Specifications is a free-form attribute document (memory size, bus
	// width, ...). Stored as JSON; no fixed schema is enforced.
	Specifications map[string]any
	// BestPrice is a denormalized cache over the price history, not a
	// source of truth. Nil until the first recomputation.
	BestPrice *BestPrice
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BestPrice summarizes the cheapest currently valid price across all
// tracked websites: each website competes with its latest observation only.
type BestPrice struct {
	Price       float64
	Currency    string
	WebsiteID   int64
	WebsiteName string
	LastUpdated time.Time
}
