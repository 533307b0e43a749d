package models

import "time"

// Availability is the enumerated stock state of a listing at observation time.
type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
	AvailabilityLimited    Availability = "limited"
	AvailabilityPreOrder   Availability = "pre_order"
	AvailabilityUnknown    Availability = "unknown"
)

// Valid reports whether the value is one of the enumerated states.
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityInStock, AvailabilityOutOfStock, AvailabilityLimited, AvailabilityPreOrder, AvailabilityUnknown:
		return true
	}
	return false
}

// Price is one immutable price observation. Rows are appended during a scrape
// and never updated afterwards.
type Price struct {
	ID           int64
	ProductID    int64
	WebsiteID    int64
	Price        float64
	Currency     string
	ProductURL   string
	Availability Availability
	Condition    string // new, used, refurbished, open_box
	ShippingCost *float64
	Seller       string
	ScrapedAt    time.Time
	// RawData is the captured listing payload as parsed from the page.
	RawData map[string]any
}
