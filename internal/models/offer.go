package models

import "strings"

// DatesSeparator joins available dates into the single string used by the
// composite offer key and by user-facing messages.
const DatesSeparator = ", "

// RawListing is a structure for storing data for one listing card exactly as
// it was read from a rendered catalog page. Empty strings mean the field was
// absent in the markup.
type RawListing struct {
	Destination   string
	Duration      string
	Ship          string
	DeparturePort string
	PriceText     string
	Currency      string
	Dates         []string
	Promotion     string
	Href          string // Href is the explicit href attribute of the itinerary link.
	DataHref      string // DataHref is the alternate data-href attribute of the itinerary link.
	ListingID     string // ListingID is a card identifier used to synthesize a URL.
	Page          int
}

// Offer is the canonical form of a cruise listing.
type Offer struct {
	Destination    string   `json:"destination"`
	Duration       string   `json:"duration"`
	Ship           string   `json:"ship"`
	DeparturePort  string   `json:"departure_port"`
	Price          int      `json:"price"`
	Currency       string   `json:"currency"`
	AvailableDates []string `json:"available_dates"`
	Promotion      *string  `json:"promotion"`
	ItineraryURL   *string  `json:"itinerary_url"`
	Page           int      `json:"page"`
}

// OfferKey identifies an offer across runs. Ship, itinerary URL and page are
// deliberately not part of it.
type OfferKey struct {
	Destination string
	Price       int
	Dates       string
}

// JoinedDates returns the available dates in presentation order as one string.
func (o Offer) JoinedDates() string {
	return strings.Join(o.AvailableDates, DatesSeparator)
}

// Key returns the composite key of the offer.
func (o Offer) Key() OfferKey {
	return OfferKey{Destination: o.Destination, Price: o.Price, Dates: o.JoinedDates()}
}
