// Package normalizer coerces raw listing cards into canonical offers.
package normalizer

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Houeta/cruise-flow/internal/models"
)

// DefaultCurrency is used when neither the card nor the caller provide one.
const DefaultCurrency = "USD"

// listingPath is the catalog path under which a listing can be opened by its identifier.
const listingPath = "/cruceros/"

// Normalizer converts RawListing values into models.Offer values.
type Normalizer struct {
	origin   string
	currency string
}

// NewNormalizer creates a Normalizer that resolves relative links against origin
// and falls back to currency when a card carries none.
func NewNormalizer(origin, currency string) *Normalizer {
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Normalizer{origin: strings.TrimRight(origin, "/"), currency: currency}
}

// Normalize never fails: anything that cannot be parsed becomes empty, zero or nil.
func (n *Normalizer) Normalize(raw models.RawListing) models.Offer {
	currency := strings.TrimSpace(raw.Currency)
	if currency == "" {
		currency = n.currency
	}

	return models.Offer{
		Destination:    strings.TrimSpace(raw.Destination),
		Duration:       strings.TrimSpace(raw.Duration),
		Ship:           strings.TrimSpace(raw.Ship),
		DeparturePort:  strings.TrimSpace(raw.DeparturePort),
		Price:          ParsePrice(raw.PriceText),
		Currency:       currency,
		AvailableDates: cleanDates(raw.Dates),
		Promotion:      optional(raw.Promotion),
		ItineraryURL:   ResolveURL(n.origin, raw.Href, raw.DataHref, raw.ListingID),
		Page:           raw.Page,
	}
}

// NormalizeAll normalizes a page worth of listings keeping their order.
func (n *Normalizer) NormalizeAll(raws []models.RawListing) []models.Offer {
	offers := make([]models.Offer, 0, len(raws))
	for _, raw := range raws {
		offers = append(offers, n.Normalize(raw))
	}

	return offers
}

// ParsePrice keeps only the digits of text. No digits, or a number too large
// for an int, yields 0.
func ParsePrice(text string) int {
	digits := DigitsOnly(text)
	if digits == "" {
		return 0
	}

	price, err := strconv.Atoi(digits)
	if err != nil || price < 0 {
		return 0
	}

	return price
}

// DigitsOnly strips every non-digit character from text.
func DigitsOnly(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
}

// ResolveURL picks the itinerary URL using the first candidate that works:
// explicit href, then data-href (both completed against origin when relative),
// then a URL synthesized from the listing identifier. It returns nil when
// nothing can be recovered.
func ResolveURL(origin, href, dataHref, listingID string) *string {
	origin = strings.TrimRight(origin, "/")

	for _, candidate := range []string{href, dataHref} {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" || strings.HasPrefix(candidate, "#") || isScript(candidate) {
			continue
		}
		if resolved := completeURL(origin, candidate); resolved != "" {
			return &resolved
		}
	}

	if id := strings.TrimSpace(listingID); id != "" && origin != "" {
		synthesized := origin + listingPath + url.PathEscape(id)
		return &synthesized
	}

	return nil
}

// completeURL returns candidate unchanged when it is absolute, otherwise joins it
// with origin. An empty origin leaves relative links unresolved.
func completeURL(origin, candidate string) string {
	lower := strings.ToLower(candidate)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return candidate
	}

	if strings.HasPrefix(candidate, "//") {
		if u, err := url.Parse(origin); err == nil && u.Scheme != "" {
			return u.Scheme + ":" + candidate
		}
		return ""
	}

	if origin == "" {
		return ""
	}

	if !strings.HasPrefix(candidate, "/") {
		candidate = "/" + candidate
	}

	return origin + candidate
}

func isScript(candidate string) bool {
	return strings.HasPrefix(strings.ToLower(candidate), "javascript:")
}

// cleanDates trims every date keeping presentation order and never returns nil.
func cleanDates(dates []string) []string {
	cleaned := make([]string, 0, len(dates))
	for _, date := range dates {
		cleaned = append(cleaned, strings.TrimSpace(date))
	}

	return cleaned
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	return &value
}
