package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Houeta/cruise-flow/internal/browser"
	"github.com/Houeta/cruise-flow/internal/models"
	"github.com/Houeta/cruise-flow/internal/normalizer"
	"github.com/PuerkitoBio/goquery"
)

// maxCurrencyLen bounds the text accepted as a currency label next to the price.
const maxCurrencyLen = 5

// Extractor reads the listing cards of the page currently shown.
//
// Extract is a pure read of the DOM: it never navigates. A malformed card
// degrades to a sparse RawListing instead of failing the page; the only error
// returned is a failure to take the DOM snapshot itself.
type Extractor interface {
	Extract(ctx context.Context, page browser.Page, pageNumber int) ([]models.RawListing, error)
}

// Selectors are the CSS selectors of one catalog card.
type Selectors struct {
	Card        string
	Destination string
	Duration    string
	Ship        string
	Port        string
	Price       string
	Dates       string
	Promotion   string
	Link        string
}

// DefaultSelectors returns the selectors of the MSC catalog.
func DefaultSelectors() Selectors {
	return Selectors{
		Card:        ".itinerary-card",
		Destination: ".itinerary-card-detail__destination-and-search-duration .itinerary-card-detail__destination",
		Duration:    ".itinerary-card-detail__destination-and-search-duration .itinerary-card-detail__duration",
		Ship:        ".itinerary-card-detail__ship-name-link",
		Port:        ".itinerary-card-detail__port .itinerary-card-detail__port-name",
		Price:       ".itinerary-card-price__price",
		Dates:       ".available-dates-slider__date",
		Promotion:   ".promo-ribbon--text",
		Link:        ".itinerary-card-detail__see-itinerary",
	}
}

// Parser extracts offer cards from the rendered catalog DOM with goquery.
type Parser struct {
	log *slog.Logger
	sel Selectors
}

// NewParser creates a Parser that matches cards with selectors.
func NewParser(log *slog.Logger, selectors Selectors) *Parser {
	return &Parser{log: log, sel: selectors}
}

// Extract implements Extractor.
func (p *Parser) Extract(ctx context.Context, page browser.Page, pageNumber int) ([]models.RawListing, error) {
	html, err := page.HTML(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get page %d snapshot: %w", pageNumber, err)
	}

	return p.ParseListings(ctx, strings.NewReader(html), pageNumber)
}

// ParseListings parses every card of an HTML document.
func (p *Parser) ParseListings(ctx context.Context, inp io.Reader, pageNumber int) ([]models.RawListing, error) {
	doc, err := goquery.NewDocumentFromReader(inp)
	if err != nil {
		return nil, fmt.Errorf("data cannot be parsed as HTML: %w", err)
	}

	var listings []models.RawListing

	doc.Find(p.sel.Card).Each(func(idx int, s *goquery.Selection) {
		listing := p.parseCard(ctx, idx, s, pageNumber)
		p.log.DebugContext(
			ctx,
			"Parsed listing",
			"page", pageNumber,
			"destination", listing.Destination,
			"price", listing.PriceText,
			"dates", len(listing.Dates),
		)
		listings = append(listings, listing)
	})

	p.log.InfoContext(ctx, "Extracted listings", "page", pageNumber, "count", len(listings))

	return listings, nil
}

// parseCard reads one card. Whatever was read before a failure is kept.
func (p *Parser) parseCard(
	ctx context.Context,
	idx int,
	card *goquery.Selection,
	pageNumber int,
) (listing models.RawListing) {
	listing.Page = pageNumber

	defer func() {
		if r := recover(); r != nil {
			p.log.WarnContext(ctx, "listing card is malformed", "page", pageNumber, "index", idx, "panic", r)
		}
	}()

	listing.Destination = text(card, p.sel.Destination)
	listing.Duration = text(card, p.sel.Duration)
	listing.Ship = text(card, p.sel.Ship)
	listing.DeparturePort = text(card, p.sel.Port)

	price := card.Find(p.sel.Price).First()
	listing.PriceText = normalizer.DigitsOnly(price.Text())
	listing.Currency = currencyLabel(strings.TrimSpace(price.Prev().Text()))

	card.Find(p.sel.Dates).Each(func(_ int, d *goquery.Selection) {
		listing.Dates = append(listing.Dates, strings.TrimSpace(d.Text()))
	})

	listing.Promotion = text(card, p.sel.Promotion)

	link := card.Find(p.sel.Link).First()
	listing.Href = attr(link, "href")
	listing.DataHref = attr(link, "data-href")
	listing.ListingID = firstNonEmpty(attr(card, "data-cruise-id"), attr(card, "id"), attr(link, "data-cruise-id"))

	if listing.Destination == "" || listing.PriceText == "" {
		p.log.WarnContext(ctx, "listing card is missing fields", "page", pageNumber, "index", idx)
	}

	return listing
}

func text(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}

func attr(s *goquery.Selection, name string) string {
	value, _ := s.Attr(name)
	return strings.TrimSpace(value)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// currencyLabel accepts a short label without digits, e.g. "USD" or "U$S".
func currencyLabel(label string) string {
	if label == "" || utf8.RuneCountInString(label) > maxCurrencyLen || strings.IndexFunc(label, unicode.IsDigit) >= 0 {
		return ""
	}

	return label
}
