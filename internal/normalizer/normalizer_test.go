package normalizer_test

import (
	"testing"

	"github.com/Houeta/cruise-flow/internal/models"
	"github.com/Houeta/cruise-flow/internal/normalizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const origin = "https://www.msccruceros.com.ar"

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "currency prefix", input: "USD 450", expected: 450},
		{name: "thousands separator", input: "US$ 1.299", expected: 1299},
		{name: "surrounding whitespace", input: "  480 ", expected: 480},
		{name: "no digits", input: "Consultar", expected: 0},
		{name: "empty", input: "", expected: 0},
		{name: "overflow", input: "999999999999999999999999999", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, normalizer.ParsePrice(tc.input))
		})
	}
}

func TestResolveURL(t *testing.T) {
	testCases := []struct {
		name      string
		href      string
		dataHref  string
		listingID string
		expected  string // empty means nil
	}{
		{
			name:     "relative href resolves against origin",
			href:     "/cruceros/123",
			expected: origin + "/cruceros/123",
		},
		{
			name:     "relative href without leading slash",
			href:     "cruceros/123",
			expected: origin + "/cruceros/123",
		},
		{
			name:     "absolute href passes through",
			href:     "https://other.example.com/itinerary?id=9",
			expected: "https://other.example.com/itinerary?id=9",
		},
		{
			name:     "data-href used when href missing",
			dataHref: "/itinerario/abc",
			expected: origin + "/itinerario/abc",
		},
		{
			name:     "href wins over data-href",
			href:     "/a",
			dataHref: "/b",
			expected: origin + "/a",
		},
		{
			name:      "placeholder href falls through to identifier",
			href:      "#",
			listingID: "SP20250110",
			expected:  origin + "/cruceros/SP20250110",
		},
		{
			name:      "synthesized from identifier",
			listingID: "FA123",
			expected:  origin + "/cruceros/FA123",
		},
		{
			name:     "protocol relative",
			href:     "//cdn.example.com/x",
			expected: "https://cdn.example.com/x",
		},
		{
			name: "nothing recoverable",
		},
		{
			name:     "javascript href is ignored",
			href:     "javascript:void(0)",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizer.ResolveURL(origin, tc.href, tc.dataHref, tc.listingID)
			if tc.expected == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.expected, *got)
		})
	}

	t.Run("no origin keeps relative links unresolved", func(t *testing.T) {
		assert.Nil(t, normalizer.ResolveURL("", "/cruceros/1", "", "1"))
		got := normalizer.ResolveURL("", "https://a.example/x", "", "")
		require.NotNil(t, got)
		assert.Equal(t, "https://a.example/x", *got)
	})
}

func TestNormalize(t *testing.T) {
	n := normalizer.NewNormalizer(origin+"/", "")

	t.Run("full card", func(t *testing.T) {
		raw := models.RawListing{
			Destination:   " Brasil ",
			Duration:      "8 noches",
			Ship:          "MSC Preziosa",
			DeparturePort: "Buenos Aires",
			PriceText:     "USD 480",
			Currency:      "U$S",
			Dates:         []string{" 10/01 ", "17/01"},
			Promotion:     "2x1",
			Href:          "/cruceros/123",
			Page:          2,
		}

		offer := n.Normalize(raw)

		assert.Equal(t, "Brasil", offer.Destination)
		assert.Equal(t, 480, offer.Price)
		assert.Equal(t, "U$S", offer.Currency)
		assert.Equal(t, []string{"10/01", "17/01"}, offer.AvailableDates)
		require.NotNil(t, offer.Promotion)
		assert.Equal(t, "2x1", *offer.Promotion)
		require.NotNil(t, offer.ItineraryURL)
		assert.Equal(t, origin+"/cruceros/123", *offer.ItineraryURL)
		assert.Equal(t, 2, offer.Page)
	})

	t.Run("sparse card degrades without failing", func(t *testing.T) {
		offer := n.Normalize(models.RawListing{Page: 1})

		assert.Empty(t, offer.Destination)
		assert.GreaterOrEqual(t, offer.Price, 0)
		assert.Equal(t, normalizer.DefaultCurrency, offer.Currency)
		assert.NotNil(t, offer.AvailableDates)
		assert.Empty(t, offer.AvailableDates)
		assert.Nil(t, offer.Promotion)
		assert.Nil(t, offer.ItineraryURL)
	})

	t.Run("date order is presentation order", func(t *testing.T) {
		offer := n.Normalize(models.RawListing{Dates: []string{"30/03", "05/01"}})

		assert.Equal(t, "30/03, 05/01", offer.JoinedDates())
	})

	t.Run("normalize all keeps order", func(t *testing.T) {
		offers := n.NormalizeAll([]models.RawListing{{Destination: "A"}, {Destination: "B"}})

		require.Len(t, offers, 2)
		assert.Equal(t, "A", offers[0].Destination)
		assert.Equal(t, "B", offers[1].Destination)
	})
}
