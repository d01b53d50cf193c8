package notifier_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Houeta/cruise-flow/internal/models"
	"github.com/Houeta/cruise-flow/internal/services/notifier"
	"github.com/Houeta/cruise-flow/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const catalogURL = "https://www.msccruceros.com.ar/ofertas-cruceros/cruceros-a-brasil?area=SOA&page=1"

func ptr(s string) *string { return &s }

var (
	brasil = models.Offer{
		Destination:    "Brasil",
		Duration:       "8 noches",
		Ship:           "MSC Preziosa",
		DeparturePort:  "Buenos Aires",
		Price:          480,
		Currency:       "USD",
		AvailableDates: []string{"10/01", "17/01"},
		ItineraryURL:   ptr("https://www.msccruceros.com.ar/cruceros/123"),
		Page:           1,
	}
	uruguay = models.Offer{Destination: "Uruguay", Price: 390, Currency: "USD", AvailableDates: []string{}, Page: 3}
)

func newNotifier(t *testing.T) (*notifier.Notifier, *mocks.Sender) {
	t.Helper()

	sender := mocks.NewSender(t)

	return notifier.NewNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)), sender, catalogURL), sender
}

func TestNotify(t *testing.T) {
	t.Run("every subscriber gets every addition", func(t *testing.T) {
		n, sender := newNotifier(t)
		sender.On("Send", mock.Anything, mock.AnythingOfType("int64"), mock.AnythingOfType("string")).Return(nil).Times(4)

		committed := n.Notify(t.Context(), []models.Offer{brasil, uruguay}, []int64{1, 2})

		assert.Equal(t, []models.Offer{brasil, uruguay}, committed)
		sender.AssertNumberOfCalls(t, "Send", 4)
	})

	t.Run("a failed send does not stop the fan-out", func(t *testing.T) {
		n, sender := newNotifier(t)
		sender.On("Send", mock.Anything, int64(1), mock.Anything).Return(assert.AnError).Twice()
		sender.On("Send", mock.Anything, int64(2), mock.Anything).Return(nil).Twice()

		committed := n.Notify(t.Context(), []models.Offer{brasil, uruguay}, []int64{1, 2})

		assert.Equal(t, []models.Offer{brasil, uruguay}, committed)
	})

	t.Run("no subscribers still commits", func(t *testing.T) {
		n, _ := newNotifier(t)

		committed := n.Notify(t.Context(), []models.Offer{brasil}, nil)

		assert.Equal(t, []models.Offer{brasil}, committed)
	})

	t.Run("nothing to notify", func(t *testing.T) {
		n, _ := newNotifier(t)

		committed := n.Notify(t.Context(), nil, []int64{1})

		assert.Empty(t, committed)
		assert.NotNil(t, committed)
	})

	t.Run("cancellation stops between additions", func(t *testing.T) {
		n, sender := newNotifier(t)
		ctx, cancel := context.WithCancel(t.Context())
		sender.On("Send", mock.Anything, int64(1), mock.Anything).
			Run(func(mock.Arguments) { cancel() }).
			Return(nil).Once()
		sender.On("Send", mock.Anything, int64(2), mock.Anything).Return(nil).Once()

		committed := n.Notify(ctx, []models.Offer{brasil, uruguay}, []int64{1, 2})

		assert.Equal(t, []models.Offer{brasil}, committed)
	})
}

func TestFormatOffer(t *testing.T) {
	t.Run("itinerary url", func(t *testing.T) {
		text := notifier.FormatOffer(brasil, catalogURL)

		assert.Contains(t, text, "Destino: Brasil")
		assert.Contains(t, text, "Duración: 8 noches")
		assert.Contains(t, text, "Barco: MSC Preziosa")
		assert.Contains(t, text, "Puerto de salida: Buenos Aires")
		assert.Contains(t, text, "Precio: 480 USD")
		assert.Contains(t, text, "Fechas disponibles: 10/01, 17/01")
		assert.Contains(t, text, "Ver más: https://www.msccruceros.com.ar/cruceros/123")
		assert.NotContains(t, text, "Promoción")
	})

	t.Run("fallback to the catalog page", func(t *testing.T) {
		offer := uruguay
		offer.Promotion = ptr("2x1")

		text := notifier.FormatOffer(offer, catalogURL)

		assert.Contains(t, text, "Ver más: https://www.msccruceros.com.ar/ofertas-cruceros/cruceros-a-brasil?area=SOA&page=3")
		assert.Contains(t, text, "Promoción: 2x1")
	})
}

func TestFormatOfferList(t *testing.T) {
	assert.Equal(
		t,
		"❌ No hay ofertas activas menores o iguales a $500 en este momento.",
		notifier.FormatOfferList(nil, 500),
	)

	text := notifier.FormatOfferList([]models.Offer{brasil, uruguay}, 500)
	assert.Contains(t, text, "1. Brasil")
	assert.Contains(t, text, "2. Uruguay")
	assert.Contains(t, text, "Precio: 390 USD")
}
